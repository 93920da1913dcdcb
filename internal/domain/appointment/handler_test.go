package appointment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler(seed ...Appointment) (*Handler, *echo.Echo) {
	h := NewHandler(testService(seed...))
	e := echo.New()
	return h, e
}

func TestHandler_UpdateStatus(t *testing.T) {
	h, e := newTestHandler(Appointment{ID: 1, PatientID: "1", StaffID: "2",
		DateTime: at("2025-09-01", "09:00"), Duration: 30, Status: "pending"})

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var updated Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.Status != "confirmed" {
		t.Errorf("status = %q", updated.Status)
	}
}

func TestHandler_UpdateStatus_Invalid(t *testing.T) {
	h, e := newTestHandler(Appointment{ID: 1, PatientID: "1", StaffID: "2",
		DateTime: at("2025-09-01", "09:00"), Duration: 30, Status: "pending"})

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"maybe"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.UpdateStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_List_ByDateRange(t *testing.T) {
	h, e := newTestHandler(
		Appointment{ID: 1, PatientID: "1", StaffID: "2", DateTime: at("2025-09-01", "09:00")},
		Appointment{ID: 2, PatientID: "1", StaffID: "2", DateTime: at("2025-09-05", "09:00")},
	)
	req := httptest.NewRequest(http.MethodGet,
		"/?from=2025-09-01T00:00:00Z&to=2025-09-02T00:00:00Z", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Data []Appointment `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != 1 {
		t.Errorf("range filter: %+v", resp.Data)
	}
}

func TestHandler_List_BadPatientID(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?patient_id=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
