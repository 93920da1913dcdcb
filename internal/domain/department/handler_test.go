package department

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/medboard/medboard/pkg/pagination"
)

func newTestHandler(seed ...Department) (*Handler, *echo.Echo) {
	h := NewHandler(testService(seed...))
	e := echo.New()
	return h, e
}

func TestHandler_List_MinOccupancy(t *testing.T) {
	h, e := newTestHandler(
		Department{ID: 1, Name: "Cardiology", TotalBeds: 20, OccupiedBeds: 18},
		Department{ID: 2, Name: "Pediatrics", TotalBeds: 10, OccupiedBeds: 5},
	)
	req := httptest.NewRequest(http.MethodGet, "/?min_occupancy=80", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("total = %d", resp.Total)
	}
}

func TestHandler_List_BadMinOccupancy(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?min_occupancy=high", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_AddEquipment(t *testing.T) {
	h, e := newTestHandler(Department{ID: 1, Name: "Cardiology", Equipment: []string{"ECG Machine"}})
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"item":"Defibrillator"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.AddEquipment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var d Department
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(d.Equipment) != 2 || d.Equipment[1] != "Defibrillator" {
		t.Errorf("equipment = %v", d.Equipment)
	}
}

func TestHandler_AddEquipment_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"item":"Ventilator"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.AddEquipment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
