package pages

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medboard/medboard/internal/domain/enrich"
	"github.com/medboard/medboard/internal/domain/query"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	pages := api.Group("/pages")
	pages.GET("/dashboard", h.Dashboard)
	pages.GET("/patients", h.Patients)
	pages.GET("/appointments", h.Appointments)
	pages.GET("/staff", h.Staff)
	pages.GET("/departments", h.Departments)
	pages.GET("/reports", h.Reports)
}

func criteriaFrom(c echo.Context) query.Criteria {
	return query.Criteria{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	}
}

func (h *Handler) Dashboard(c echo.Context) error {
	page, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "load failed")
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) Patients(c echo.Context) error {
	page, err := h.svc.Patients(c.Request().Context(), criteriaFrom(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "load failed")
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) Appointments(c echo.Context) error {
	var weekAnchor *time.Time
	if week := c.QueryParam("week"); week != "" {
		anchor, err := time.ParseInLocation(enrich.DateLayout, week, time.Local)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid week: expected yyyy-MM-dd")
		}
		weekAnchor = &anchor
	}
	page, err := h.svc.Appointments(c.Request().Context(), criteriaFrom(c), weekAnchor)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "load failed")
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) Staff(c echo.Context) error {
	page, err := h.svc.Staff(c.Request().Context(), criteriaFrom(c), c.QueryParam("role"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "load failed")
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) Departments(c echo.Context) error {
	page, err := h.svc.Departments(c.Request().Context(), criteriaFrom(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "load failed")
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) Reports(c echo.Context) error {
	page, err := h.svc.Reports(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "load failed")
	}
	return c.JSON(http.StatusOK, page)
}
