package report

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler provides HTTP handlers for the aggregate report queries.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the report routes. Static segments such as
// /reminders/active sit beside the resource /:id routes; echo matches the
// static segment first.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/notes/doses", h.ListAllDoseNotes)
	api.GET("/notes/doses/:id", h.ListNotesForDose)
	api.GET("/notes/medications", h.ListAllMedicationNotes)
	api.GET("/notes/medications/:id", h.ListNotesForMedication)
	api.GET("/notes/stores", h.ListAllStoreNotes)
	api.GET("/notes/stores/:id", h.ListNotesForStore)
	api.GET("/reminders/active", h.ListActiveReminders)
	api.GET("/stores/status", h.ListStoresForMedication)
	api.GET("/medications/status", h.ListMedicationsForUser)
	api.GET("/reports/dose-notes.xlsx", h.ExportDoseNotes)
}

func (h *Handler) ListAllDoseNotes(c echo.Context) error {
	items, err := h.svc.ListAllDoseNotes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListNotesForDose(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	items, err := h.svc.ListNotesForDose(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListAllMedicationNotes(c echo.Context) error {
	items, err := h.svc.ListAllMedicationNotes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListNotesForMedication(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	items, err := h.svc.ListNotesForMedication(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListAllStoreNotes(c echo.Context) error {
	items, err := h.svc.ListAllStoreNotes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListNotesForStore(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	items, err := h.svc.ListNotesForStore(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListActiveReminders(c echo.Context) error {
	items, err := h.svc.ListActiveReminders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListStoresForMedication handles GET /stores/status?user=&medication=&active=.
func (h *Handler) ListStoresForMedication(c echo.Context) error {
	user, err := apperr.ParseID("user", c.QueryParam("user"))
	if err != nil {
		return err
	}
	med, err := apperr.ParseID("medication", c.QueryParam("medication"))
	if err != nil {
		return err
	}
	active, err := apperr.ParseOptionalBool("active", c.QueryParam("active"))
	if err != nil {
		return err
	}
	items, err := h.svc.ListStoresForMedication(c.Request().Context(), user, med, active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListMedicationsForUser handles GET /medications/status?user=&active=.
func (h *Handler) ListMedicationsForUser(c echo.Context) error {
	user, err := apperr.ParseID("user", c.QueryParam("user"))
	if err != nil {
		return err
	}
	active, err := apperr.ParseOptionalBool("active", c.QueryParam("active"))
	if err != nil {
		return err
	}
	items, err := h.svc.ListMedicationsForUser(c.Request().Context(), user, active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ExportDoseNotes(c echo.Context) error {
	data, err := h.svc.DoseNotesWorkbook(c.Request().Context())
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=dose-notes.xlsx")
	return c.Blob(http.StatusOK, mimeXLSX, data)
}
