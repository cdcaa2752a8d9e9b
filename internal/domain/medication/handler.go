package medication

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

// Handler provides HTTP handlers for medications.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the /medications routes on api.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/medications", h.CreateMedication)
	api.GET("/medications", h.ListMedications)
	api.PATCH("/medications/deactivate", h.DeactivateMedication)
	api.GET("/medications/:id", h.GetMedication)
	api.PUT("/medications/:id", h.UpdateMedication)
	api.PATCH("/medications/:id", h.UpdateMedication)
	api.DELETE("/medications/:id", h.DeleteMedication)
}

func (h *Handler) CreateMedication(c echo.Context) error {
	m := Medication{Active: true}
	if err := apperr.Bind(c, &m); err != nil {
		return err
	}
	if err := h.svc.CreateMedication(c.Request().Context(), &m); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) GetMedication(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	m, err := h.svc.GetMedication(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) ListMedications(c echo.Context) error {
	items, err := h.svc.ListMedications(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateMedication(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	var p Patch
	if err := apperr.Bind(c, &p); err != nil {
		return err
	}
	m, err := h.svc.UpdateMedication(c.Request().Context(), id, &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMedication(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	m, err := h.svc.DeleteMedication(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DeactivateMedication(c echo.Context) error {
	var req DeactivateRequest
	if err := apperr.Bind(c, &req); err != nil {
		return err
	}
	m, err := h.svc.DeactivateMedication(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}
