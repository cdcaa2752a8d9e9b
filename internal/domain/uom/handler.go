package uom

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

// Handler provides HTTP handlers for units of measure.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the /uoms routes on api.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/uoms", h.CreateUOM)
	api.GET("/uoms", h.ListUOMs)
	api.PATCH("/uoms/deactivate", h.DeactivateUOM)
	api.GET("/uoms/:id", h.GetUOM)
	api.PUT("/uoms/:id", h.UpdateUOM)
	api.PATCH("/uoms/:id", h.UpdateUOM)
	api.DELETE("/uoms/:id", h.DeleteUOM)
}

func (h *Handler) CreateUOM(c echo.Context) error {
	u := UOM{Active: true}
	if err := apperr.Bind(c, &u); err != nil {
		return err
	}
	if err := h.svc.CreateUOM(c.Request().Context(), &u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) GetUOM(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	u, err := h.svc.GetUOM(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) ListUOMs(c echo.Context) error {
	items, err := h.svc.ListUOMs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateUOM(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	var p Patch
	if err := apperr.Bind(c, &p); err != nil {
		return err
	}
	u, err := h.svc.UpdateUOM(c.Request().Context(), id, &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) DeleteUOM(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	u, err := h.svc.DeleteUOM(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) DeactivateUOM(c echo.Context) error {
	var req DeactivateRequest
	if err := apperr.Bind(c, &req); err != nil {
		return err
	}
	u, err := h.svc.DeactivateUOM(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
