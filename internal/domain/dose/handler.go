package dose

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/doses", h.CreateDose)
	api.GET("/doses", h.ListDoses)
	api.GET("/doses/:id", h.GetDose)
	api.PUT("/doses/:id", h.UpdateDose)
	api.PATCH("/doses/:id", h.UpdateDose)
	api.DELETE("/doses/:id", h.DeleteDose)
}

func (h *Handler) CreateDose(c echo.Context) error {
	var d Dose
	if err := apperr.Bind(c, &d); err != nil {
		return err
	}
	if err := h.svc.CreateDose(c.Request().Context(), &d); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) GetDose(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	d, err := h.svc.GetDose(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListDoses(c echo.Context) error {
	items, err := h.svc.ListDoses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateDose(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	var p Patch
	if err := apperr.Bind(c, &p); err != nil {
		return err
	}
	d, err := h.svc.UpdateDose(c.Request().Context(), id, &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDose(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	d, err := h.svc.DeleteDose(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}
