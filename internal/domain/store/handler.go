package store

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

// Handler provides HTTP handlers for inventory lots.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the /stores routes on api.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/stores", h.CreateStore)
	api.GET("/stores", h.ListStores)
	api.PATCH("/stores/deactivate", h.DeactivateStore)
	api.GET("/stores/:id", h.GetStore)
	api.PUT("/stores/:id", h.UpdateStore)
	api.PATCH("/stores/:id", h.UpdateStore)
	api.DELETE("/stores/:id", h.DeleteStore)
}

func (h *Handler) CreateStore(c echo.Context) error {
	st := Store{Active: true}
	if err := apperr.Bind(c, &st); err != nil {
		return err
	}
	if err := h.svc.CreateStore(c.Request().Context(), &st); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) GetStore(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	st, err := h.svc.GetStore(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) ListStores(c echo.Context) error {
	items, err := h.svc.ListStores(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateStore(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	var p Patch
	if err := apperr.Bind(c, &p); err != nil {
		return err
	}
	st, err := h.svc.UpdateStore(c.Request().Context(), id, &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) DeleteStore(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	st, err := h.svc.DeleteStore(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) DeactivateStore(c echo.Context) error {
	var req DeactivateRequest
	if err := apperr.Bind(c, &req); err != nil {
		return err
	}
	st, err := h.svc.DeactivateStore(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}
