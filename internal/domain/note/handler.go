package note

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
	api.POST("/notes", h.CreateNote)
	api.GET("/notes", h.ListNotes)
	api.GET("/notes/:id", h.GetNote)
	api.PUT("/notes/:id", h.UpdateNote)
	api.PATCH("/notes/:id", h.UpdateNote)
	api.DELETE("/notes/:id", h.DeleteNote)
}

func (h *Handler) CreateNote(c echo.Context) error {
	var n Note
	if err := apperr.Bind(c, &n); err != nil {
		return err
	}
	if err := h.svc.CreateNote(c.Request().Context(), &n); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

func (h *Handler) GetNote(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	n, err := h.svc.GetNote(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

func (h *Handler) ListNotes(c echo.Context) error {
	items, err := h.svc.ListNotes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateNote(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	var p Patch
	if err := apperr.Bind(c, &p); err != nil {
		return err
	}
	n, err := h.svc.UpdateNote(c.Request().Context(), id, &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

func (h *Handler) DeleteNote(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	n, err := h.svc.DeleteNote(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}
