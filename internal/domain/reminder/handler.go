package reminder

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

// Handler provides HTTP handlers for reminders.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the /reminders routes on api.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/reminders", h.CreateReminder)
	api.GET("/reminders", h.ListReminders)
	api.PATCH("/reminders/deactivate", h.DeactivateReminder)
	api.GET("/reminders/:id", h.GetReminder)
	api.PUT("/reminders/:id", h.UpdateReminder)
	api.PATCH("/reminders/:id", h.UpdateReminder)
	api.DELETE("/reminders/:id", h.DeleteReminder)
}

func (h *Handler) CreateReminder(c echo.Context) error {
	rem := Reminder{Active: true}
	if err := apperr.Bind(c, &rem); err != nil {
		return err
	}
	if err := h.svc.CreateReminder(c.Request().Context(), &rem); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rem)
}

func (h *Handler) GetReminder(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	rem, err := h.svc.GetReminder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rem)
}

func (h *Handler) ListReminders(c echo.Context) error {
	items, err := h.svc.ListReminders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateReminder(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	var p Patch
	if err := apperr.Bind(c, &p); err != nil {
		return err
	}
	rem, err := h.svc.UpdateReminder(c.Request().Context(), id, &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rem)
}

func (h *Handler) DeleteReminder(c echo.Context) error {
	id, err := apperr.ParseID("id", c.Param("id"))
	if err != nil {
		return err
	}
	rem, err := h.svc.DeleteReminder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rem)
}

func (h *Handler) DeactivateReminder(c echo.Context) error {
	var req DeactivateRequest
	if err := apperr.Bind(c, &req); err != nil {
		return err
	}
	rem, err := h.svc.DeactivateReminder(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rem)
}
