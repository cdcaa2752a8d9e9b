package main

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/medoxido/medoxido/internal/config"
	"github.com/medoxido/medoxido/internal/domain/dose"
	"github.com/medoxido/medoxido/internal/domain/medication"
	"github.com/medoxido/medoxido/internal/domain/note"
	"github.com/medoxido/medoxido/internal/domain/reminder"
	"github.com/medoxido/medoxido/internal/domain/report"
	"github.com/medoxido/medoxido/internal/domain/store"
	"github.com/medoxido/medoxido/internal/domain/uom"
	"github.com/medoxido/medoxido/internal/platform/apperr"
	"github.com/medoxido/medoxido/internal/platform/db"
	"github.com/medoxido/medoxido/internal/platform/middleware"
)

// newServer builds the echo instance with the middleware chain and every
// resource route. The pool is only used once requests arrive.
func newServer(cfg *config.Config, pool *pgxpool.Pool, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = apperr.Handler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.BurstSize <= 0 {
		rateLimitCfg.BurstSize = middleware.DefaultRateLimitConfig().BurstSize
	}

	api := e.Group("", middleware.RequestTimeout(cfg.RequestTimeout), middleware.RateLimit(rateLimitCfg))

	uom.NewHandler(uom.NewService(uom.NewUOMRepoPG(pool))).RegisterRoutes(api)
	medication.NewHandler(medication.NewService(medication.NewMedicationRepoPG(pool))).RegisterRoutes(api)
	store.NewHandler(store.NewService(store.NewStoreRepoPG(pool))).RegisterRoutes(api)
	dose.NewHandler(dose.NewService(dose.NewDoseRepoPG(pool))).RegisterRoutes(api)
	reminder.NewHandler(reminder.NewService(reminder.NewReminderRepoPG(pool))).RegisterRoutes(api)
	note.NewHandler(note.NewService(note.NewNoteRepoPG(pool))).RegisterRoutes(api)
	report.NewHandler(report.NewService(report.NewReportRepoPG(pool))).RegisterRoutes(api)

	return e
}
