package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/medoxido/medoxido/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:            "development",
		DBNamespace:    "medoxido",
		CORSOrigins:    []string{"http://localhost:3000"},
		RequestTimeout: 5 * time.Second,
		BodyLimit:      "1M",
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}
}

func TestNewServer_RegistersRoutes(t *testing.T) {
	e := newServer(testConfig(), nil, zerolog.Nop())

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /health",
		"GET /health/db",
		"POST /uoms",
		"GET /uoms",
		"PATCH /uoms/deactivate",
		"GET /uoms/:id",
		"POST /medications",
		"GET /medications",
		"PATCH /medications/deactivate",
		"PUT /medications/:id",
		"DELETE /medications/:id",
		"GET /medications/status",
		"POST /stores",
		"PATCH /stores/deactivate",
		"GET /stores/status",
		"POST /doses",
		"GET /doses/:id",
		"POST /reminders",
		"PATCH /reminders/deactivate",
		"GET /reminders/active",
		"POST /notes",
		"GET /notes/:id",
		"GET /notes/doses",
		"GET /notes/doses/:id",
		"GET /notes/medications/:id",
		"GET /notes/stores/:id",
		"GET /reports/dose-notes.xlsx",
	}
	for _, route := range want {
		if !registered[route] {
			t.Errorf("route %s not registered", route)
		}
	}
}

func TestNewServer_Health(t *testing.T) {
	e := newServer(testConfig(), nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers")
	}
}

func TestNewServer_InvalidIDIsValidationError(t *testing.T) {
	e := newServer(testConfig(), nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/medications/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id"`) {
		t.Errorf("expected an error on field id, got %s", rec.Body.String())
	}
}

func TestNewServer_UnknownRouteIs404(t *testing.T) {
	e := newServer(testConfig(), nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/prescriptions", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestNewServer_HSTSInProductionOnly(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		cfg := testConfig()
		cfg.Env = env
		e := newServer(cfg, nil, zerolog.Nop())

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		got := rec.Header().Get("Strict-Transport-Security")
		if env == "production" && got == "" {
			t.Error("expected HSTS in production")
		}
		if env == "development" && got != "" {
			t.Errorf("expected no HSTS in development, got %q", got)
		}
	}
}

func TestNewServer_StreamedOversizedBodyIs413(t *testing.T) {
	cfg := testConfig()
	cfg.BodyLimit = "1K"
	e := newServer(cfg, nil, zerolog.Nop())

	body := `{"name":"` + strings.Repeat("a", 4096) + `"}`
	// no Content-Length, as with a chunked upload
	req := httptest.NewRequest(http.MethodPost, "/medications", io.NopCloser(bytes.NewBufferString(body)))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", rec.Code, rec.Body.String())
	}
}
