package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medoxido/medoxido/internal/domain/store"
	"github.com/medoxido/medoxido/internal/platform/apperr"
)

func newTestHandler(repo *mockReportRepo) (*Handler, *echo.Echo) {
	e := echo.New()
	return NewHandler(NewService(repo)), e
}

func TestHandler_ListNotesForDose_Empty(t *testing.T) {
	h, e := newTestHandler(&mockReportRepo{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	require.NoError(t, h.ListNotesForDose(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_ListNotesForDose_InvalidID(t *testing.T) {
	h, e := newTestHandler(&mockReportRepo{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.ListNotesForDose(c)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestHandler_ListAllDoseNotes(t *testing.T) {
	h, e := newTestHandler(&mockReportRepo{doseNotes: []*DoseNote{sampleDoseNote(uuid.New())}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListAllDoseNotes(c))
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "ibuprofen", got[0]["medication_name"])
	assert.Equal(t, "L1", got[0]["store_lot_number"])
}

func TestHandler_ListStoresForMedication(t *testing.T) {
	user, med := uuid.New(), uuid.New()
	h, e := newTestHandler(&mockReportRepo{stores: []*store.Store{
		{ID: uuid.New(), Medication: med, User: &user, Active: true, LotNumber: "A"},
		{ID: uuid.New(), Medication: med, User: &user, Active: false, LotNumber: "B"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/stores/status?user="+user.String()+"&medication="+med.String()+"&active=false", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListStoresForMedication(c))
	var got []store.Store
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].LotNumber)
}

func TestHandler_ListStoresForMedication_MissingUser(t *testing.T) {
	h, e := newTestHandler(&mockReportRepo{})

	req := httptest.NewRequest(http.MethodGet, "/stores/status?medication="+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListStoresForMedication(c)
	require.Error(t, err)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "user")
}

func TestHandler_ListMedicationsForUser_BadActive(t *testing.T) {
	h, e := newTestHandler(&mockReportRepo{})

	req := httptest.NewRequest(http.MethodGet, "/medications/status?user="+uuid.New().String()+"&active=sometimes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListMedicationsForUser(c)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestHandler_ExportDoseNotes(t *testing.T) {
	h, e := newTestHandler(&mockReportRepo{doseNotes: []*DoseNote{sampleDoseNote(uuid.New())}})

	req := httptest.NewRequest(http.MethodGet, "/reports/dose-notes.xlsx", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ExportDoseNotes(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeXLSX, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "dose-notes.xlsx")

	rows := readSheet(t, rec.Body.Bytes())
	assert.Len(t, rows, 2)
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h, e := newTestHandler(&mockReportRepo{})
	h.RegisterRoutes(e.Group("/api"))

	want := map[string]bool{
		"GET /api/notes/doses/:id":         false,
		"GET /api/reminders/active":        false,
		"GET /api/stores/status":           false,
		"GET /api/medications/status":      false,
		"GET /api/reports/dose-notes.xlsx": false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for route, found := range want {
		assert.True(t, found, "missing route %s", route)
	}
}
