package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvallenSolutions/lca-engine/internal/jobs"
	"github.com/AvallenSolutions/lca-engine/internal/lca"
)

func newTestServer(t *testing.T) (*Server, *jobs.Store) {
	t.Helper()
	store, err := jobs.NewStore(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return New(":0", store, zerolog.Nop()), store
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateCalculation(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"product_name":"Cider 330ml","lines":[{"material":"Apples","amount":2,"unit":"kg"}]}`
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/api/calculations", strings.NewReader(body)))

	require.Equal(t, http.StatusAccepted, rec.Code)

	var job jobs.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, jobs.StatusPending, job.Status)
	assert.Equal(t, "Cider 330ml", job.ProductName)
}

func TestCreateCalculation_Validation(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"no lines", `{"product_name":"x","lines":[]}`},
		{"missing material", `{"lines":[{"amount":1,"unit":"kg"}]}`},
		{"negative amount", `{"lines":[{"material":"Apples","amount":-1,"unit":"kg"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec,
				httptest.NewRequest(http.MethodPost, "/api/calculations", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetCalculation(t *testing.T) {
	srv, store := newTestServer(t)

	job, err := store.Create(context.Background(), "gin", []lca.Line{
		{Material: "Juniper berries", Amount: 0.02, Unit: "kg"},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/api/calculations/"+job.ID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got jobs.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, job.ID, got.ID)
}

func TestGetCalculation_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/api/calculations/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCalculations(t *testing.T) {
	srv, store := newTestServer(t)

	_, err := store.Create(context.Background(), "a", []lca.Line{{Material: "Apples", Amount: 1, Unit: "kg"}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calculations", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var list []jobs.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestCalculationReport_RequiresCompletion(t *testing.T) {
	srv, store := newTestServer(t)

	job, err := store.Create(context.Background(), "gin", []lca.Line{
		{Material: "Juniper berries", Amount: 0.02, Unit: "kg"},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/api/calculations/"+job.ID+"/report", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCalculationReport_PDF(t *testing.T) {
	srv, store := newTestServer(t)

	job, err := store.Create(context.Background(), "cider", []lca.Line{
		{Material: "Apples", Amount: 2, Unit: "kg"},
	})
	require.NoError(t, err)

	aggregator := lca.NewAggregator(lca.NewSimulatedInventory(), zerolog.Nop())
	result := aggregator.CalculateProduct(context.Background(), "cider", job.Lines)
	require.NoError(t, store.Complete(context.Background(), job.ID, result))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/api/calculations/"+job.ID+"/report", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}
