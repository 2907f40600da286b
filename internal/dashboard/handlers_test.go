package dashboard

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/neurogen/internal/chart"
	neurolog "github.com/davetashner/neurogen/internal/log"
	"github.com/davetashner/neurogen/internal/output"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{
		Charts:   chart.Options{Width: 320, Height: 200},
		Registry: prometheus.NewRegistry(),
	})
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHandleScore(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query string
		want  scoreResponse
	}{
		{"", scoreResponse{Dose: 100, AILevel: "Low", RegenEnabled: true, EfficacyPercent: 90}},
		{"?dose=50&ai_level=Medium&regen=false", scoreResponse{Dose: 50, AILevel: "Medium", RegenEnabled: false, EfficacyPercent: 82.5}},
		{"?dose=300&ai_level=High", scoreResponse{Dose: 300, AILevel: "High", RegenEnabled: true, EfficacyPercent: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := get(t, s, "/api/v1/score"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)
			var got scoreResponse
			decodeJSON(t, rec, &got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleScore_BadRequest(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/v1/score?dose=5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.Contains(t, body["error"], "dose 5 outside [10,300]")
}

func TestHandleComparison(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/v1/comparison?dose=200&regen=0")
	require.Equal(t, http.StatusOK, rec.Code)

	var env output.JSONEnvelope
	decodeJSON(t, rec, &env)
	assert.Equal(t, 200, env.Scenario.Dose)
	assert.False(t, env.Scenario.RegenEnabled)
	require.Len(t, env.Treatments, 4)
	assert.Equal(t, []string{"Quinacrine", "Gold Nanoparticles (MIT, 2024)", "ASO Therapy (NIH, 2023)", "NEUROGEN-X"},
		[]string{env.Treatments[0].Name, env.Treatments[1].Name, env.Treatments[2].Name, env.Treatments[3].Name})
	assert.InDelta(t, 100.0, env.Treatments[3].EfficacyPercent, 1e-9)
}

func TestHandleIndex(t *testing.T) {
	rec := get(t, newTestServer(t), "/?submitted=1&dose=120&ai_level=High")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `<form id="scenario" method="get" action="/">`)
	assert.Contains(t, body, `value="120"`)
	assert.Contains(t, body, `<option value="High" selected>High</option>`)
	assert.Contains(t, body, "Regeneration off")
	assert.Contains(t, body, "<svg")
}

func TestHandleChart(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/charts/efficacy.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = get(t, s, "/charts/cost.svg?dose=30")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")

	for _, path := range []string{"/charts/pie.png", "/charts/cost.gif", "/charts/cost"} {
		assert.Equal(t, http.StatusNotFound, get(t, s, path).Code, path)
	}
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/charts/cost.png?ai_level=x").Code)
}

func TestHandleReports(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/report.pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "neurogen-report.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	rec = get(t, s, "/report.csv?ai_level=medium")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "NEUROGEN-X,100,8000,None in simulations,true", lines[4])
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNotFoundAndMethod(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/nope").Code)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/score", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)
	a := get(t, s, "/healthz").Header().Get("X-Request-ID")
	b := get(t, s, "/healthz").Header().Get("X-Request-ID")
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t)
	get(t, s, "/api/v1/score?ai_level=High")
	get(t, s, "/api/v1/score?ai_level=High&dose=20")
	get(t, s, "/charts/unknown.png")

	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `neurogen_evaluations_total{ai_level="High"} 2`)
	assert.Contains(t, body, "neurogen_efficacy_percent_count 2")
	assert.Contains(t, body, `neurogen_http_request_duration_seconds_count{code="200",route="/api/v1/score"} 2`)
	assert.Contains(t, body, `neurogen_http_request_duration_seconds_count{code="404",route="/charts"} 1`)
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	s := New(Config{Logger: neurolog.New(&buf, false, false), Registry: prometheus.NewRegistry()})
	get(t, s, "/healthz")

	out := buf.String()
	assert.Contains(t, out, "msg=request")
	assert.Contains(t, out, "path=/healthz")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "request_id=")
}
