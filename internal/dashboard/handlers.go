package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/davetashner/neurogen/internal/catalog"
	"github.com/davetashner/neurogen/internal/chart"
	"github.com/davetashner/neurogen/internal/output"
	"github.com/davetashner/neurogen/internal/scenario"
)

// scoreResponse is the body of GET /api/v1/score.
type scoreResponse struct {
	Dose            int              `json:"dose"`
	AILevel         scenario.AILevel `json:"ai_level"`
	RegenEnabled    bool             `json:"regen_enabled"`
	EfficacyPercent float64          `json:"efficacy_percent"`
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := r.URL.Path
	switch {
	case path == "/":
		s.handleIndex(w, r)
	case path == "/api/v1/comparison":
		s.handleComparison(w, r)
	case path == "/api/v1/score":
		s.handleScore(w, r)
	case strings.HasPrefix(path, "/charts/"):
		s.handleChart(w, r, strings.TrimPrefix(path, "/charts/"))
	case path == "/report.pdf":
		s.handleReport(w, r, &output.PDFFormatter{Charts: s.cfg.Charts}, "application/pdf", "neurogen-report.pdf")
	case path == "/report.csv":
		s.handleReport(w, r, output.NewCSVFormatter(), "text/csv; charset=utf-8", "neurogen-report.csv")
	case path == "/healthz":
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	case path == "/metrics":
		s.metricsHandler.ServeHTTP(w, r)
	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

// routeLabel maps a path to a bounded metric label.
func routeLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/charts/"):
		return "/charts"
	case path == "/", path == "/api/v1/comparison", path == "/api/v1/score",
		path == "/report.pdf", path == "/report.csv", path == "/healthz", path == "/metrics":
		return path
	default:
		return "other"
	}
}

// evaluate parses the scenario from the request and builds the table,
// writing a 400 on invalid input. It reports whether the caller should proceed.
func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) (catalog.ComparisonTable, bool) {
	in, err := parseScenario(r.URL.Query(), s.cfg.Defaults)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return catalog.ComparisonTable{}, false
	}
	t, err := catalog.Evaluate(in)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scenario.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return catalog.ComparisonTable{}, false
	}
	s.metrics.observeEvaluation(string(in.AILevel), t.Computed().EfficacyPercent)
	return t, true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	t, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	f := &output.HTMLFormatter{Interactive: true, Action: "/", Charts: s.cfg.Charts}
	s.render(w, r, f, t, "text/html; charset=utf-8")
}

func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	t, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	s.render(w, r, output.NewJSONFormatter(), t, "application/json")
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	t, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, scoreResponse{
		Dose:            t.Scenario.Dose,
		AILevel:         t.Scenario.AILevel,
		RegenEnabled:    t.Scenario.RegenEnabled,
		EfficacyPercent: t.Computed().EfficacyPercent,
	})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request, name string) {
	base, ext, found := strings.Cut(name, ".")
	kind, kindErr := chart.ParseKind(base)
	format, formatErr := chart.ParseFormat(ext)
	if !found || kindErr != nil || formatErr != nil {
		writeError(w, http.StatusNotFound, "chart not found")
		return
	}

	t, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := chart.RenderKind(kind, t, s.cfg.Charts, format, &buf); err != nil {
		s.log.Error("chart render failed", "kind", kind, "error", err)
		writeError(w, http.StatusInternalServerError, "chart render failed")
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request, f output.Formatter, contentType, filename string) {
	t, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	s.render(w, r, f, t, contentType)
}

// render formats into memory first so a failure still yields a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, f output.Formatter, t catalog.ComparisonTable, contentType string) {
	var buf bytes.Buffer
	if err := f.Format(t, &buf); err != nil {
		s.log.ErrorContext(r.Context(), "render failed", "format", f.Name(), "error", err)
		w.Header().Del("Content-Disposition")
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
