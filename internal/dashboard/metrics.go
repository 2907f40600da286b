package dashboard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	efficacy    prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "neurogen_evaluations_total",
			Help: "Scenarios evaluated, by AI optimization level.",
		}, []string{"ai_level"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "neurogen_http_request_duration_seconds",
			Help:    "Dashboard request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "code"}),
		efficacy: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "neurogen_efficacy_percent",
			Help:    "Distribution of computed NEUROGEN-X efficacy.",
			Buckets: prometheus.LinearBuckets(60, 5, 9),
		}),
	}
}

func (m *metrics) observeEvaluation(level string, efficacy float64) {
	m.evaluations.WithLabelValues(level).Inc()
	m.efficacy.Observe(efficacy)
}
