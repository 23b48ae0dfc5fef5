package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	TriggersTotal   *prometheus.CounterVec
	TriggerDuration prometheus.Histogram

	ExtractorRequestsTotal   *prometheus.CounterVec
	ExtractorRequestDuration prometheus.Histogram

	CatalogRequestsTotal   *prometheus.CounterVec
	CatalogRequestDuration *prometheus.HistogramVec

	QuestionsAskedTotal prometheus.Counter

	ActiveSessions prometheus.Gauge

	RateLimitHitsTotal *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		TriggersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviebot_triggers_total",
				Help: "Total number of trigger messages processed",
			},
			[]string{"status"},
		),
		TriggerDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "moviebot_trigger_duration_seconds",
				Help:    "Full session duration in seconds, user think time included",
				Buckets: []float64{0.5, 1, 5, 15, 60, 300, 900},
			},
		),

		ExtractorRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviebot_extractor_requests_total",
				Help: "Total number of NLP extractor requests",
			},
			[]string{"status"},
		),
		ExtractorRequestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "moviebot_extractor_request_duration_seconds",
				Help:    "NLP extractor request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
			},
		),

		CatalogRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviebot_catalog_requests_total",
				Help: "Total number of catalog API requests",
			},
			[]string{"operation", "status"},
		),
		CatalogRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "moviebot_catalog_request_duration_seconds",
				Help:    "Catalog request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"operation"},
		),

		QuestionsAskedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "moviebot_questions_asked_total",
				Help: "Total number of yes/no questions asked",
			},
		),

		ActiveSessions: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "moviebot_active_sessions",
				Help: "Number of sessions currently in progress",
			},
		),

		RateLimitHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moviebot_rate_limit_hits_total",
				Help: "Total number of rate limit hits",
			},
			[]string{"user_id"},
		),
	}

	return m
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) RecordTrigger(status string, duration time.Duration) {
	m.TriggersTotal.WithLabelValues(status).Inc()
	m.TriggerDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordExtractorRequest(status string, duration time.Duration) {
	m.ExtractorRequestsTotal.WithLabelValues(status).Inc()
	m.ExtractorRequestDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordCatalogRequest(operation, status string, duration time.Duration) {
	m.CatalogRequestsTotal.WithLabelValues(operation, status).Inc()
	m.CatalogRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) RecordQuestion() {
	m.QuestionsAskedTotal.Inc()
}

func (m *Metrics) IncActiveSessions() {
	m.ActiveSessions.Inc()
}

func (m *Metrics) DecActiveSessions() {
	m.ActiveSessions.Dec()
}

func (m *Metrics) RecordRateLimitHit(userID string) {
	m.RateLimitHitsTotal.WithLabelValues(userID).Inc()
}
