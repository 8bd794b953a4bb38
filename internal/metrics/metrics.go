// Package metrics holds the Prometheus collectors exported on /metrics.
// Collectors are registered on the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label sources for RiskLabels.
const (
	SourceQuestionnaire = "questionnaire"
	SourceBehavior      = "behavior"
	SourceFused         = "fused"
)

var (
	// HTTPRequests counts served requests by method, route pattern and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medcare_http_requests_total",
		Help: "Total HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	// HTTPDuration tracks request latency by method and route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "medcare_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	}, []string{"method", "route"})

	// RiskLabels counts produced labels by source.
	RiskLabels = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medcare_risk_labels_total",
		Help: "Risk labels produced by source",
	}, []string{"source", "label"})

	// LLMFallbacks counts chat replies that fell back from the language
	// model to the canned responder, by reason.
	LLMFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medcare_llm_fallbacks_total",
		Help: "Language-model fallbacks by reason",
	}, []string{"reason"})
)

// ObserveLabel records a produced risk label.
func ObserveLabel(source, label string) {
	RiskLabels.WithLabelValues(source, label).Inc()
}
