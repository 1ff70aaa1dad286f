// Package observability exposes Prometheus metrics for the question
// pipeline.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	questionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consulta_questions_total",
			Help: "Questions processed, by engine and outcome status.",
		},
		[]string{"engine", "status"},
	)

	matchScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "consulta_match_score",
			Help:    "Best Jaccard score per question in the keyword engine.",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	queryDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "consulta_query_duration_seconds",
			Help:    "Snapshot query latency, by outcome.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	llmRequestDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "consulta_llm_request_duration_seconds",
			Help:    "Text-generation round-trip latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		questionsTotal,
		matchScore,
		queryDurationSeconds,
		llmRequestDurationSeconds,
	)
}

// ObserveQuestion records a processed question and its outcome status.
func ObserveQuestion(engine, status string) {
	questionsTotal.WithLabelValues(engine, status).Inc()
}

// ObserveMatchScore records the best similarity score for a question.
func ObserveMatchScore(score float64) {
	matchScore.Observe(score)
}

// ObserveQuery records a snapshot query execution.
func ObserveQuery(outcome string, elapsed time.Duration) {
	queryDurationSeconds.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveLLMRequest records a text-generation round trip.
func ObserveLLMRequest(elapsed time.Duration) {
	llmRequestDurationSeconds.Observe(elapsed.Seconds())
}

// Handler returns the Prometheus scrape handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
