// Package metrics exposes Prometheus collectors for the mood tracker API.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moodtracker"

// Analysis run outcomes.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the collectors registered with the default registry.
type Metrics struct {
	AnalysisRunsTotal    *prometheus.CounterVec
	InsightsTotal        *prometheus.CounterVec
	RecommendationsTotal *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
}

// New returns the process-wide collectors, registering them on first use.
//
// Metrics:
//   - moodtracker_analysis_runs_total{result}
//   - moodtracker_insights_total{category,polarity}
//   - moodtracker_recommendations_total{category,priority}
//   - moodtracker_http_request_duration_seconds{method,route,status}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			AnalysisRunsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "analysis_runs_total",
					Help:      "Total number of mood analysis runs",
				},
				[]string{"result"}, // "ok", "invalid" or "error"
			),

			InsightsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "insights_total",
					Help:      "Total number of insights produced by the analysis engine",
				},
				[]string{"category", "polarity"},
			),

			RecommendationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "recommendations_total",
					Help:      "Total number of recommendations produced by the analysis engine",
				},
				[]string{"category", "priority"},
			),

			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: namespace,
					Subsystem: "http",
					Name:      "request_duration_seconds",
					Help:      "Duration of HTTP requests in seconds",
					Buckets:   prometheus.DefBuckets,
				},
				[]string{"method", "route", "status"},
			),
		}
	})

	return globalMetrics
}

// ObserveResult counts one successful analysis run and everything it produced.
func (m *Metrics) ObserveResult(result *analysis.Result) {
	m.AnalysisRunsTotal.WithLabelValues(ResultOK).Inc()
	if result == nil {
		return
	}
	for _, in := range result.Insights {
		m.InsightsTotal.WithLabelValues(string(in.Category), string(in.Polarity)).Inc()
	}
	for _, rec := range result.Recommendations {
		m.RecommendationsTotal.WithLabelValues(string(rec.Category), string(rec.Priority)).Inc()
	}
}

// ObserveFailure counts an analysis run that returned no result.
func (m *Metrics) ObserveFailure(result string) {
	m.AnalysisRunsTotal.WithLabelValues(result).Inc()
}

// ObserveRequest records the duration of one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
