// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Lookup metrics
	toolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hospital_tool_invocations_total",
			Help: "Total number of tool invocations by outcome",
		},
		[]string{"tool", "outcome"},
	)

	toolDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hospital_tool_duration_seconds",
			Help:    "Tool invocation duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"tool"},
	)

	datasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hospital_dataset_records",
			Help: "Number of records loaded per dataset",
		},
		[]string{"dataset"},
	)
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RequestStarted marks an HTTP request in flight and returns the function that records it.
func RequestStarted() func(method, path string, status int) {
	start := time.Now()
	httpRequestsInFlight.Inc()
	return func(method, path string, status int) {
		httpRequestsInFlight.Dec()
		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordToolInvocation records one tool call and its outcome kind
func RecordToolInvocation(tool, outcome string, duration time.Duration) {
	toolInvocations.WithLabelValues(tool, outcome).Inc()
	toolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// SetDatasetRecords records how many rows a dataset loaded
func SetDatasetRecords(dataset string, count int) {
	datasetRecords.WithLabelValues(dataset).Set(float64(count))
}
