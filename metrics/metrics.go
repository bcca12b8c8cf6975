package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "formula1",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "formula1",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "formula1",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route"},
	)

	lapsUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "formula1",
			Subsystem: "results",
			Name:      "laps_updated_total",
			Help:      "Results whose laps were rewritten by the bulk laps update.",
		},
	)

	entitiesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "formula1",
			Subsystem: "store",
			Name:      "created_total",
			Help:      "Rows created per entity.",
		},
		[]string{"entity"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpInFlight,
		httpRequests,
		httpDuration,
		lapsUpdated,
		entitiesCreated,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// RequestStarted increments the in-flight gauge and returns the function
// that records the finished request.
func RequestStarted() func(method, route string, status int, elapsed time.Duration) {
	httpInFlight.Inc()
	return func(method, route string, status int, elapsed time.Duration) {
		httpInFlight.Dec()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	}
}

// RecordLapsUpdated counts rows touched by a bulk laps update.
func RecordLapsUpdated(n int64) {
	if n > 0 {
		lapsUpdated.Add(float64(n))
	}
}

// RecordCreated counts a newly created stage, stable or result.
func RecordCreated(entity string) {
	entitiesCreated.WithLabelValues(entity).Inc()
}
