package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "eatda",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatda",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "eatda",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	mapSearches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatda",
			Subsystem: "map",
			Name:      "searches_total",
			Help:      "Keyword searches sent to the map provider.",
		},
		[]string{"result"},
	)

	mapSearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "eatda",
			Subsystem: "map",
			Name:      "search_duration_seconds",
			Help:      "Latency of map provider keyword searches.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
	)

	presigns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatda",
			Subsystem: "storage",
			Name:      "presigned_urls_total",
			Help:      "Presigned image URLs generated.",
		},
		[]string{"result"},
	)

	backfillStores = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eatda",
			Subsystem: "task",
			Name:      "store_backfill_total",
			Help:      "Places processed by the store backfill task.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpInFlight,
		httpRequests,
		httpDuration,
		mapSearches,
		mapSearchDuration,
		presigns,
		backfillStores,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func IncInFlight() { httpInFlight.Inc() }
func DecInFlight() { httpInFlight.Dec() }

// ObserveHTTP records one handled request. route is the matched pattern, not the raw path.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveMapSearch(err error, elapsed time.Duration) {
	mapSearches.WithLabelValues(resultLabel(err)).Inc()
	mapSearchDuration.Observe(elapsed.Seconds())
}

func ObservePresign(err error) {
	presigns.WithLabelValues(resultLabel(err)).Inc()
}

// ObserveBackfill records a backfill outcome: "created", "not_found" or "error".
func ObserveBackfill(result string) {
	backfillStores.WithLabelValues(result).Inc()
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
