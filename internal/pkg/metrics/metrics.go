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
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tourism", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tourism", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	Uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tourism", Name: "uploads_total", Help: "Stored uploads by category and result."},
		[]string{"category", "result"}, // result: stored|rejected|failed
	)
	CleanupEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "tourism", Name: "file_cleanup_events_total", Help: "Superseded-file cleanup outcomes."},
		[]string{"event"}, // event: failed|queued|retried|recovered|dead_lettered
	)
	SearchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tourism", Name: "search_table_duration_seconds",
			Help:    "Per-table search query duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table"},
	)
	BookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "tourism", Name: "booking_conflicts_total", Help: "Booking requests rejected for overlapping dates."},
	)
)

// InitRegistry registers the application collectors plus Go runtime metrics.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		HTTPRequests, HTTPLatency, Uploads, CleanupEvents, SearchLatency, BookingConflicts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveUpload(category, result string) {
	Uploads.WithLabelValues(category, result).Inc()
}

func ObserveCleanup(event string) {
	CleanupEvents.WithLabelValues(event).Inc()
}

func ObserveSearch(table string, dur time.Duration) {
	SearchLatency.WithLabelValues(table).Observe(dur.Seconds())
}

func ObserveBookingConflict() {
	BookingConflicts.Inc()
}
