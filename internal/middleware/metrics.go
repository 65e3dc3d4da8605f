package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "cuidja_orders",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests, open event streams included.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cuidja_orders",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cuidja_orders",
		Subsystem: "http",
		Name:      "request_duration",
		Help:      "HTTP request latencies in seconds. Event streams are not observed.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	httpStreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cuidja_orders",
		Subsystem: "http",
		Name:      "stream_duration",
		Help:      "Lifetime of server-sent event streams in seconds.",
		Buckets:   []float64{1, 10, 60, 300, 900, 3600, 4 * 3600},
	}, []string{"route"})
)

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := "unknown"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		elapsed := time.Since(start).Seconds()

		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(rw.status),
		}
		httpRequestsTotal.With(labels).Inc()

		// стрим живёт минутами и испортил бы гистограмму латентности
		if rw.Header().Get("Content-Type") == "text/event-stream" {
			httpStreamDuration.WithLabelValues(route).Observe(elapsed)
			return
		}
		httpRequestDuration.With(labels).Observe(elapsed)
	})
}
