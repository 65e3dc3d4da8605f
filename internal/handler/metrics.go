package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cuidja_orders",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_processed_total",
			Help:      "Total number of checkouts turned into orders",
		},
	)

	checkoutsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cuidja_orders",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkout processing attempts",
		},
	)

	checkoutsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cuidja_orders",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_dlq_total",
			Help:      "Total number of checkouts written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cuidja_orders",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	checkoutProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cuidja_orders",
			Subsystem: "kafka_consumer",
			Name:      "checkout_processing_duration_seconds",
			Help:      "Histogram of checkout processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cuidja_orders",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_in_progress",
			Help:      "Number of checkouts currently being processed",
		},
	)
)

var (
	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cuidja_orders",
			Subsystem: "http",
			Name:      "operations_total",
			Help:      "Total number of order operations by result",
		},
		[]string{"operation", "status"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cuidja_orders",
			Subsystem: "http",
			Name:      "operation_duration_seconds",
			Help:      "Histogram of order operation durations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	liveStreams = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "cuidja_orders",
			Subsystem: "http",
			Name:      "live_streams",
			Help:      "Number of open server-sent event streams",
		},
		[]string{"stream"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsProcessed,
		checkoutsFailed,
		checkoutsDLQ,
		commitErrors,
		checkoutProcessingDuration,
		checkoutsInProgress,

		operationsTotal,
		operationDuration,
		liveStreams,
	)
}
