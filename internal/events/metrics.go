package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cuidja_orders",
	Subsystem: "events",
	Name:      "published_total",
	Help:      "Total number of order events written to Kafka.",
}, []string{"type"})
