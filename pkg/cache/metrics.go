package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cuidja_orders",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by backend and result (hit, miss, error).",
	}, []string{"backend", "result"})

	evictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cuidja_orders",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries removed from the in-memory cache by reason.",
	}, []string{"reason"})
)

const (
	backendLRU   = "lru"
	backendRedis = "redis"
)

func observe(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	lookups.WithLabelValues(backend, result).Inc()
}
