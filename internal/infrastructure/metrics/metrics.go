package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogadmin_cache_hits_total",
		Help: "Cached reads served without an upstream call.",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogadmin_cache_misses_total",
		Help: "Reads that had to fetch from the upstream.",
	})
	upstreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogadmin_upstream_errors_total",
		Help: "Upstream calls that resolved to a normalized error.",
	})
	authExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogadmin_auth_expired_total",
		Help: "Forced logouts triggered by upstream 401/403 responses.",
	})
	upstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "blogadmin_upstream_request_seconds",
		Help:    "Upstream request round-trip time.",
		Buckets: prometheus.DefBuckets,
	})
)

func IncCacheHit()    { cacheHits.Inc() }
func IncCacheMiss()   { cacheMisses.Inc() }
func IncUpstreamErr() { upstreamErrors.Inc() }
func IncAuthExpired() { authExpired.Inc() }

func ObserveUpstreamDuration(seconds float64) { upstreamDuration.Observe(seconds) }
