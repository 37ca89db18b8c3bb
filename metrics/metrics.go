// Package metrics holds Prometheus instrumentation shared by the admin
// surface. The store's own hit/miss/eviction/expiration counters are
// registered per instance through cache.WithMetrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// StatsCounter tracks admin "view stats" requests.
	StatsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "respcache_admin_stats_total",
		Help: "Total number of admin stats requests",
	})
	// ClearCounter tracks admin cache clears.
	ClearCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "respcache_admin_clear_total",
		Help: "Total number of admin cache clears",
	})
	// CleanupCounter tracks forced out-of-cycle cleanup passes.
	CleanupCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "respcache_admin_cleanup_total",
		Help: "Total number of forced cleanup passes",
	})
)

// NewRegistry creates a new Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// RegisterAdminMetrics registers the admin counters on the provided registry.
func RegisterAdminMetrics(reg prometheus.Registerer) {
	reg.MustRegister(StatsCounter, ClearCounter, CleanupCounter)
}
