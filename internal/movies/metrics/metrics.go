package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks the movie proxy: cache effectiveness, upstream outcomes and
// breaker state.
type Metrics struct {
	CacheLookups     *prometheus.CounterVec
	UpstreamRequests *prometheus.CounterVec
	BreakerState     *prometheus.GaugeVec
	BreakerChanges   *prometheus.CounterVec
}

// New registers the movie proxy metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cineclub_movies_cache_lookups_total",
			Help: "Movie cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		UpstreamRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cineclub_movies_upstream_requests_total",
			Help: "Upstream movie API calls by outcome (success, not_found, failure, rejected)",
		}, []string{"outcome"}),
		BreakerState: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cineclub_movies_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		}, []string{"name"}),
		BreakerChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cineclub_movies_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		}, []string{"name", "from", "to"}),
	}
}

func (m *Metrics) ObserveCache(result string) {
	m.CacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveUpstream(outcome string) {
	m.UpstreamRequests.WithLabelValues(outcome).Inc()
}

// ObserveBreaker records a transition and the new state value.
func (m *Metrics) ObserveBreaker(name, from, to string, value float64) {
	m.BreakerState.WithLabelValues(name).Set(value)
	m.BreakerChanges.WithLabelValues(name, from, to).Inc()
}
