package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the group module.
// Tracks group creation, join request outcomes and operation durations.
type Metrics struct {
	GroupsCreated     prometheus.Counter
	GroupsDeleted     prometheus.Counter
	JoinRequests      *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// New registers the group metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		GroupsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "cineclub_groups_created_total",
			Help: "Total number of groups created",
		}),
		GroupsDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "cineclub_groups_deleted_total",
			Help: "Total number of groups deleted",
		}),
		JoinRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cineclub_join_requests_total",
			Help: "Join request transitions by outcome (requested, approved, rejected)",
		}, []string{"outcome"}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cineclub_group_operation_duration_seconds",
			Help:    "Duration of group service operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// IncrementGroupsCreated records a successful group creation.
func (m *Metrics) IncrementGroupsCreated() {
	m.GroupsCreated.Inc()
}

// IncrementGroupsDeleted records a successful group deletion.
func (m *Metrics) IncrementGroupsDeleted() {
	m.GroupsDeleted.Inc()
}

// IncrementJoinRequest records a join request transition.
func (m *Metrics) IncrementJoinRequest(outcome string) {
	m.JoinRequests.WithLabelValues(outcome).Inc()
}

// ObserveOperation records the duration of op.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(op string, start time.Time) {
	m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
