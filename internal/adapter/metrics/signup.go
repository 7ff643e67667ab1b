package metrics

import "github.com/prometheus/client_golang/prometheus"

// Enroll/withdraw result labels.
const (
	ResultOK              = "ok"
	ResultNotFound        = "not_found"
	ResultAlreadySignedUp = "already_signed_up"
	ResultFull            = "full"
	ResultNotRegistered   = "not_registered"
	ResultError           = "error"
)

// SignupMetrics holds Prometheus metrics for registry mutations and roster
// occupancy.
type SignupMetrics struct {
	EnrollmentsTotal *prometheus.CounterVec
	WithdrawalsTotal *prometheus.CounterVec
	Participants     *prometheus.GaugeVec
	Capacity         *prometheus.GaugeVec
}

// NewSignupMetrics creates and registers signup metrics on the given registry.
func NewSignupMetrics(reg prometheus.Registerer) *SignupMetrics {
	m := &SignupMetrics{
		EnrollmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "enrollments_total",
			Help:      "Total signup attempts by activity and result.",
		}, []string{"activity", "result"}),
		WithdrawalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "withdrawals_total",
			Help:      "Total unregister attempts by activity and result.",
		}, []string{"activity", "result"}),
		Participants: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "activity_participants",
			Help:      "Current roster size per activity.",
		}, []string{"activity"}),
		Capacity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "registry",
			Name:      "activity_capacity",
			Help:      "Maximum roster size per activity.",
		}, []string{"activity"}),
	}

	reg.MustRegister(m.EnrollmentsTotal, m.WithdrawalsTotal, m.Participants, m.Capacity)
	return m
}

// ObserveEnroll records a signup attempt.
func (m *SignupMetrics) ObserveEnroll(activity, result string) {
	m.EnrollmentsTotal.WithLabelValues(activity, result).Inc()
}

// ObserveWithdraw records an unregister attempt.
func (m *SignupMetrics) ObserveWithdraw(activity, result string) {
	m.WithdrawalsTotal.WithLabelValues(activity, result).Inc()
}

// SetRoster updates the occupancy gauges for an activity.
func (m *SignupMetrics) SetRoster(activity string, participants, capacity int) {
	m.Participants.WithLabelValues(activity).Set(float64(participants))
	m.Capacity.WithLabelValues(activity).Set(float64(capacity))
}
