package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	rosterOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "operations_total",
		Help:      "Roster mutations by operation and outcome.",
	}, []string{"operation", "outcome"})
	rosterParticipants = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(rosterOperations, rosterParticipants)
}

// RecordRosterOperation counts one signup or unregister attempt.
func RecordRosterOperation(operation, outcome string) {
	rosterOperations.WithLabelValues(operation, outcome).Inc()
}

// SetRosterSize updates the participant gauge for an activity.
func SetRosterSize(activity string, size int) {
	rosterParticipants.WithLabelValues(activity).Set(float64(size))
}
