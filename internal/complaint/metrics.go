package complaint

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the complaint lifecycle counters.
type Metrics struct {
	Submitted     *prometheus.CounterVec
	StatusUpdates *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "grievance",
				Name:      "complaints_submitted_total",
				Help:      "Total number of complaints submitted, by assigned priority",
			},
			[]string{"priority"},
		),
		StatusUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "grievance",
				Name:      "complaint_status_updates_total",
				Help:      "Total number of complaint status updates, by new status",
			},
			[]string{"status"},
		),
	}
}
