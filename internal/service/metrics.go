package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	VerificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rps_verifications_total",
			Help: "Commitment verifications by result",
		},
		[]string{"result"},
	)
	RoundsArchived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rps_rounds_archived_total",
			Help: "Resolved rounds written to the archive by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(VerificationsTotal)
	prometheus.MustRegister(RoundsArchived)
}
