package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Emission metrics
var (
	RecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "applog_records_total",
			Help: "Total number of log records emitted",
		},
		[]string{"logger", "level"},
	)

	SinkErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "applog_sink_errors_total",
			Help: "Total number of failed sink writes",
		},
		[]string{"logger", "sink"},
	)
)

// Problem flag metrics
var (
	ProblemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "applog_problems_total",
			Help: "Number of times a logger's problem flag was raised",
		},
		[]string{"logger"},
	)

	ProblemState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "applog_problem_state",
			Help: "Whether a logger saw a warning-or-above record since its last reset (0 or 1)",
		},
		[]string{"logger"},
	)
)
