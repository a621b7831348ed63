package metrics

import "applog"

// loggerObserver implements applog.Observer using the Prometheus
// metrics declared in this package.
type loggerObserver struct{}

// NewObserver creates an observer that records facade activity into
// the Prometheus counters and gauges declared in metrics.go. Attach it
// via the Observer field of applog.Config.
func NewObserver() applog.Observer {
	return &loggerObserver{}
}

func (o *loggerObserver) ObserveRecord(logger string, severity applog.Severity) {
	RecordsTotal.WithLabelValues(logger, severity.String()).Inc()
}

func (o *loggerObserver) ObserveProblem(logger string) {
	ProblemsTotal.WithLabelValues(logger).Inc()
	ProblemState.WithLabelValues(logger).Set(1)
}

func (o *loggerObserver) ObserveSinkError(logger, sink string) {
	SinkErrors.WithLabelValues(logger, sink).Inc()
}
