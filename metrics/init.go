package metrics

// InitializeMetrics pre-populates all expected label combinations for
// the given logger names so that every metric is exported from the
// first Prometheus scrape. Call this once at startup after the loggers
// are constructed.
func InitializeMetrics(loggers ...string) {
	levels := []string{"CRITICAL", "ERROR", "WARNING", "INFO", "DEBUG"}
	sinks := []string{"console", "file"}

	for _, name := range loggers {
		for _, lvl := range levels {
			RecordsTotal.WithLabelValues(name, lvl)
		}
		for _, sink := range sinks {
			SinkErrors.WithLabelValues(name, sink)
		}
		ProblemsTotal.WithLabelValues(name)
		ProblemState.WithLabelValues(name).Set(0)
	}
}
