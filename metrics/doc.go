// Package metrics provides Prometheus instrumentation for the applog
// facade. All metrics are prefixed with "applog_" to avoid naming
// collisions with the host application.
//
// # Metrics
//
//   - RecordsTotal: counter of emitted records by logger and level
//   - SinkErrors: counter of failed sink writes by logger and sink
//   - ProblemsTotal: counter of problem-flag raises by logger
//   - ProblemState: gauge of the current problem flag by logger (0/1)
//
// # Usage
//
// Metrics are registered with the default Prometheus registry using
// promauto. Attach an observer to a logger to feed the counters:
//
//	logger, err := applog.New(applog.Config{
//		Name:     "worker",
//		Observer: metrics.NewObserver(),
//	})
//
// The observer raises ProblemState when the flag trips; because a
// Reset clears the flag without any callback, run a [Collector] to
// poll the gauge back down:
//
//	collector := metrics.NewCollector(30*time.Second, logger)
//	collector.Start()
//	defer collector.Stop()
//
// Call InitializeMetrics with the known logger names once at startup
// so every series is present from the first scrape.
package metrics
