package applog

// Observer receives instrumentation callbacks from a Logger.
// Implementations must be safe for concurrent use.
type Observer interface {
	// ObserveRecord is called once per emitted record.
	ObserveRecord(logger string, severity Severity)

	// ObserveProblem is called when a warning-or-above record raises
	// the problem flag. It fires on the false-to-true transition only,
	// not on every gated record.
	ObserveProblem(logger string)

	// ObserveSinkError is called when a sink write fails after
	// construction. Sink is "console" or "file".
	ObserveSinkError(logger, sink string)
}
