package applog

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Process-wide registry of constructed loggers. Guarantees that
// repeated construction against one name never attaches a second sink
// pair.
var (
	registryMu sync.Mutex
	registry   = make(map[string]*Logger)
)

// Logger is a logging facade owning one console sink and one file
// sink. Construct it with New, or use Default for the process-wide
// instance.
type Logger struct {
	cfg          Config
	pathExplicit bool
	enabled      map[Severity]bool
	problem      atomic.Bool

	mu      sync.Mutex // guards the sinks across Reset and Close
	console *sink
	file    *sink
}

// New returns the Logger registered under cfg.Name, constructing it if
// it does not exist yet. Construction resolves defaults for unset
// fields, caches the severity activation table, and attaches the
// console and file sinks. A failure to create the log directory or
// open the log file is returned as-is; no degraded logging mode
// exists.
//
// When a Logger with the same name already exists it is returned
// unchanged and cfg is ignored.
func New(cfg Config) (*Logger, error) {
	pathExplicit := cfg.FilePath != ""
	cfg = cfg.withDefaults()

	registryMu.Lock()
	defer registryMu.Unlock()

	if l, ok := registry[cfg.Name]; ok {
		return l, nil
	}

	enabled := make(map[Severity]bool, len(severities))
	for _, s := range severities {
		enabled[s] = s >= cfg.Level
	}

	l := &Logger{
		cfg:          cfg,
		pathExplicit: pathExplicit,
		enabled:      enabled,
	}
	if err := l.attachSinks(); err != nil {
		return nil, err
	}
	registry[cfg.Name] = l
	return l, nil
}

// attachSinks attaches the console and file sinks, skipping any that
// is already attached. Callers hold l.mu or have exclusive access.
func (l *Logger) attachSinks() error {
	if l.console == nil {
		l.console = newConsoleSink(l.cfg)
	}
	if l.file == nil {
		fs, err := newFileSink(l.cfg)
		if err != nil {
			return err
		}
		l.file = fs
	}
	return nil
}

// Critical logs a message at CRITICAL and raises the problem flag.
func (l *Logger) Critical(format string, args ...any) {
	l.emit(SeverityCritical, format, args...)
}

// Error logs a message at ERROR and raises the problem flag.
func (l *Logger) Error(format string, args ...any) {
	l.emit(SeverityError, format, args...)
}

// Warning logs a message at WARNING and raises the problem flag.
func (l *Logger) Warning(format string, args ...any) {
	l.emit(SeverityWarning, format, args...)
}

// Info logs a message at INFO.
func (l *Logger) Info(format string, args ...any) {
	l.emit(SeverityInfo, format, args...)
}

// Debug logs a message at DEBUG.
func (l *Logger) Debug(format string, args ...any) {
	l.emit(SeverityDebug, format, args...)
}

func (l *Logger) emit(sev Severity, format string, args ...any) {
	if !l.enabled[sev] {
		return
	}

	if sev >= SeverityWarning && l.problem.CompareAndSwap(false, true) {
		if l.cfg.Observer != nil {
			l.cfg.Observer.ObserveProblem(l.cfg.Name)
		}
	}

	msg := fmt.Sprintf(format, args...)
	now := time.Now()

	l.mu.Lock()
	console, file := l.console, l.file
	l.mu.Unlock()

	if console != nil {
		if err := console.write(sev, now, msg); err != nil && l.cfg.Observer != nil {
			l.cfg.Observer.ObserveSinkError(l.cfg.Name, console.name)
		}
	}
	if file != nil {
		if err := file.write(sev, now, msg); err != nil && l.cfg.Observer != nil {
			l.cfg.Observer.ObserveSinkError(l.cfg.Name, file.name)
		}
	}

	if l.cfg.Observer != nil {
		l.cfg.Observer.ObserveRecord(l.cfg.Name, sev)
	}
}

// ProblemOccurred reports whether any WARNING-or-above record was
// emitted since construction or the last Reset.
func (l *Logger) ProblemOccurred() bool {
	return l.problem.Load()
}

// Reset clears the problem flag, detaches the sinks and re-attaches
// them. When the file path was derived from the date it is re-derived,
// so a long-running process picks up a fresh dated file. The old file
// handle is closed; a failure to open the new file is returned and
// leaves the logger without a file sink.
func (l *Logger) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
	l.console = nil

	if !l.pathExplicit {
		l.cfg.FilePath = defaultFilePath(l.cfg.Dir, l.cfg.Granularity, time.Now())
	}
	if err := l.attachSinks(); err != nil {
		return err
	}
	l.problem.Store(false)
	return nil
}

// Close releases the file sink and removes the logger from the
// registry, so a later New with the same name builds a fresh instance.
func (l *Logger) Close() error {
	registryMu.Lock()
	delete(registry, l.cfg.Name)
	registryMu.Unlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	var err error
	if l.file != nil {
		err = l.file.Close()
		l.file = nil
	}
	l.console = nil
	return err
}

// Name returns the registry name of the logger.
func (l *Logger) Name() string {
	return l.cfg.Name
}

// Level returns the severity threshold the logger was built with.
func (l *Logger) Level() Severity {
	return l.cfg.Level
}

// FilePath returns the current file sink destination.
func (l *Logger) FilePath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.FilePath
}
