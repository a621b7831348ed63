package applog

import "sync"

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide logger, constructing it from the
// environment on first use. Sink attachment failures at this point are
// fatal and panic, matching the contract that the process cannot start
// without its log file.
func Default() *Logger {
	defaultOnce.Do(func() {
		l, err := New(FromEnv())
		if err != nil {
			panic(err)
		}
		defaultLogger = l
	})
	return defaultLogger
}

// Critical logs a message at CRITICAL on the default logger.
func Critical(format string, args ...any) {
	Default().Critical(format, args...)
}

// Error logs a message at ERROR on the default logger.
func Error(format string, args ...any) {
	Default().Error(format, args...)
}

// Warning logs a message at WARNING on the default logger.
func Warning(format string, args ...any) {
	Default().Warning(format, args...)
}

// Info logs a message at INFO on the default logger.
func Info(format string, args ...any) {
	Default().Info(format, args...)
}

// Debug logs a message at DEBUG on the default logger.
func Debug(format string, args ...any) {
	Default().Debug(format, args...)
}

// ProblemOccurred reports the sticky problem flag of the default
// logger.
func ProblemOccurred() bool {
	return Default().ProblemOccurred()
}

// Reset clears the default logger's problem flag and re-attaches its
// sinks.
func Reset() error {
	return Default().Reset()
}
