// Package applog provides a process-wide logging facade that writes to
// a console stream and a dated log file.
//
// A Logger is built from a [Config] and attaches exactly two sinks:
//   - a console sink writing "LEVEL    message" lines
//   - a file sink writing "LEVEL    timestamp message" lines to a file
//     that is truncated once per run
//
// Loggers are registered by name; constructing a second Logger against
// an existing name returns the existing instance, so repeated setup
// never duplicates sinks.
//
// Emission is gated by a severity threshold cached at construction
// time. Any WARNING, ERROR or CRITICAL record additionally raises a
// sticky problem flag that callers can inspect with
// [Logger.ProblemOccurred] and clear with [Logger.Reset].
//
// Configuration is read from the environment (and an optional .env
// file) via [FromEnv]:
//   - LOGGER_NAME: registry name (default "main_logger")
//   - LOG_LEVEL: minimum severity (default INFO)
//   - LOG_FILE: explicit file sink path (default derived from the date)
//   - LOG_DIR: directory for the dated default path (default "logs")
//   - LOG_GRANULARITY: "daily" or "hourly" dated file names
//   - LOG_FILE_TIMESTAMPS: whether file lines carry a timestamp
package applog
