package applog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"
)

// timestampLayout matches the "2006-01-02 15:04:05,000" form used in
// the file sink lines.
const timestampLayout = "2006-01-02 15:04:05,000"

const ansiReset = "\x1b[0m"

var severityColors = map[Severity]string{
	SeverityDebug:    "\x1b[36m", // cyan
	SeverityInfo:     "\x1b[32m", // green
	SeverityWarning:  "\x1b[33m", // yellow
	SeverityError:    "\x1b[31m", // red
	SeverityCritical: "\x1b[35m", // magenta
}

// sink is a single destination for formatted log lines. Writes go
// through a stdlib *log.Logger, whose internal locking keeps
// concurrent emission safe.
type sink struct {
	name       string // "console" or "file"
	out        *log.Logger
	file       *os.File // nil for the console sink
	timestamps bool
	color      bool
}

func newConsoleSink(cfg Config) *sink {
	s := &sink{
		name: "console",
		out:  log.New(cfg.Console, "", 0),
	}
	if f, ok := cfg.Console.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.color = true
	}
	return s
}

// newFileSink creates the log directory tree if needed and opens the
// file in truncate mode: one file per run.
func newFileSink(cfg Config) (*sink, error) {
	if dir := filepath.Dir(cfg.FilePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &sink{
		name:       "file",
		out:        log.New(f, "", 0),
		file:       f,
		timestamps: cfg.FileTimestamps,
	}, nil
}

// write emits one "LEVEL    [timestamp] message" line.
func (s *sink) write(sev Severity, now time.Time, msg string) error {
	tag := sev.tag()
	if s.color {
		if c, ok := severityColors[sev]; ok {
			tag = c + tag + ansiReset
		}
	}
	if s.timestamps {
		return s.out.Output(2, fmt.Sprintf("%s %s %s", tag, now.Format(timestampLayout), msg))
	}
	return s.out.Output(2, fmt.Sprintf("%s %s", tag, msg))
}

// Close releases the file handle, if any.
func (s *sink) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}
