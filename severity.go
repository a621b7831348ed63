package applog

import (
	"fmt"
	"strings"
)

// Severity represents the rank of a log record. The numeric values
// follow the usual logging convention: higher means more severe.
type Severity int

const (
	// SeverityDebug is verbose debugging information
	SeverityDebug Severity = 10
	// SeverityInfo is general operational messages
	SeverityInfo Severity = 20
	// SeverityWarning is warning conditions; raises the problem flag
	SeverityWarning Severity = 30
	// SeverityError is error conditions; raises the problem flag
	SeverityError Severity = 40
	// SeverityCritical is the most severe rank; raises the problem flag
	SeverityCritical Severity = 50
)

// severities lists every rank the facade can emit, highest first.
var severities = []Severity{
	SeverityCritical,
	SeverityError,
	SeverityWarning,
	SeverityInfo,
	SeverityDebug,
}

// ParseSeverity parses a severity name. Names are matched
// case-insensitively; "WARN" is accepted as an alias for "WARNING".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CRITICAL":
		return SeverityCritical, nil
	case "ERROR":
		return SeverityError, nil
	case "WARNING", "WARN":
		return SeverityWarning, nil
	case "INFO":
		return SeverityInfo, nil
	case "DEBUG":
		return SeverityDebug, nil
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

// String returns the canonical upper-case name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBUG"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// tag returns the 8-column level field used in emitted lines.
func (s Severity) tag() string {
	return fmt.Sprintf("%-8s", s.String())
}
