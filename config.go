package applog

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Granularity selects how the default log file name encodes the
// current time.
type Granularity int

const (
	// GranularityDaily names the file after the current date
	GranularityDaily Granularity = iota
	// GranularityHourly names the file after the current date and hour
	GranularityHourly
)

// Defaults applied when the corresponding Config field or environment
// variable is absent.
const (
	DefaultName = "main_logger"
	DefaultDir  = "logs"
)

// Config holds all logger configuration. Every field is optional; see
// DefaultConfig for the values applied to unset fields. Note that the
// zero Config disables file timestamps — use DefaultConfig or FromEnv
// to get the timestamped file format.
type Config struct {
	// Name identifies the logger in the process-wide registry.
	Name string

	// Level is the minimum severity a record must meet to be emitted.
	Level Severity

	// FilePath is an explicit file sink destination. When empty the
	// path is derived from the current date, under Dir.
	FilePath string

	// Dir is the directory the dated default file is placed in.
	// Ignored when FilePath is set.
	Dir string

	// Granularity selects daily or hourly dated file names.
	Granularity Granularity

	// FileTimestamps controls whether file sink lines carry a
	// timestamp. Console lines never do.
	FileTimestamps bool

	// Console overrides the console sink destination. Defaults to
	// stderr.
	Console io.Writer

	// Observer receives instrumentation callbacks. Optional.
	Observer Observer
}

// DefaultConfig returns the configuration used when no external
// configuration is present: logger "main_logger" at INFO, a daily
// dated file under "logs/", timestamped file lines.
func DefaultConfig() Config {
	return Config{
		Name:           DefaultName,
		Level:          SeverityInfo,
		Dir:            DefaultDir,
		Granularity:    GranularityDaily,
		FileTimestamps: true,
	}
}

// FromEnv builds a Config from environment variables, starting from
// DefaultConfig. A .env file in the working directory is loaded first,
// best-effort. Missing or malformed variables fall back to defaults
// and are never an error.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.Name = getEnv("LOGGER_NAME", cfg.Name)
	cfg.FilePath = getEnv("LOG_FILE", "")
	cfg.Dir = getEnv("LOG_DIR", cfg.Dir)
	cfg.FileTimestamps = getEnvBool("LOG_FILE_TIMESTAMPS", cfg.FileTimestamps)

	if lvl, err := ParseSeverity(os.Getenv("LOG_LEVEL")); err == nil {
		cfg.Level = lvl
	}
	if strings.EqualFold(os.Getenv("LOG_GRANULARITY"), "hourly") {
		cfg.Granularity = GranularityHourly
	}
	return cfg
}

// withDefaults fills unset fields. FilePath resolution happens here so
// the dated name reflects construction time.
func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Level == 0 {
		c.Level = SeverityInfo
	}
	if c.Dir == "" {
		c.Dir = DefaultDir
	}
	if c.FilePath == "" {
		c.FilePath = defaultFilePath(c.Dir, c.Granularity, time.Now())
	}
	if c.Console == nil {
		c.Console = os.Stderr
	}
	return c
}

func defaultFilePath(dir string, g Granularity, now time.Time) string {
	layout := "2006.01.02"
	if g == GranularityHourly {
		layout = "2006.01.02_15"
	}
	return filepath.Join(dir, now.Format(layout)+".log")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
