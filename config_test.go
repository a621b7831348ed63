package applog

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "main_logger" {
		t.Errorf("Name = %q, want %q", cfg.Name, "main_logger")
	}
	if cfg.Level != SeverityInfo {
		t.Errorf("Level = %v, want %v", cfg.Level, SeverityInfo)
	}
	if cfg.Dir != "logs" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "logs")
	}
	if cfg.Granularity != GranularityDaily {
		t.Errorf("Granularity = %v, want %v", cfg.Granularity, GranularityDaily)
	}
	if !cfg.FileTimestamps {
		t.Error("FileTimestamps should default to true")
	}
	if cfg.FilePath != "" {
		t.Errorf("FilePath = %q, want empty (derived at construction)", cfg.FilePath)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"LOGGER_NAME", "LOG_LEVEL", "LOG_FILE", "LOG_DIR",
		"LOG_GRANULARITY", "LOG_FILE_TIMESTAMPS",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg != DefaultConfig() {
		t.Errorf("FromEnv() with empty environment = %+v, want DefaultConfig()", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LOGGER_NAME", "worker")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/worker.log")
	t.Setenv("LOG_DIR", "/var/log/worker")
	t.Setenv("LOG_GRANULARITY", "hourly")
	t.Setenv("LOG_FILE_TIMESTAMPS", "false")

	cfg := FromEnv()
	if cfg.Name != "worker" {
		t.Errorf("Name = %q, want %q", cfg.Name, "worker")
	}
	if cfg.Level != SeverityDebug {
		t.Errorf("Level = %v, want %v", cfg.Level, SeverityDebug)
	}
	if cfg.FilePath != "/tmp/worker.log" {
		t.Errorf("FilePath = %q, want %q", cfg.FilePath, "/tmp/worker.log")
	}
	if cfg.Dir != "/var/log/worker" {
		t.Errorf("Dir = %q, want %q", cfg.Dir, "/var/log/worker")
	}
	if cfg.Granularity != GranularityHourly {
		t.Errorf("Granularity = %v, want %v", cfg.Granularity, GranularityHourly)
	}
	if cfg.FileTimestamps {
		t.Error("FileTimestamps should be false")
	}
}

func TestFromEnvInvalidValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("LOG_GRANULARITY", "weekly")
	t.Setenv("LOG_FILE_TIMESTAMPS", "maybe")
	t.Setenv("LOGGER_NAME", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_DIR", "")

	cfg := FromEnv()
	if cfg.Level != SeverityInfo {
		t.Errorf("invalid LOG_LEVEL: Level = %v, want %v", cfg.Level, SeverityInfo)
	}
	if cfg.Granularity != GranularityDaily {
		t.Errorf("invalid LOG_GRANULARITY: Granularity = %v, want daily", cfg.Granularity)
	}
	if !cfg.FileTimestamps {
		t.Error("invalid LOG_FILE_TIMESTAMPS: should fall back to true")
	}
}

func TestDefaultFilePath(t *testing.T) {
	at := time.Date(2026, time.August, 31, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name        string
		granularity Granularity
		expected    string
	}{
		{
			name:        "Daily",
			granularity: GranularityDaily,
			expected:    filepath.Join("logs", "2026.08.31.log"),
		},
		{
			name:        "Hourly",
			granularity: GranularityHourly,
			expected:    filepath.Join("logs", "2026.08.31_14.log"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaultFilePath("logs", tt.granularity, at)
			if got != tt.expected {
				t.Errorf("defaultFilePath = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	if cfg.Name != DefaultName {
		t.Errorf("Name = %q, want %q", cfg.Name, DefaultName)
	}
	if cfg.Level != SeverityInfo {
		t.Errorf("Level = %v, want %v", cfg.Level, SeverityInfo)
	}
	if cfg.FilePath == "" {
		t.Error("FilePath should be derived when unset")
	}
	if cfg.Console == nil {
		t.Error("Console should default to a writer")
	}

	// Explicit fields survive
	explicit := Config{Name: "x", Level: SeverityError, FilePath: "/tmp/x.log"}.withDefaults()
	if explicit.Name != "x" || explicit.Level != SeverityError || explicit.FilePath != "/tmp/x.log" {
		t.Errorf("explicit fields were overridden: %+v", explicit)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		expected bool
	}{
		{"True", "true", false, true},
		{"One", "1", false, true},
		{"False", "false", true, false},
		{"Zero", "0", true, false},
		{"Empty uses fallback", "", true, true},
		{"Garbage uses fallback", "maybe", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APPLOG_TEST_BOOL", tt.value)
			if got := getEnvBool("APPLOG_TEST_BOOL", tt.fallback); got != tt.expected {
				t.Errorf("getEnvBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.expected)
			}
		})
	}
}
