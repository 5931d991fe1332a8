package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/simp-lee/logger"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildLoggerOpts_OptionCounts(t *testing.T) {
	// Console-only configs always emit level, context middleware, console
	// format, and console color. A file path adds the path and file format;
	// each set rotation field adds one more.
	const consoleCount = 4
	const fileCount = consoleCount + 2

	tests := []struct {
		name      string
		cfg       *LogConfig
		wantCount int
	}{
		{"console only", &LogConfig{Level: "info", Format: "text"}, consoleCount},
		{"unknown level still builds", &LogConfig{Level: "loud", Format: "text"}, consoleCount},
		{"unknown format still builds", &LogConfig{Level: "info", Format: "xml"}, consoleCount},
		{"color disabled", &LogConfig{Level: "info", Format: "text", Color: boolPtr(false)}, consoleCount},
		{"file output", &LogConfig{Level: "info", Format: "json", FilePath: "campus.log"}, fileCount},
		{"file with size cap", &LogConfig{Level: "info", Format: "json", FilePath: "campus.log", MaxSizeMB: 50}, fileCount + 1},
		{"file with full rotation", &LogConfig{
			Level: "info", Format: "json", FilePath: "campus.log",
			MaxSizeMB: 50, RetentionDays: 30, MaxBackups: 5, CompressRotated: boolPtr(true),
		}, fileCount + 4},
		{"zero rotation fields add nothing", &LogConfig{
			Level: "info", Format: "text", FilePath: "campus.log",
			MaxSizeMB: 0, RetentionDays: 0, MaxBackups: 0,
		}, fileCount},
		{"rotation fields without a file path are ignored", &LogConfig{
			Level: "info", Format: "text", MaxSizeMB: 50, MaxBackups: 5,
		}, consoleCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := BuildLoggerOpts(tt.cfg)
			if len(opts) != tt.wantCount {
				t.Errorf("option count = %d, want %d", len(opts), tt.wantCount)
			}
		})
	}
}

func TestBuildLoggerOpts_NilConfig(t *testing.T) {
	if opts := BuildLoggerOpts(nil); opts != nil {
		t.Fatalf("BuildLoggerOpts(nil) = %d options; want nil", len(opts))
	}
}

func TestBuildLoggerOpts_LevelBehavior(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"uppercase WARN", "WARN", slog.LevelWarn},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.New(BuildLoggerOpts(&LogConfig{Level: tt.level, Format: "text"})...)
			if err != nil {
				t.Fatalf("logger.New: %v", err)
			}
			defer log.Close()

			if !log.Enabled(context.TODO(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > slog.LevelDebug {
				below := tt.wantLevel - 1
				if log.Enabled(context.TODO(), below) {
					t.Errorf("expected level %v to be disabled", below)
				}
			}
		})
	}
}

func TestSetupLogger_NilConfig(t *testing.T) {
	if _, err := SetupLogger(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestSetupLogger_ConsoleAndFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "server.log")

	log, err := SetupLogger(&LogConfig{
		Level:    "info",
		Format:   "json",
		FilePath: filePath,
	})
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	defer log.Close()
}

func TestSetupLogger_SetsDefault(t *testing.T) {
	log, err := SetupLogger(&LogConfig{Level: "warn", Format: "text"})
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	defer log.Close()

	if slog.Default().Handler() != log.Handler() {
		t.Error("SetupLogger did not set slog.Default()")
	}
}
