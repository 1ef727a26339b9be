package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Log.Level != "info" || !cfg.History.Enabled || cfg.History.RetentionDays != 30 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if !strings.Contains(string(data), "key_delay_ms") {
		t.Fatalf("written config missing typing section:\n%s", data)
	}

	// Loading the written file yields the same values
	again, err := LoadFile(path)
	if err != nil {
		t.Fatalf("second LoadFile() error = %v", err)
	}
	if *again != *cfg {
		t.Fatalf("reloaded config = %+v, want %+v", again, cfg)
	}
}

func TestLoadFile_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[typing]\nkey_delay_ms = 15\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Typing.KeyDelayMs != 15 {
		t.Fatalf("KeyDelayMs = %d, want 15", cfg.Typing.KeyDelayMs)
	}
	if cfg.Log.Level != "info" || cfg.History.RetentionDays != 30 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{name: "bad toml", content: "[typing\n", errPart: "decode"},
		{name: "negative delay", content: "[typing]\nkey_delay_ms = -1\n", errPart: "key_delay_ms"},
		{name: "negative max chars", content: "[typing]\nmax_chars = -5\n", errPart: "max_chars"},
		{name: "negative retention", content: "[history]\nretention_days = -1\n", errPart: "retention_days"},
		{name: "unknown level", content: "[log]\nlevel = \"loud\"\n", errPart: "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Fatalf("LoadFile() error = %v, want containing %q", err, tt.errPart)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
