package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlagEnv(t *testing.T) {
	t.Setenv("PFW_LOG_FORMAT", "json")
	t.Setenv("PFW_CONFIG", "/etc/pfwupdater.yml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-format", "", "")
	flags.String("config", "", "")
	if err := flags.Parse([]string{"--config", "/tmp/local.yml"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	bindFlagEnv(flags)

	if v, _ := flags.GetString("log-format"); v != "json" {
		t.Errorf("log-format = %q, want json from env", v)
	}
	// Explicit flag beats the environment.
	if v, _ := flags.GetString("config"); v != "/tmp/local.yml" {
		t.Errorf("config = %q, want /tmp/local.yml", v)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCmdVersion(t *testing.T) {
	cmd := newCmdVersion()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)
	if !strings.Contains(buf.String(), "pfwupdater version") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
