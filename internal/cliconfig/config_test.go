package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexcatdad/paw-dirs/sharedlog"
)

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "verbosity: verbose\nlog_file: /var/log/paw.log\nerror_file: /var/log/paw.err\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Verbosity != "verbose" {
		t.Errorf("Verbosity = %q, want %q", cfg.Verbosity, "verbose")
	}
	if cfg.LogFile != "/var/log/paw.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "/var/log/paw.log")
	}
	if cfg.ErrorFile != "/var/log/paw.err" {
		t.Errorf("ErrorFile = %q, want %q", cfg.ErrorFile, "/var/log/paw.err")
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing explicit file = nil, want error")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("verbosity: [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML = nil, want error")
	}
}

func TestLoadDefaultFallsBack(t *testing.T) {
	// Point the default config location at an empty directory.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Verbosity != "normal" {
		t.Errorf("Verbosity = %q, want the default %q", cfg.Verbosity, "normal")
	}
}

func TestApplyVerbosity(t *testing.T) {
	l := sharedlog.Shared()
	defer l.SetVerbosity(sharedlog.Normal)

	for _, tc := range []struct {
		in   string
		want sharedlog.Verbosity
	}{
		{"off", sharedlog.Off},
		{"normal", sharedlog.Normal},
		{"verbose", sharedlog.Verbose},
		{"", sharedlog.Normal},
	} {
		cfg := &Config{Verbosity: tc.in}
		if err := cfg.Apply(l); err != nil {
			t.Fatalf("Apply(%q) error: %v", tc.in, err)
		}
		if got := l.Verbosity(); got != tc.want {
			t.Errorf("Apply(%q): verbosity = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestApplyUnknownVerbosity(t *testing.T) {
	cfg := &Config{Verbosity: "shouting"}
	if err := cfg.Apply(sharedlog.Shared()); err == nil {
		t.Error("Apply() with unknown verbosity = nil, want error")
	}
}
