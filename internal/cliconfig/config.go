// Package cliconfig loads the optional pawdirs CLI configuration file.
// The file configures the shared logger only; everything else the CLI does
// is driven by flags.
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/alexcatdad/paw-dirs/dirs"
	"github.com/alexcatdad/paw-dirs/sharedlog"
)

// Config mirrors the keys of config.yaml.
type Config struct {
	Verbosity string `yaml:"verbosity"` // off, normal, verbose
	LogFile   string `yaml:"log_file"`
	ErrorFile string `yaml:"error_file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Verbosity: "normal"}
}

// DefaultPath returns the platform location of config.yaml.
func DefaultPath() (string, error) {
	d, err := dirs.Resolve("pawdirs")
	if err != nil {
		return "", err
	}
	return filepath.Join(d.Config, "config.yaml"), nil
}

// Load reads the configuration file at path. An empty path means
// DefaultPath, and a missing file at the default location falls back to
// Default; a missing file at an explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// Apply wires the configuration into the logger.
func (c *Config) Apply(l *sharedlog.Logger) error {
	switch c.Verbosity {
	case "", "normal":
		l.SetVerbosity(sharedlog.Normal)
	case "off":
		l.SetVerbosity(sharedlog.Off)
	case "verbose":
		l.SetVerbosity(sharedlog.Verbose)
	default:
		return fmt.Errorf("unknown verbosity %q (want off, normal or verbose)", c.Verbosity)
	}

	if c.LogFile != "" {
		if err := l.UseLogFile(c.LogFile); err != nil {
			return err
		}
	}
	if c.ErrorFile != "" {
		if err := l.UseErrorFile(c.ErrorFile); err != nil {
			return err
		}
	}
	return nil
}
