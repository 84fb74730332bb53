//go:build linux

package dirs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve returns XDG-compliant folders for Linux. Respects
// XDG_CONFIG_HOME, XDG_DATA_HOME, XDG_CACHE_HOME and XDG_STATE_HOME if set.
func Resolve(app string) (*Dirs, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(homeDir, ".config")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		cacheHome = filepath.Join(homeDir, ".cache")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(homeDir, ".local", "state")
	}

	return &Dirs{
		Home:   homeDir,
		Config: filepath.Join(configHome, app),
		Data:   filepath.Join(dataHome, app),
		Cache:  filepath.Join(cacheHome, app),
		Logs:   filepath.Join(stateHome, app),
		Temp:   filepath.Join(os.TempDir(), app),
	}, nil
}
