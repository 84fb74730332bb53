//go:build darwin

package dirs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_Darwin(t *testing.T) {
	d, err := Resolve("pawapp")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("os.UserHomeDir() error: %v", err)
	}

	if d.Home != homeDir {
		t.Errorf("Home = %q, want %q", d.Home, homeDir)
	}
	if want := filepath.Join(homeDir, "Library", "Preferences", "pawapp"); d.Config != want {
		t.Errorf("Config = %q, want %q", d.Config, want)
	}
	if want := filepath.Join(homeDir, "Library", "Application Support", "pawapp"); d.Data != want {
		t.Errorf("Data = %q, want %q", d.Data, want)
	}
	if want := filepath.Join(homeDir, "Library", "Caches", "pawapp"); d.Cache != want {
		t.Errorf("Cache = %q, want %q", d.Cache, want)
	}
	if want := filepath.Join(homeDir, "Library", "Logs", "pawapp"); d.Logs != want {
		t.Errorf("Logs = %q, want %q", d.Logs, want)
	}
}
