//go:build darwin

package dirs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve returns macOS-conventional folders for app under ~/Library/.
func Resolve(app string) (*Dirs, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return &Dirs{
		Home:   homeDir,
		Config: filepath.Join(homeDir, "Library", "Preferences", app),
		Data:   filepath.Join(homeDir, "Library", "Application Support", app),
		Cache:  filepath.Join(homeDir, "Library", "Caches", app),
		Logs:   filepath.Join(homeDir, "Library", "Logs", app),
		Temp:   filepath.Join(os.TempDir(), app),
	}, nil
}
