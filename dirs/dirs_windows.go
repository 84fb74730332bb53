//go:build windows

package dirs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve returns folders under the roaming and local AppData roots.
// Respects the AppData and LocalAppData environment variables if set.
func Resolve(app string) (*Dirs, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}

	roaming := os.Getenv("AppData")
	if roaming == "" {
		roaming = filepath.Join(homeDir, "AppData", "Roaming")
	}

	local := os.Getenv("LocalAppData")
	if local == "" {
		local = filepath.Join(homeDir, "AppData", "Local")
	}

	return &Dirs{
		Home:   homeDir,
		Config: filepath.Join(roaming, app),
		Data:   filepath.Join(roaming, app),
		Cache:  filepath.Join(local, app, "Cache"),
		Logs:   filepath.Join(local, app, "Logs"),
		Temp:   filepath.Join(os.TempDir(), app),
	}, nil
}
