//go:build !darwin && !linux && !windows

package dirs

import "fmt"

// Resolve returns an error on unsupported platforms.
func Resolve(app string) (*Dirs, error) {
	return nil, fmt.Errorf("dirs: unsupported platform")
}
