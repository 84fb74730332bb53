//go:build !unix && !windows

package sharedlog

import "fmt"

// strerror has no error table on this platform.
func strerror(code int) string {
	return fmt.Sprintf("error %d", code)
}
