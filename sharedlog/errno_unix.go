//go:build unix

package sharedlog

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// strerror returns the platform description for an errno value. Codes
// outside the platform's error table yield a placeholder rather than
// failing.
func strerror(code int) string {
	if code < 0 {
		return fmt.Sprintf("unknown error %d", code)
	}
	return unix.Errno(code).Error()
}
