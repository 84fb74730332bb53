//go:build windows

package sharedlog

import (
	"fmt"
	"syscall"
)

// strerror returns the system description for an error code via
// FORMAT_MESSAGE. Codes the system cannot describe yield a placeholder
// rather than failing.
func strerror(code int) string {
	if code < 0 {
		return fmt.Sprintf("unknown error %d", code)
	}
	return syscall.Errno(code).Error()
}
