//go:build !pawdebug

package sharedlog

// Release stubs for the pawdebug entry points. See debug_on.go.

func Debug(string) {}

func Debugv(string) {}

func DebugError(string) {}

func DebugErrno(string, int) {}
