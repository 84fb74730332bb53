//go:build unix

package sharedlog

import (
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

func TestStrerrorKnownCode(t *testing.T) {
	got := strerror(int(unix.ENOENT))
	if !strings.Contains(strings.ToLower(got), "no such file") {
		t.Errorf("strerror(ENOENT) = %q, want the platform description", got)
	}
}

func TestStrerrorOutOfRange(t *testing.T) {
	if got := strerror(999999); got == "" {
		t.Error("strerror(999999) = empty, want a placeholder")
	}
	if got := strerror(-7); !strings.Contains(got, "-7") {
		t.Errorf("strerror(-7) = %q, want placeholder naming the code", got)
	}
}

func TestErrorWithErrnoKnownCode(t *testing.T) {
	l, _, errOut := testLogger("")

	if err := l.ErrorWithErrno("failed: ", int(unix.ENOENT)); err != nil {
		t.Fatalf("ErrorWithErrno() error: %v", err)
	}
	got := errOut.String()
	if !strings.HasPrefix(got, "failed: ") {
		t.Errorf("output = %q, want prefix %q", got, "failed: ")
	}
	if !strings.Contains(strings.ToLower(got), "no such file") {
		t.Errorf("output = %q, want the ENOENT description appended", got)
	}
}
