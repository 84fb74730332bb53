// Package sharedlog provides the process-wide logger shared by the paw
// tools: two independent output channels (normal and error), each of which
// can be redirected from the live console to an append-mode file, a
// verbosity gate for the normal channel, and console-input helpers that
// serialize with concurrent output.
//
// All methods are safe for concurrent use. Writes to the same channel never
// interleave; the normal and error channels are fully independent, so an
// error write is never blocked by a pending console read.
package sharedlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/atomic"
)

// Verbosity controls which normal-channel writes are emitted.
type Verbosity int32

const (
	// Off suppresses all normal-channel output.
	Off Verbosity = iota
	// Normal emits Print output. This is the default.
	Normal
	// Verbose emits Print and Printv output.
	Verbose
)

// ConfigError reports a log or error file that could not be opened. The
// channel keeps writing to its previous destination.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sharedlog: cannot use %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// channel is one of the two output paths. The mutex guards the redirect
// state together with the write itself, so a write can never be split
// across destinations by a concurrent UseLogFile/UseErrorFile.
type channel struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File // nil means the console is active
	path    string
}

func (c *channel) write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	w := c.console
	if c.file != nil {
		w = c.file
	}
	_, err := io.WriteString(w, text)
	return err
}

// redirect opens path in append mode and swaps it in. The open happens
// before the lock is taken so a failure cannot disturb in-flight writes.
func (c *channel) redirect(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.file != nil {
		c.file.Close()
	}
	c.file = f
	c.path = path
	return nil
}

// Logger is a thread-safe logger with independent normal and error
// channels. Use Shared to obtain the process-wide instance.
type Logger struct {
	level  atomic.Int32
	out    channel // normal channel, console destination os.Stdout
	errOut channel // error channel, console destination os.Stderr
	in     *bufio.Reader
}

var (
	sharedOnce sync.Once
	shared     *Logger
)

// Shared returns the process-wide logger, creating it on first use. The
// instance lives for the rest of the process; redirected files stay open
// until exit.
func Shared() *Logger {
	sharedOnce.Do(func() {
		shared = newLogger(os.Stdout, os.Stderr, os.Stdin)
	})
	return shared
}

func newLogger(out, errOut io.Writer, in io.Reader) *Logger {
	l := &Logger{in: bufio.NewReader(in)}
	l.level.Store(int32(Normal))
	l.out.console = out
	l.errOut.console = errOut
	return l
}

// Verbosity returns the current gate value.
func (l *Logger) Verbosity() Verbosity {
	return Verbosity(l.level.Load())
}

// SetVerbosity updates the gate. The new value applies to writes issued
// after the call; writes already in flight may use either value.
func (l *Logger) SetVerbosity(v Verbosity) {
	l.level.Store(int32(v))
}

// Print writes text on the normal channel when verbosity is Normal or
// higher. Text is written verbatim; callers supply their own newlines.
// When the gate is Off the call returns immediately without taking the
// channel lock. A failed write is returned, never raised further.
func (l *Logger) Print(text string) error {
	if l.Verbosity() < Normal {
		return nil
	}
	return l.out.write(text)
}

// Printv is Print for verbose diagnostics; it emits only when verbosity
// is Verbose.
func (l *Logger) Printv(text string) error {
	if l.Verbosity() < Verbose {
		return nil
	}
	return l.out.write(text)
}

// Error writes text on the error channel. Errors are never gated by
// verbosity.
func (l *Logger) Error(text string) error {
	return l.errOut.write(text)
}

// ErrorWithErrno writes text followed by the platform's description of the
// errno code. Unknown codes degrade to a placeholder string.
func (l *Logger) ErrorWithErrno(text string, code int) error {
	return l.errOut.write(text + strerror(code))
}

// ReadLine writes prompt to the console and blocks until a full line
// arrives on standard input. The normal channel stays locked for the
// duration, so concurrent Print calls cannot interleave with the prompt;
// the error channel is unaffected. The returned line carries no trailing
// line terminator. The prompt always goes to the live console, even when
// the normal channel is redirected to a file.
func (l *Logger) ReadLine(prompt string) (string, error) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	if _, err := io.WriteString(l.out.console, prompt); err != nil {
		return "", err
	}
	line, err := l.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadChar is ReadLine for a single character of input.
func (l *Logger) ReadChar(prompt string) (byte, error) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	if _, err := io.WriteString(l.out.console, prompt); err != nil {
		return 0, err
	}
	return l.in.ReadByte()
}

// UseLogFile redirects the normal channel to the file at path, creating it
// if absent and appending otherwise. Calling it again repoints to the new
// path; the previous file is closed. On failure a *ConfigError is returned
// and the previous destination stays active.
func (l *Logger) UseLogFile(path string) error {
	return l.out.redirect(path)
}

// UseErrorFile is UseLogFile for the error channel.
func (l *Logger) UseErrorFile(path string) error {
	return l.errOut.redirect(path)
}
