//go:build pawdebug

package sharedlog

// Debug-only entry points for embedding applications. Building with the
// pawdebug tag compiles these through to the shared logger; release builds
// get the empty stubs in debug_off.go instead, so neither the calls nor
// their diagnostic strings reach the shipped binary.

// Debug forwards text to Shared().Print.
func Debug(text string) {
	Shared().Print(text)
}

// Debugv forwards text to Shared().Printv.
func Debugv(text string) {
	Shared().Printv(text)
}

// DebugError forwards text to Shared().Error.
func DebugError(text string) {
	Shared().Error(text)
}

// DebugErrno forwards text and code to Shared().ErrorWithErrno.
func DebugErrno(text string, code int) {
	Shared().ErrorWithErrno(text, code)
}
