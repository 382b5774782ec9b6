//go:build !(js || wasm)

package console

// Stub file for native builds so page code compiles and tests run.
// The browser implementation is in console.go.

// Log is a no-op in native builds.
func Log(args ...any) {}

// Warn is a no-op in native builds.
func Warn(args ...any) {}

// Error is a no-op in native builds.
func Error(args ...any) {}
