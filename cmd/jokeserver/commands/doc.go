// Package commands defines the jokeserver CLI.
//
// Commands
//
//   - serve   Serve the page shells, assets and compiled wasm module
//   - check   Verify that page shells carry the element ids the wasm module uses
//
// Settings come from JOKEPAGE_* environment variables and are overridden by
// flags.
package commands
