//go:build js || wasm

// Package console writes to the browser's developer console.
package console

import (
	"fmt"
	"syscall/js"
)

// prefix is prepended to every message so page output is easy to filter.
const prefix = "[jokepage]"

func call(method string, args []any) {
	c := js.Global().Get("console")
	if !c.Truthy() {
		return
	}
	out := make([]any, 0, len(args)+1)
	out = append(out, prefix)
	for _, a := range args {
		out = append(out, toJS(a))
	}
	c.Call(method, out...)
}

// toJS passes through values js.ValueOf accepts and stringifies the rest
// (errors, structs), which would otherwise panic.
func toJS(a any) any {
	switch v := a.(type) {
	case nil, js.Value, string, bool, int, int32, int64, uint, uint32, uint64, float32, float64:
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}

// Log writes at info level.
func Log(args ...any) {
	call("log", args)
}

// Warn writes at warning level.
func Warn(args ...any) {
	call("warn", args)
}

// Error writes at error level.
func Error(args ...any) {
	call("error", args)
}
