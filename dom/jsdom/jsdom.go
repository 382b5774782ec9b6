//go:build js || wasm
// +build js wasm

// Package jsdom implements dom.Document on top of syscall/js.
package jsdom

import (
	"syscall/js"

	"github.com/vcrobe/jokepage/dom"
)

// Compile-time assertions.
var (
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
)

// Document wraps the browser's global document object.
type Document struct {
	v js.Value
}

// Global returns the page's document. If the host has no document (e.g.
// running inside a worker) every lookup reports not found.
func Global() *Document {
	return &Document{v: js.Global().Get("document")}
}

// ElementByID calls document.getElementById.
func (d *Document) ElementByID(id string) (dom.Element, bool) {
	if !d.v.Truthy() || id == "" {
		return nil, false
	}
	el := d.v.Call("getElementById", id)
	if !el.Truthy() {
		return nil, false
	}
	return &Element{v: el}, true
}

// Element wraps a DOM element.
type Element struct {
	v js.Value
}

// Value exposes the underlying js.Value.
func (e *Element) Value() js.Value {
	return e.v
}

func (e *Element) Text() string {
	return e.v.Get("textContent").String()
}

func (e *Element) SetText(text string) {
	e.v.Set("textContent", text)
}

func (e *Element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

// OnClick wraps handler in a js.Func and registers it with addEventListener.
// The js.Func stays alive until release is called.
func (e *Element) OnClick(handler func()) (release func()) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})
	e.v.Call("addEventListener", "click", cb)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		e.v.Call("removeEventListener", "click", cb)
		cb.Release()
	}
}
