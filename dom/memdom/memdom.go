// Package memdom is an in-memory dom.Document for tests and tooling that run
// without a browser.
package memdom

import (
	"maps"

	"github.com/vcrobe/jokepage/dom"
)

// Compile-time assertions.
var (
	_ dom.Document = (*Document)(nil)
	_ dom.Element  = (*Element)(nil)
)

// Document holds elements keyed by id.
type Document struct {
	elements map[string]*Element
}

// NewDocument creates a document containing one empty element per id.
func NewDocument(ids ...string) *Document {
	d := &Document{elements: make(map[string]*Element)}
	for _, id := range ids {
		d.Add(id)
	}
	return d
}

// Add inserts (or replaces) an empty element with the given id and returns it.
func (d *Document) Add(id string) *Element {
	el := &Element{id: id, attrs: make(map[string]string)}
	d.elements[id] = el
	return el
}

// Remove deletes the element with the given id, if any.
func (d *Document) Remove(id string) {
	delete(d.elements, id)
}

// Get returns the concrete element so tests can inspect and click it.
func (d *Document) Get(id string) (*Element, bool) {
	el, ok := d.elements[id]
	return el, ok
}

func (d *Document) ElementByID(id string) (dom.Element, bool) {
	el, ok := d.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

// ElementState is a point-in-time copy of an element's observable state.
type ElementState struct {
	Text     string
	Attrs    map[string]string
	Handlers int
}

// Snapshot captures every element's state, keyed by id.
func (d *Document) Snapshot() map[string]ElementState {
	out := make(map[string]ElementState, len(d.elements))
	for id, el := range d.elements {
		out[id] = ElementState{
			Text:     el.text,
			Attrs:    maps.Clone(el.attrs),
			Handlers: el.HandlerCount(),
		}
	}
	return out
}

// Element is an in-memory element.
type Element struct {
	id       string
	text     string
	attrs    map[string]string
	handlers []*func()
	writes   int
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

func (e *Element) Text() string { return e.text }

func (e *Element) SetText(text string) {
	e.text = text
	e.writes++
}

// Writes counts SetText calls.
func (e *Element) Writes() int { return e.writes }

func (e *Element) SetAttribute(name, value string) {
	e.attrs[name] = value
}

// Attribute returns an attribute value and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) OnClick(handler func()) (release func()) {
	h := &handler
	e.handlers = append(e.handlers, h)
	return func() {
		for i, cur := range e.handlers {
			if cur == h {
				e.handlers = append(e.handlers[:i], e.handlers[i+1:]...)
				return
			}
		}
	}
}

// HandlerCount returns the number of subscribed click handlers.
func (e *Element) HandlerCount() int { return len(e.handlers) }

// Click dispatches a click to every subscribed handler in subscription order.
func (e *Element) Click() {
	hs := make([]*func(), len(e.handlers))
	copy(hs, e.handlers)
	for _, h := range hs {
		(*h)()
	}
}
