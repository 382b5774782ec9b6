// Package dom is the slice of the browser document the page logic needs.
//
// It has no build tags: the browser implementation lives in dom/jsdom
// (js/wasm only) and an in-memory one in dom/memdom for native tests.
package dom

// Element is a handle to a single page element.
type Element interface {
	// Text returns the element's text content.
	Text() string

	// SetText replaces the element's text content.
	SetText(text string)

	// SetAttribute sets a string attribute such as "src".
	SetAttribute(name, value string)

	// OnClick subscribes handler to the element's click event. The returned
	// func unsubscribes it and frees any resources held for the callback.
	OnClick(handler func()) (release func())
}

// Document looks elements up by their stable identifier.
type Document interface {
	// ElementByID returns the element with the given id, or false if the
	// page has no such element.
	ElementByID(id string) (Element, bool)
}
