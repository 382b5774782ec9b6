//go:build js || wasm
// +build js wasm

package runtime

import (
	"github.com/vcrobe/jokepage/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

const rootKey = "__root__"

// RendererImpl mounts a root component into a page element and keeps the
// DOM in sync with its VDOM across renders.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool // Components whose OnInit has run
	currentComponent Component
	mountID          string
	prevVDOM         *vdom.VNode
}

// NewRenderer creates a renderer that mounts under the element matching the
// CSS selector mountID (e.g. "#app").
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		mountID:     mountID,
	}
}

// SetCurrentComponent sets the root component.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// RenderRoot runs one render cycle for the root component.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}

	r.currentComponent.SetRenderer(r)

	if !r.initialized[rootKey] {
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}
	if receiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(receiver, rootKey)
	}

	newVDOM := r.currentComponent.Render(r)

	if r.prevVDOM == nil {
		vdom.Clear(r.mountID)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}
	r.prevVDOM = newVDOM
}

// RenderChild creates or reuses the child instance stored under key and
// renders it.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	instance, exists := r.instances[key]
	if !exists {
		instance = childWithProps
		r.instances[key] = instance
	} else if updater, ok := instance.(PropUpdater); ok {
		updater.ApplyProps(childWithProps)
	}

	instance.SetRenderer(r)

	if !r.initialized[key] {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}
	if receiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(receiver, key)
	}

	return instance.Render(r)
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
