// Package testcomponents provides an in-memory runtime.Renderer for testing
// components without a browser.
package testcomponents

import (
	"github.com/vcrobe/jokepage/runtime"
	"github.com/vcrobe/jokepage/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
//
// Lifecycle hooks follow the browser renderer: OnInit once before the first
// render, OnParametersSet before every render.
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	initialized bool
	renders     int
	children    map[string]runtime.Component
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
		children:  make(map[string]runtime.Component),
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component and returns its VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.render()
	return r.currentVDOM
}

// ReRender is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.render()
}

func (r *TestRenderer) render() {
	if !r.initialized {
		if initializer, ok := r.component.(runtime.Initializer); ok {
			initializer.OnInit()
		}
		r.initialized = true
	}
	if receiver, ok := r.component.(runtime.ParameterReceiver); ok {
		receiver.OnParametersSet()
	}
	r.currentVDOM = r.component.Render(r)
	r.renders++
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// RenderCount returns how many render passes have run.
func (r *TestRenderer) RenderCount() int {
	return r.renders
}

// RenderChild keeps one instance per key like the browser renderer: the
// first instance is stored, later calls apply the new props to it.
func (r *TestRenderer) RenderChild(key string, childWithProps runtime.Component) *vdom.VNode {
	instance, exists := r.children[key]
	if !exists {
		instance = childWithProps
		r.children[key] = instance
		if initializer, ok := instance.(runtime.Initializer); ok {
			initializer.OnInit()
		}
	} else if updater, ok := instance.(runtime.PropUpdater); ok {
		updater.ApplyProps(childWithProps)
	}

	instance.SetRenderer(r)
	if receiver, ok := instance.(runtime.ParameterReceiver); ok {
		receiver.OnParametersSet()
	}
	return instance.Render(r)
}

// Child returns the instance stored under key, or nil.
func (r *TestRenderer) Child(key string) runtime.Component {
	return r.children[key]
}
