package runtime

import "github.com/vcrobe/jokepage/vdom"

// Renderer defines the minimal set of runtime operations components use.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Renderer interface {
	// RenderChild renders a child component. The key uniquely identifies the
	// component instance so its state survives re-renders.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}
