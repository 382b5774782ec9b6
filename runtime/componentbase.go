package runtime

import "github.com/vcrobe/jokepage/console"

// ComponentBase is a struct that components can embed to gain access to the
// StateHasChanged method, which triggers a UI re-render.
// This type has no build tags and works in both WASM and test environments.
type ComponentBase struct {
	renderer Renderer
}

// SetRenderer is called by the runtime to inject a reference to the
// renderer, enabling StateHasChanged. It should not be called by user code.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// Mounted reports whether the component has been attached to a renderer.
func (b *ComponentBase) Mounted() bool {
	return b.renderer != nil
}

// StateHasChanged signals that the component's state has been updated and
// the UI should be re-rendered. It is a no-op on an unmounted component.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Warn("StateHasChanged called, but renderer is nil (component not mounted?)")
		return
	}
	b.renderer.ReRender()
}
