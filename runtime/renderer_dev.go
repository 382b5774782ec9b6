//go:build (js || wasm) && dev
// +build js wasm
// +build dev

package runtime

// In dev builds lifecycle panics propagate so failures surface immediately.

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	initializer.OnInit()
}

func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	receiver.OnParametersSet()
}
