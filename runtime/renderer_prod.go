//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/jokepage/console"
)

// recoverLifecycle logs a lifecycle panic instead of taking the page down.
func recoverLifecycle(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("ERROR: %s panic in component %s: %v", hook, key, rec))
	}
}

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer recoverLifecycle("OnInit", key)
	initializer.OnInit()
}

func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer recoverLifecycle("OnParametersSet", key)
	receiver.OnParametersSet()
}
