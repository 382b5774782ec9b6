//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/jokepage/console"
)

// listeners maps each rendered VNode with an OnClick to the js.Func attached
// to its element, so callbacks can be released per subtree.
var listeners = make(map[*VNode]js.Func)

// releaseCallbacks releases the callback stored for a single VNode.
func releaseCallbacks(el js.Value, v *VNode) {
	cb, ok := listeners[v]
	if !ok {
		return
	}
	if el.Truthy() {
		el.Call("removeEventListener", "click", cb)
	}
	cb.Release()
	delete(listeners, v)
}

// deepReleaseCallbacks releases every callback in the VNode subtree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	releaseCallbacks(js.Undefined(), v)
	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

func releaseAll() {
	for v, cb := range listeners {
		cb.Release()
		delete(listeners, v)
	}
}

func mountElement(selector string) (js.Value, bool) {
	doc := js.Global().Get("document")
	if !doc.Truthy() || selector == "" {
		return js.Undefined(), false
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined(), false
	}
	return mount, true
}

// Clear empties the mount element and releases event callbacks.
func Clear(selector string) {
	mount, ok := mountElement(selector)
	if !ok {
		return
	}
	releaseAll()
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil {
		return
	}
	mount, ok := mountElement(selector)
	if !ok {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func setAttributes(el js.Value, attrs map[string]any) {
	for k, v := range attrs {
		if b, ok := v.(bool); ok {
			if b {
				el.Call("setAttribute", k, "")
			}
			continue
		}
		el.Call("setAttribute", k, v)
	}
}

// attachClick binds n.OnClick to el and records the callback under n.
func attachClick(el js.Value, n *VNode) {
	if n.OnClick == nil {
		return
	}
	onClick := n.OnClick
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		onClick()
		return nil
	})
	el.Call("addEventListener", "click", cb)
	listeners[n] = cb
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	switch n.Tag {
	case "div", "p", "button", "span", "h1", "h2", "h3", "h4", "h5", "h6", "img":
	default:
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	setAttributes(el, n.Attributes)

	if n.Tag != "img" {
		if n.Content != "" {
			el.Set("textContent", n.Content)
		} else {
			for _, child := range n.Children {
				childEl := createElement(child)
				if childEl.Truthy() {
					el.Call("appendChild", childEl)
				}
			}
		}
	}

	attachClick(el, n)
	return el
}

// Patch updates the DOM under mountSelector from oldVNode to newVNode.
// Matching tags are patched in place (attributes, text and click handler);
// anything else is replaced.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}
	mount, ok := mountElement(mountSelector)
	if !ok {
		return
	}
	root := mount.Get("firstElementChild")
	if !root.Truthy() {
		RenderTo(mount, newVNode)
		return
	}
	patchElement(root, oldVNode, newVNode)
}

func patchElement(el js.Value, oldVNode, newVNode *VNode) {
	if oldVNode.Tag != newVNode.Tag || len(oldVNode.Children) != len(newVNode.Children) {
		deepReleaseCallbacks(oldVNode)
		replacement := createElement(newVNode)
		parent := el.Get("parentNode")
		if replacement.Truthy() && parent.Truthy() {
			parent.Call("replaceChild", replacement, el)
		}
		return
	}

	for key := range oldVNode.Attributes {
		if _, exists := newVNode.Attributes[key]; !exists {
			el.Call("removeAttribute", key)
		}
	}
	for key, value := range newVNode.Attributes {
		if oldVNode.Attributes == nil || oldVNode.Attributes[key] != value {
			setAttributes(el, map[string]any{key: value})
		}
	}

	// Rebind so the element always runs the handler from the latest render.
	releaseCallbacks(el, oldVNode)
	attachClick(el, newVNode)

	if len(newVNode.Children) == 0 {
		if oldVNode.Content != newVNode.Content && newVNode.Tag != "img" {
			el.Set("textContent", newVNode.Content)
		}
		return
	}

	children := el.Get("children")
	for i := range newVNode.Children {
		child := children.Call("item", i)
		if child.Truthy() {
			patchElement(child, oldVNode.Children[i], newVNode.Children[i])
		} else {
			deepReleaseCallbacks(oldVNode.Children[i])
		}
	}
}
