//go:build js && wasm

// Package jsdom implements host.Host on the live browser DOM through
// syscall/js. It is only built for GOOS=js GOARCH=wasm.
package jsdom

import (
	"fmt"
	"syscall/js"

	"github.com/chazu/cuboid/pkg/host"
)

// Compile-time interface checks.
var (
	_ host.Host       = (*Host)(nil)
	_ host.Identifier = (*Host)(nil)
)

// Host drives a browser document.
type Host struct {
	doc js.Value

	// Tag is the element created for panels. Defaults to "div".
	Tag string
}

// New returns a Host for the global document.
func New() *Host {
	return &Host{doc: js.Global().Get("document")}
}

// Body returns the document body.
func (h *Host) Body() js.Value {
	return h.doc.Get("body")
}

// Query returns the first element matching sel.
func (h *Host) Query(sel string) (js.Value, error) {
	v := h.doc.Call("querySelector", sel)
	if v.IsNull() {
		return js.Null(), fmt.Errorf("jsdom: selector %q matched no element", sel)
	}
	return v, nil
}

// Resolve looks up a perspective target by selector.
func (h *Host) Resolve(target string) (host.Node, error) {
	v, err := h.Query(target)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// CreatePanel creates a detached element.
func (h *Host) CreatePanel() host.Node {
	tag := h.Tag
	if tag == "" {
		tag = "div"
	}
	return h.doc.Call("createElement", tag)
}

// SetClass sets className.
func (h *Host) SetClass(n host.Node, class string) {
	unwrap(n).Set("className", class)
}

// SetID sets the element id.
func (h *Host) SetID(n host.Node, id string) {
	unwrap(n).Set("id", id)
}

// SetStyle sets one property with style.setProperty, which takes the
// hyphenated CSS name.
func (h *Host) SetStyle(n host.Node, property, value string) {
	unwrap(n).Get("style").Call("setProperty", property, value)
}

// AppendChild appends child to parent. The DOM moves an already attached
// child.
func (h *Host) AppendChild(parent, child host.Node) {
	unwrap(parent).Call("appendChild", unwrap(child))
}

// unwrap extracts the js.Value behind a host.Node.
func unwrap(n host.Node) js.Value {
	return n.(js.Value)
}
