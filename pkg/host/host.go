// Package host defines the rendering host capability the cuboid builder
// drives. Implementations (in-memory, HTML document, recorded script, live
// browser DOM) create rectangular panels, style them and compose them into a
// parent/child tree with inherited 3D context. The abstraction lets the
// geometry code stay free of any particular rendering environment.
package host

// Node is an opaque handle to a panel created by a Host. Implementations
// wrap their internal representation.
type Node interface{}

// Host is the rendering host capability.
type Host interface {
	// CreatePanel returns a new, detached rectangular panel.
	CreatePanel() Node

	// SetClass replaces the panel's class list.
	SetClass(n Node, class string)

	// SetStyle sets one style property, using hyphenated CSS property
	// names ("transform-origin"). Later writes win.
	SetStyle(n Node, property, value string)

	// AppendChild attaches child as the last child of parent.
	AppendChild(parent, child Node)
}

// Identifier is implemented by hosts that can give a panel an id.
type Identifier interface {
	SetID(n Node, id string)
}
