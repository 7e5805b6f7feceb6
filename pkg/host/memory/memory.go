// Package memory implements host.Host as a plain in-memory panel tree.
// It is used by tests and by anything that wants to inspect a built cuboid
// without a rendering environment.
package memory

import (
	"sort"
	"strings"

	"github.com/chazu/cuboid/pkg/host"
)

// Compile-time interface checks.
var (
	_ host.Host       = (*Host)(nil)
	_ host.Identifier = (*Host)(nil)
)

// Panel is a node created by Host.
type Panel struct {
	ID       string
	Class    string
	Style    map[string]string
	Parent   *Panel
	Children []*Panel
}

// NewPanel returns an empty, detached panel. Useful as an external node such
// as a perspective target.
func NewPanel() *Panel {
	return &Panel{Style: make(map[string]string)}
}

// Get returns the value of a style property and whether it was set.
func (p *Panel) Get(property string) (string, bool) {
	v, ok := p.Style[property]
	return v, ok
}

// HasClass reports whether class is one of the panel's classes.
func (p *Panel) HasClass(class string) bool {
	for _, c := range strings.Fields(p.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// ChildWithClass returns the first direct child carrying class, or nil.
func (p *Panel) ChildWithClass(class string) *Panel {
	for _, c := range p.Children {
		if c.HasClass(class) {
			return c
		}
	}
	return nil
}

// StyleString renders the style map as a sorted inline declaration list.
func (p *Panel) StyleString() string {
	keys := make([]string, 0, len(p.Style))
	for k := range p.Style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(p.Style[k])
		b.WriteByte(';')
	}
	return b.String()
}

// Host creates Panels. The zero value is ready to use.
type Host struct {
	// Created counts panels made by CreatePanel.
	Created int
}

// New returns a new Host.
func New() *Host {
	return &Host{}
}

// CreatePanel returns a new *Panel.
func (h *Host) CreatePanel() host.Node {
	h.Created++
	return NewPanel()
}

// SetClass sets the panel's class list.
func (h *Host) SetClass(n host.Node, class string) {
	unwrap(n).Class = class
}

// SetStyle sets a style property.
func (h *Host) SetStyle(n host.Node, property, value string) {
	p := unwrap(n)
	if p.Style == nil {
		p.Style = make(map[string]string)
	}
	p.Style[property] = value
}

// AppendChild attaches child to parent, detaching it from any previous parent.
func (h *Host) AppendChild(parent, child host.Node) {
	pp, cp := unwrap(parent), unwrap(child)
	if old := cp.Parent; old != nil {
		for i, c := range old.Children {
			if c == cp {
				old.Children = append(old.Children[:i], old.Children[i+1:]...)
				break
			}
		}
	}
	cp.Parent = pp
	pp.Children = append(pp.Children, cp)
}

// SetID sets the panel's id.
func (h *Host) SetID(n host.Node, id string) {
	unwrap(n).ID = id
}

// unwrap extracts the *Panel behind a host.Node.
func unwrap(n host.Node) *Panel {
	return n.(*Panel)
}
