package cuboid

import (
	"fmt"

	"github.com/chazu/cuboid/pkg/diag"
	"github.com/chazu/cuboid/pkg/host"
)

// Perspective names an external node that should declare a perspective so
// the cuboid renders with depth. The builder writes Value to the target's
// perspective style; the target stays owned by the caller.
type Perspective struct {
	Target host.Node
	Value  string
}

// Cuboid is a built container and its six face panels. The container is not
// attached anywhere; the caller inserts it into a live tree.
type Cuboid struct {
	Container host.Node
	Faces     [NumFaces]host.Node

	// Resolved values. Width and Height are empty when the requested size
	// was invalid and the attribute was left unset.
	Unit   string
	Width  string
	Height string
}

// Face returns the panel for f.
func (c *Cuboid) Face(f Face) host.Node {
	return c.Faces[f]
}

// Identify gives the container an id when the host supports ids.
func (c *Cuboid) Identify(h host.Host, id string) bool {
	ider, ok := h.(host.Identifier)
	if !ok || id == "" {
		return false
	}
	ider.SetID(c.Container, id)
	return true
}

// Builder builds cuboids on a host. A Builder keeps no state between calls.
type Builder struct {
	Host host.Host
	Sink diag.Sink // nil discards diagnostics
}

// NewBuilder returns a Builder for h reporting to sink.
func NewBuilder(h host.Host, sink diag.Sink) *Builder {
	return &Builder{Host: h, Sink: sink}
}

// Build is shorthand for NewBuilder(h, sink).Build(dims, p).
func Build(h host.Host, sink diag.Sink, dims Dimensions, p *Perspective) *Cuboid {
	return NewBuilder(h, sink).Build(dims, p)
}

// Build creates a container with six face panels. It never fails: malformed
// input is reported to the sink and the affected attribute is skipped. A nil
// p (or one without a target) is reported as a warning and leaves every
// external node untouched.
func (b *Builder) Build(dims Dimensions, p *Perspective) *Cuboid {
	if dims.Unit == "" {
		b.report(diag.SeverityWarning, diag.CodeUnitDefaulted, "unit",
			fmt.Sprintf("no unit given, using %s", DefaultUnit))
		dims.Unit = DefaultUnit
	}

	c := &Cuboid{Unit: dims.Unit}
	c.Container = b.container(c, dims)

	for _, plan := range Plans(dims.Depth, dims.Unit) {
		face := b.face(plan)
		b.Host.AppendChild(c.Container, face)
		c.Faces[plan.Face] = face
	}

	if p == nil || p.Target == nil {
		b.report(diag.SeverityWarning, diag.CodePerspectiveMissing, "perspective",
			"no perspective target given; set perspective on an ancestor or the cuboid renders flat")
	} else {
		b.Host.SetStyle(p.Target, PropPerspective, p.Value)
	}
	return c
}

// container creates the parent panel and applies the resolved sizing.
func (b *Builder) container(c *Cuboid, dims Dimensions) host.Node {
	n := b.Host.CreatePanel()
	b.Host.SetClass(n, ClassCuboid)
	b.Host.SetStyle(n, PropPosition, Relative)
	b.Host.SetStyle(n, PropTransformStyle, Preserve3D)

	if w, ok := dims.Width.Format(dims.Unit); ok {
		b.Host.SetStyle(n, PropWidth, w)
		c.Width = w
	} else {
		b.report(diag.SeverityError, diag.CodeWidthUnsupported, "width",
			"width must be a magnitude or a preformatted size; leaving it unset")
	}
	if h, ok := dims.Height.Format(dims.Unit); ok {
		b.Host.SetStyle(n, PropHeight, h)
		c.Height = h
	} else {
		b.report(diag.SeverityError, diag.CodeHeightUnsupported, "height",
			"height must be a magnitude or a preformatted size; leaving it unset")
	}
	return n
}

// face creates one panel from its plan.
func (b *Builder) face(plan FacePlan) host.Node {
	n := b.Host.CreatePanel()
	b.Host.SetClass(n, plan.Class())
	for _, d := range plan.Declarations() {
		b.Host.SetStyle(n, d.Property, d.Value)
	}
	return n
}

func (b *Builder) report(sev diag.Severity, code, subject, msg string) {
	if b.Sink == nil {
		return
	}
	b.Sink.Report(diag.Diagnostic{Severity: sev, Code: code, Subject: subject, Message: msg})
}
