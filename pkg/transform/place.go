package transform

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Origin is the point of a panel that stays fixed while it is transformed.
type Origin int

const (
	OriginCenter Origin = iota
	OriginLeft
	OriginRight
	OriginTop
	OriginBottom
)

// CSS returns the transform-origin keyword. The center origin is the CSS
// default and renders as "center".
func (o Origin) CSS() string {
	switch o {
	case OriginLeft:
		return "left"
	case OriginRight:
		return "right"
	case OriginTop:
		return "top"
	case OriginBottom:
		return "bottom"
	default:
		return "center"
	}
}

func (o Origin) String() string { return o.CSS() }

// Rect is an untransformed panel laid out in its container, in container
// coordinates with the origin at the container's top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) String() string {
	return fmt.Sprintf("%gx%g@(%g,%g)", r.W, r.H, r.X, r.Y)
}

// Point returns the position of origin o on r, at z=0. A single edge keyword
// centers the other coordinate, as CSS does for "left" or "top".
func (r Rect) Point(o Origin) v3.Vec {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	switch o {
	case OriginLeft:
		return v3.Vec{X: r.X, Y: cy}
	case OriginRight:
		return v3.Vec{X: r.X + r.W, Y: cy}
	case OriginTop:
		return v3.Vec{X: cx, Y: r.Y}
	case OriginBottom:
		return v3.Vec{X: cx, Y: r.Y + r.H}
	default:
		return v3.Vec{X: cx, Y: cy}
	}
}

// Corners returns the four corners of r, clockwise from the top-left.
func (r Rect) Corners() Quad {
	return Quad{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// Quad is a transformed panel: four corners clockwise from the panel's own
// top-left as seen from its front.
type Quad [4]v3.Vec

// Normal returns the unit vector the panel's front side faces.
func (q Quad) Normal() v3.Vec {
	return q[1].Sub(q[0]).Cross(q[3].Sub(q[0])).Normalize()
}

// Center returns the average of the four corners.
func (q Quad) Center() v3.Vec {
	var c v3.Vec
	for _, p := range q {
		c = c.Add(p)
	}
	return c.MulScalar(0.25)
}

// Matrix returns the full placement matrix for a panel laid out at r and
// transformed by t about origin o: translate the origin to zero, apply t,
// then translate back.
func Matrix(r Rect, o Origin, t Transform) sdf.M44 {
	p := r.Point(o)
	return sdf.Translate3d(p).Mul(t.Matrix()).Mul(sdf.Translate3d(p.MulScalar(-1)))
}

// Place transforms the corners of r.
func Place(r Rect, o Origin, t Transform) Quad {
	m := Matrix(r, o, t)
	var q Quad
	for i, c := range r.Corners() {
		q[i] = m.MulPosition(c)
	}
	return q
}
