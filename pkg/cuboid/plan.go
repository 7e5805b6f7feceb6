package cuboid

import (
	"github.com/chazu/cuboid/pkg/transform"
)

// Style property names and fixed values set by the builder.
const (
	PropWidth           = "width"
	PropHeight          = "height"
	PropTop             = "top"
	PropLeft            = "left"
	PropRight           = "right"
	PropBottom          = "bottom"
	PropPosition        = "position"
	PropDisplay         = "display"
	PropTransform       = "transform"
	PropTransformOrigin = "transform-origin"
	PropTransformStyle  = "transform-style"
	PropPerspective     = "perspective"

	Full        = "100%"
	Flush       = "0"
	Preserve3D  = "preserve-3d"
	Relative    = "relative"
	Absolute    = "absolute"
	Block       = "block"
	ClassCuboid = "cuboid"
	ClassSide   = "side"
)

// Declaration is one style property assignment.
type Declaration struct {
	Property string
	Value    string
}

// FacePlan is everything the builder applies to one face panel.
type FacePlan struct {
	Face      Face
	Width     string
	Height    string
	Anchors   []Declaration // edges the panel is flush with
	Origin    transform.Origin
	Transform transform.Transform
}

// faceGeometry is the per-face rotation and translation direction. Faces of
// the same pair share sizing and differ only in these signs.
type faceGeometry struct {
	rotAxis   transform.Axis
	degrees   float64
	transAxis transform.Axis
	sign      float64
	origin    transform.Origin
	anchor    string
}

var geometry = [NumFaces]faceGeometry{
	// The back face uses the same +x push as the front: after the 180deg
	// flip its Z axis points away from the viewer.
	Front:  {transform.AxisX, 0, transform.AxisZ, +1, transform.OriginCenter, PropLeft},
	Back:   {transform.AxisX, 180, transform.AxisZ, +1, transform.OriginCenter, PropLeft},
	Left:   {transform.AxisY, -90, transform.AxisX, -1, transform.OriginLeft, PropLeft},
	Right:  {transform.AxisY, 90, transform.AxisX, +1, transform.OriginRight, PropRight},
	Top:    {transform.AxisX, 90, transform.AxisY, -1, transform.OriginTop, PropTop},
	Bottom: {transform.AxisX, -90, transform.AxisY, +1, transform.OriginBottom, PropBottom},
}

// Plan returns the face plan for f on a box of the given depth. Unit must
// already be resolved.
func Plan(f Face, depth float64, unit string) FacePlan {
	g := geometry[f]
	thickness := transform.FormatNumber(depth) + unit

	p := FacePlan{
		Face:   f,
		Origin: g.origin,
		Transform: transform.Transform{
			Rotate:    transform.Rotation{Axis: g.rotAxis, Degrees: g.degrees},
			Translate: transform.Translation{Axis: g.transAxis, Offset: g.sign * depth / 2, Unit: unit},
		},
	}

	switch f {
	case Front, Back:
		p.Width, p.Height = Full, Full
		p.Anchors = []Declaration{{PropTop, Flush}, {PropLeft, Flush}}
	case Left, Right:
		p.Width, p.Height = thickness, Full
		p.Anchors = []Declaration{{PropTop, Flush}, {g.anchor, Flush}}
	case Top, Bottom:
		p.Width, p.Height = Full, thickness
		p.Anchors = []Declaration{{PropLeft, Flush}, {g.anchor, Flush}}
	}
	return p
}

// Plans returns the plans for all six faces in construction order.
func Plans(depth float64, unit string) [NumFaces]FacePlan {
	var out [NumFaces]FacePlan
	for _, f := range Faces {
		out[f] = Plan(f, depth, unit)
	}
	return out
}

// Declarations returns every style the builder sets on the face, in order.
func (p FacePlan) Declarations() []Declaration {
	decls := []Declaration{
		{PropHeight, p.Height},
		{PropWidth, p.Width},
	}
	decls = append(decls, p.Anchors...)
	if p.Origin != transform.OriginCenter {
		decls = append(decls, Declaration{PropTransformOrigin, p.Origin.CSS()})
	}
	decls = append(decls,
		Declaration{PropTransform, p.Transform.CSS()},
		Declaration{PropPosition, Absolute},
		Declaration{PropDisplay, Block},
		Declaration{PropTransformStyle, Preserve3D},
	)
	return decls
}

// Class returns the face panel's class list.
func (p FacePlan) Class() string {
	return ClassSide + " " + p.Face.String()
}

// Rect lays the untransformed panel out in a w x h container for a box of
// depth d, all in the same unit.
func (p FacePlan) Rect(w, h, d float64) transform.Rect {
	switch p.Face {
	case Left:
		return transform.Rect{W: d, H: h}
	case Right:
		return transform.Rect{X: w - d, W: d, H: h}
	case Top:
		return transform.Rect{W: w, H: d}
	case Bottom:
		return transform.Rect{Y: h - d, W: w, H: d}
	default:
		return transform.Rect{W: w, H: h}
	}
}

// Place returns the panel's corners after its transform, in container
// coordinates with z=0 on the center plane.
func (p FacePlan) Place(w, h, d float64) transform.Quad {
	return transform.Place(p.Rect(w, h, d), p.Origin, p.Transform)
}
