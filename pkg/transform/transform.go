// Package transform describes the rotate-then-translate transforms applied to
// cuboid face panels, both as CSS transform lists and as matrices.
//
// A Transform is always applied in one fixed order: the rotation first, then
// the translation along an axis of the rotated frame. In matrix form that is
// R·T applied to a column vector, which is also what a CSS transform list
// "rotateA(θ) translateB(d)" means.
package transform

import (
	"fmt"
	"math"
	"strconv"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Axis is one of the three coordinate axes. X grows to the right, Y grows
// downwards and Z grows towards the viewer, matching screen coordinates.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Unit returns the unit vector along a.
func (a Axis) Unit() v3.Vec {
	switch a {
	case AxisX:
		return v3.Vec{X: 1}
	case AxisY:
		return v3.Vec{Y: 1}
	default:
		return v3.Vec{Z: 1}
	}
}

// Rotation turns a panel about one axis.
type Rotation struct {
	Axis    Axis
	Degrees float64
}

// CSS renders the rotation as a transform function, e.g. "rotateY(-90deg)".
func (r Rotation) CSS() string {
	return fmt.Sprintf("rotate%s(%sdeg)", r.Axis, FormatNumber(r.Degrees))
}

// Matrix returns the rotation matrix.
func (r Rotation) Matrix() sdf.M44 {
	rad := r.Degrees * math.Pi / 180.0
	switch r.Axis {
	case AxisX:
		return sdf.RotateX(rad)
	case AxisY:
		return sdf.RotateY(rad)
	default:
		return sdf.RotateZ(rad)
	}
}

// Translation moves a panel along one axis by Offset, expressed in Unit.
type Translation struct {
	Axis   Axis
	Offset float64
	Unit   string
}

// CSS renders the translation as a transform function, e.g. "translateZ(5%)".
func (t Translation) CSS() string {
	return fmt.Sprintf("translate%s(%s%s)", t.Axis, FormatNumber(t.Offset), t.Unit)
}

// Vector returns the displacement, ignoring the unit.
func (t Translation) Vector() v3.Vec {
	return t.Axis.Unit().MulScalar(t.Offset)
}

// Matrix returns the translation matrix, ignoring the unit.
func (t Translation) Matrix() sdf.M44 {
	return sdf.Translate3d(t.Vector())
}

// Transform is a rotation followed by a translation in the rotated frame.
type Transform struct {
	Rotate    Rotation
	Translate Translation
}

// CSS renders the transform list, rotation first.
func (t Transform) CSS() string {
	return t.Rotate.CSS() + " " + t.Translate.CSS()
}

// Matrix returns R·T, the matrix that maps panel-local points (relative to
// the transform origin) into the parent's frame. Units are ignored; every
// length is assumed to be in the same unit.
func (t Transform) Matrix() sdf.M44 {
	return t.Rotate.Matrix().Mul(t.Translate.Matrix())
}

// FormatNumber formats f with the fewest digits that round-trip, the way a
// browser serializes lengths: 5 -> "5", 2.5 -> "2.5", -0 -> "0".
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
