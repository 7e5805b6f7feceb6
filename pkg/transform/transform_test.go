package transform

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

const eps = 1e-9

func approxVec(a, b v3.Vec) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{2.5, "2.5"},
		{-20, "-20"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{0.125, "0.125"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTransformCSS(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		want string
	}{
		{
			name: "front",
			tr:   Transform{Rotation{AxisX, 0}, Translation{AxisZ, 5, "%"}},
			want: "rotateX(0deg) translateZ(5%)",
		},
		{
			name: "left",
			tr:   Transform{Rotation{AxisY, -90}, Translation{AxisX, -20, "px"}},
			want: "rotateY(-90deg) translateX(-20px)",
		},
		{
			name: "fractional",
			tr:   Transform{Rotation{AxisX, 90}, Translation{AxisY, -2.5, "em"}},
			want: "rotateX(90deg) translateY(-2.5em)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAxisString(t *testing.T) {
	if AxisX.String() != "X" || AxisY.String() != "Y" || AxisZ.String() != "Z" {
		t.Error("unexpected axis names")
	}
	if Axis(7).String() != "Axis(7)" {
		t.Errorf("unexpected name for invalid axis: %s", Axis(7))
	}
}

// The translation happens in the rotated frame: flipping about X and then
// pushing along Z ends up behind the plane, not in front of it.
func TestMatrixRotatesBeforeTranslating(t *testing.T) {
	back := Transform{Rotation{AxisX, 180}, Translation{AxisZ, 5, "px"}}
	got := back.Matrix().MulPosition(v3.Vec{})
	if !approxVec(got, v3.Vec{Z: -5}) {
		t.Errorf("back origin maps to %v, want (0,0,-5)", got)
	}

	left := Transform{Rotation{AxisY, -90}, Translation{AxisX, -5, "px"}}
	got = left.Matrix().MulPosition(v3.Vec{})
	if !approxVec(got, v3.Vec{Z: -5}) {
		t.Errorf("left origin maps to %v, want (0,0,-5)", got)
	}
}

func TestRectPoint(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 40, H: 60}
	tests := []struct {
		o    Origin
		want v3.Vec
	}{
		{OriginCenter, v3.Vec{X: 30, Y: 50}},
		{OriginLeft, v3.Vec{X: 10, Y: 50}},
		{OriginRight, v3.Vec{X: 50, Y: 50}},
		{OriginTop, v3.Vec{X: 30, Y: 20}},
		{OriginBottom, v3.Vec{X: 30, Y: 80}},
	}
	for _, tt := range tests {
		if got := r.Point(tt.o); !approxVec(got, tt.want) {
			t.Errorf("Point(%s) = %v, want %v", tt.o, got, tt.want)
		}
	}
}

func TestOriginCSS(t *testing.T) {
	want := map[Origin]string{
		OriginCenter: "center",
		OriginLeft:   "left",
		OriginRight:  "right",
		OriginTop:    "top",
		OriginBottom: "bottom",
	}
	for o, s := range want {
		if o.CSS() != s {
			t.Errorf("Origin(%d).CSS() = %q, want %q", int(o), o.CSS(), s)
		}
	}
}

func TestPlaceIdentity(t *testing.T) {
	r := Rect{W: 4, H: 2}
	q := Place(r, OriginCenter, Transform{Rotation{AxisX, 0}, Translation{AxisZ, 0, ""}})
	for i, c := range r.Corners() {
		if !approxVec(q[i], c) {
			t.Errorf("corner %d moved: %v -> %v", i, c, q[i])
		}
	}
	if n := q.Normal(); !approxVec(n, v3.Vec{Z: 1}) {
		t.Errorf("untransformed panel should face +Z, got %v", n)
	}
}

func TestPlaceAboutEdge(t *testing.T) {
	// A 10-wide panel hinged on its left edge and swung -90deg about Y
	// stands in the plane x=0, reaching from z=0 to z=10.
	r := Rect{W: 10, H: 4}
	q := Place(r, OriginLeft, Transform{Rotation{AxisY, -90}, Translation{AxisX, 0, ""}})
	for i, p := range q {
		if math.Abs(p.X) > eps {
			t.Errorf("corner %d: x = %v, want 0", i, p.X)
		}
	}
	if !approxVec(q[1], v3.Vec{Z: 10}) {
		t.Errorf("top-right corner = %v, want (0,0,10)", q[1])
	}
	if n := q.Normal(); !approxVec(n, v3.Vec{X: -1}) {
		t.Errorf("normal = %v, want (-1,0,0)", n)
	}
}

func TestQuadCenter(t *testing.T) {
	q := Rect{X: 2, Y: 2, W: 4, H: 6}.Corners()
	if c := q.Center(); !approxVec(c, v3.Vec{X: 4, Y: 5}) {
		t.Errorf("Center() = %v", c)
	}
}
