package cuboid

import (
	"fmt"
	"math"
	"testing"

	"github.com/chazu/cuboid/pkg/transform"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func nearVec(a, b v3.Vec) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

// key rounds a point so corners can be compared as map keys.
func key(p v3.Vec) string {
	r := func(f float64) float64 { return math.Round(f*1e6) / 1e6 }
	return fmt.Sprintf("%g,%g,%g", r(p.X)+0, r(p.Y)+0, r(p.Z)+0)
}

const (
	boxW = 400.0
	boxH = 200.0
	boxD = 40.0
)

func placed(f Face) transform.Quad {
	return Plan(f, boxD, "px").Place(boxW, boxH, boxD)
}

func TestFrontAndBackAreCoincidentButOpposite(t *testing.T) {
	front, back := placed(Front), placed(Back)

	for i := range front {
		if !near(front[i].Z, boxD/2) {
			t.Errorf("front corner %d at z=%v, want %v", i, front[i].Z, boxD/2)
		}
		if !near(back[i].Z, -boxD/2) {
			t.Errorf("back corner %d at z=%v, want %v", i, back[i].Z, -boxD/2)
		}
	}

	// Same outline, projected onto the center plane.
	outline := map[string]bool{}
	for _, p := range front {
		outline[key(v3.Vec{X: p.X, Y: p.Y})] = true
	}
	for _, p := range back {
		if !outline[key(v3.Vec{X: p.X, Y: p.Y})] {
			t.Errorf("back corner %v is not behind a front corner", p)
		}
	}

	if n := front.Normal(); !nearVec(n, v3.Vec{Z: 1}) {
		t.Errorf("front normal = %v, want +Z", n)
	}
	if n := back.Normal(); !nearVec(n, v3.Vec{Z: -1}) {
		t.Errorf("back normal = %v, want -Z", n)
	}

	fp, bp := Plan(Front, boxD, "px"), Plan(Back, boxD, "px")
	if fp.Transform.Translate.Offset != bp.Transform.Translate.Offset {
		t.Error("front and back must be pushed by the same amount in their own frames")
	}
	if math.Abs(bp.Transform.Rotate.Degrees-fp.Transform.Rotate.Degrees) != 180 {
		t.Error("back must be a 180 degree flip of front")
	}
}

func TestSidesSitOnContainerEdges(t *testing.T) {
	tests := []struct {
		face   Face
		coord  func(v3.Vec) float64
		at     float64
		normal v3.Vec
	}{
		{Left, func(p v3.Vec) float64 { return p.X }, 0, v3.Vec{X: -1}},
		{Right, func(p v3.Vec) float64 { return p.X }, boxW, v3.Vec{X: 1}},
		{Top, func(p v3.Vec) float64 { return p.Y }, 0, v3.Vec{Y: -1}},
		{Bottom, func(p v3.Vec) float64 { return p.Y }, boxH, v3.Vec{Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.face.String(), func(t *testing.T) {
			q := placed(tt.face)
			minZ, maxZ := math.Inf(1), math.Inf(-1)
			for i, p := range q {
				if !near(tt.coord(p), tt.at) {
					t.Errorf("corner %d = %v, want plane at %v", i, p, tt.at)
				}
				minZ = math.Min(minZ, p.Z)
				maxZ = math.Max(maxZ, p.Z)
			}
			if !near(minZ, -boxD/2) || !near(maxZ, boxD/2) {
				t.Errorf("z span = [%v, %v], want [%v, %v]", minZ, maxZ, -boxD/2, boxD/2)
			}
			if n := q.Normal(); !nearVec(n, tt.normal) {
				t.Errorf("normal = %v, want %v", n, tt.normal)
			}
		})
	}
}

func TestFacesCloseTheBox(t *testing.T) {
	// Every corner of the box is shared by exactly three faces.
	count := map[string]int{}
	for _, f := range Faces {
		for _, p := range placed(f) {
			count[key(p)]++
		}
	}
	if len(count) != 8 {
		t.Fatalf("expected 8 distinct corners, got %d: %v", len(count), count)
	}
	for _, x := range []float64{0, boxW} {
		for _, y := range []float64{0, boxH} {
			for _, z := range []float64{-boxD / 2, boxD / 2} {
				k := key(v3.Vec{X: x, Y: y, Z: z})
				if count[k] != 3 {
					t.Errorf("corner %s shared by %d faces, want 3", k, count[k])
				}
			}
		}
	}
}

func TestPairsRotateEqualAndOpposite(t *testing.T) {
	pairs := [][2]Face{{Left, Right}, {Top, Bottom}}
	for _, pair := range pairs {
		a, b := Plan(pair[0], boxD, "px"), Plan(pair[1], boxD, "px")
		if a.Transform.Rotate.Axis != b.Transform.Rotate.Axis {
			t.Errorf("%s/%s rotate about different axes", pair[0], pair[1])
		}
		if a.Transform.Rotate.Degrees != -b.Transform.Rotate.Degrees || math.Abs(a.Transform.Rotate.Degrees) != 90 {
			t.Errorf("%s/%s rotations %v/%v are not equal and opposite quarter turns",
				pair[0], pair[1], a.Transform.Rotate.Degrees, b.Transform.Rotate.Degrees)
		}
		if a.Transform.Translate.Offset != -b.Transform.Translate.Offset {
			t.Errorf("%s/%s offsets are not opposite", pair[0], pair[1])
		}
		if math.Abs(a.Transform.Translate.Offset) != boxD/2 {
			t.Errorf("%s offset = %v, want magnitude %v", pair[0], a.Transform.Translate.Offset, boxD/2)
		}
	}
	if Plan(Left, boxD, "px").Transform.Rotate.Axis != transform.AxisY {
		t.Error("left/right rotate about the vertical axis")
	}
	if Plan(Top, boxD, "px").Transform.Rotate.Axis != transform.AxisX {
		t.Error("top/bottom rotate about the horizontal axis")
	}
}

func TestThicknessUsesResolvedUnit(t *testing.T) {
	for _, f := range []Face{Left, Right} {
		if p := Plan(f, 10, "%"); p.Width != "10%" || p.Height != "100%" {
			t.Errorf("%s sizing = %s x %s", f, p.Width, p.Height)
		}
	}
	for _, f := range []Face{Top, Bottom} {
		if p := Plan(f, 10, "em"); p.Height != "10em" || p.Width != "100%" {
			t.Errorf("%s sizing = %s x %s", f, p.Width, p.Height)
		}
	}
}

func TestDeclarationsOrder(t *testing.T) {
	got := Plan(Right, 10, "px").Declarations()
	want := []Declaration{
		{PropHeight, "100%"},
		{PropWidth, "10px"},
		{PropTop, "0"},
		{PropRight, "0"},
		{PropTransformOrigin, "right"},
		{PropTransform, "rotateY(90deg) translateX(5px)"},
		{PropPosition, "absolute"},
		{PropDisplay, "block"},
		{PropTransformStyle, "preserve-3d"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d declarations, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("declaration %d = %v, want %v", i, got[i], want[i])
		}
	}
}
