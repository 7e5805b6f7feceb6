package tessellate

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/cuboid/pkg/cuboid"
)

// DefaultVolumeCells controls marching cubes resolution along the longest
// axis.
const DefaultVolumeCells = 64

// Volume meshes the solid the faces enclose: x in [0,W], y in [0,H] and
// z in [-D/2, D/2]. The surface comes from marching cubes, so edges are
// approximate to within one cell. cells <= 0 uses DefaultVolumeCells.
func Volume(dims cuboid.Dimensions, cells int) (*Mesh, error) {
	w, h, err := extent(dims)
	if err != nil {
		return nil, err
	}
	if cells <= 0 {
		cells = DefaultVolumeCells
	}

	box, err := sdf.Box3D(v3.Vec{X: w, Y: h, Z: dims.Depth}, 0)
	if err != nil {
		return nil, fmt.Errorf("tessellate: volume: %w", err)
	}
	// Box3D is centered on the origin; move its top-left-front corner to (0,0,D/2).
	s := sdf.Transform3D(box, sdf.Translate3d(v3.Vec{X: w / 2, Y: h / 2}))

	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	m := &Mesh{
		Vertices: make([]float32, 0, len(triangles)*9),
		Normals:  make([]float32, 0, len(triangles)*9),
		Indices:  make([]uint32, 0, len(triangles)*3),
		PartName: "volume",
	}
	for i, tri := range triangles {
		n := tri.Normal()
		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m, nil
}
