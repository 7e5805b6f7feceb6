// Package tessellate turns cuboid dimensions into triangle meshes: one flat
// quad per face placed exactly where the host's 3D transforms put it, and an
// optional marching-cubes volume of the whole box.
package tessellate

import (
	"fmt"

	"github.com/chazu/cuboid/pkg/cuboid"
	"github.com/chazu/cuboid/pkg/transform"
)

// Tessellate produces one quad mesh per face, in construction order. Width
// and height must be magnitudes; raw CSS sizes cannot be measured.
func Tessellate(dims cuboid.Dimensions) ([]*Mesh, error) {
	w, h, err := extent(dims)
	if err != nil {
		return nil, err
	}

	meshes := make([]*Mesh, 0, cuboid.NumFaces)
	for _, plan := range cuboid.Plans(dims.Depth, unitOf(dims)) {
		meshes = append(meshes, quad(plan.Face.String(), plan.Place(w, h, dims.Depth)))
	}
	return meshes, nil
}

// Face returns the quad mesh for a single face.
func Face(f cuboid.Face, dims cuboid.Dimensions) (*Mesh, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("tessellate: invalid face %v", f)
	}
	w, h, err := extent(dims)
	if err != nil {
		return nil, err
	}
	plan := cuboid.Plan(f, dims.Depth, unitOf(dims))
	return quad(f.String(), plan.Place(w, h, dims.Depth)), nil
}

// quad builds two triangles over q with one flat normal. Winding follows
// the right-hand rule about the normal.
func quad(name string, q transform.Quad) *Mesh {
	n := q.Normal()
	m := &Mesh{
		Vertices: make([]float32, 0, 12),
		Normals:  make([]float32, 0, 12),
		Indices:  []uint32{0, 1, 2, 0, 2, 3},
		PartName: name,
	}
	for _, v := range q {
		m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
		m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	return m
}

func extent(dims cuboid.Dimensions) (w, h float64, err error) {
	w, ok := dims.Width.Magnitude()
	if !ok {
		return 0, 0, fmt.Errorf("tessellate: width %v is not a magnitude", dims.Width)
	}
	h, ok = dims.Height.Magnitude()
	if !ok {
		return 0, 0, fmt.Errorf("tessellate: height %v is not a magnitude", dims.Height)
	}
	if w < 0 || h < 0 || dims.Depth < 0 {
		return 0, 0, fmt.Errorf("tessellate: negative extent in %v", dims)
	}
	return w, h, nil
}

func unitOf(dims cuboid.Dimensions) string {
	if dims.Unit == "" {
		return cuboid.DefaultUnit
	}
	return dims.Unit
}
