package tessellate

import "math"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
// Coordinates are in the cuboid's own frame: x right, y down, z toward the
// viewer, in the cuboid's unit.
type Mesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	PartName string    `json:"partName"` // face name, or "volume"
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Bounds returns the axis-aligned bounding box of the vertices. An empty
// mesh returns zero vectors.
func (m *Mesh) Bounds() (min, max [3]float32) {
	if m.IsEmpty() {
		return min, max
	}
	for i := range min {
		min[i] = math.MaxFloat32
		max[i] = -math.MaxFloat32
	}
	for i := 0; i < len(m.Vertices); i += 3 {
		for j := 0; j < 3; j++ {
			v := m.Vertices[i+j]
			if v < min[j] {
				min[j] = v
			}
			if v > max[j] {
				max[j] = v
			}
		}
	}
	return min, max
}

// Bounds returns the bounding box of all meshes together.
func Bounds(meshes []*Mesh) (min, max [3]float32) {
	first := true
	for _, m := range meshes {
		if m.IsEmpty() {
			continue
		}
		lo, hi := m.Bounds()
		if first {
			min, max = lo, hi
			first = false
			continue
		}
		for j := 0; j < 3; j++ {
			if lo[j] < min[j] {
				min[j] = lo[j]
			}
			if hi[j] > max[j] {
				max[j] = hi[j]
			}
		}
	}
	return min, max
}
