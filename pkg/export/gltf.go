// Package export writes tessellated cuboid meshes as glTF 2.0 documents.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/chazu/cuboid/pkg/tessellate"
)

// Palette assigns distinct colors to meshes in order.
var Palette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// Options control the exported document.
type Options struct {
	// Binary selects GLB output in Write.
	Binary bool

	// Scale multiplies every coordinate. Zero means 1. glTF units are
	// meters, so a px-sized cuboid usually wants something like 0.001.
	Scale float64

	// Alpha is the opacity of every material. Zero means opaque.
	Alpha float64
}

func (o Options) scale() float32 {
	if o.Scale == 0 {
		return 1
	}
	return float32(o.Scale)
}

func (o Options) alpha() float64 {
	if o.Alpha <= 0 || o.Alpha > 1 {
		return 1
	}
	return o.Alpha
}

// Document builds a glTF document with one node, mesh and material per
// input mesh. Coordinates are converted from the cuboid frame (y down) to
// glTF's y-up frame; the reflection also reverses triangle winding.
func Document(meshes []*tessellate.Mesh, opts Options) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	s := opts.scale()

	for i, m := range meshes {
		if m.IsEmpty() {
			continue
		}
		if len(m.Normals) != len(m.Vertices) || len(m.Indices)%3 != 0 {
			return nil, fmt.Errorf("export: mesh %q is malformed", m.PartName)
		}

		positions := make([][3]float32, 0, m.VertexCount())
		normals := make([][3]float32, 0, m.VertexCount())
		for v := 0; v < len(m.Vertices); v += 3 {
			positions = append(positions, [3]float32{m.Vertices[v] * s, -m.Vertices[v+1] * s, m.Vertices[v+2] * s})
			normals = append(normals, [3]float32{m.Normals[v], -m.Normals[v+1], m.Normals[v+2]})
		}
		indices := make([]uint32, len(m.Indices))
		for t := 0; t < len(m.Indices); t += 3 {
			indices[t], indices[t+1], indices[t+2] = m.Indices[t], m.Indices[t+2], m.Indices[t+1]
		}

		rgba, err := ParseHex(Palette[i%len(Palette)])
		if err != nil {
			return nil, err
		}
		rgba[3] = opts.alpha()
		material := &gltf.Material{
			Name:        m.PartName,
			DoubleSided: true,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &rgba,
				MetallicFactor:  gltf.Float(0),
				RoughnessFactor: gltf.Float(1),
			},
		}
		if rgba[3] < 1 {
			material.AlphaMode = gltf.AlphaBlend
		}
		doc.Materials = append(doc.Materials, material)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: m.PartName,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
				Attributes: gltf.PrimitiveAttributes{
					gltf.POSITION: modeler.WritePosition(doc, positions),
					gltf.NORMAL:   modeler.WriteNormal(doc, normals),
				},
				Material: gltf.Index(len(doc.Materials) - 1),
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.PartName,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc, nil
}

// Write encodes meshes to w as glTF JSON with an embedded buffer, or as GLB
// when opts.Binary is set.
func Write(w io.Writer, meshes []*tessellate.Mesh, opts Options) error {
	doc, err := Document(meshes, opts)
	if err != nil {
		return err
	}
	if !opts.Binary {
		for _, b := range doc.Buffers {
			b.EmbeddedResource()
		}
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = opts.Binary
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	return nil
}

// Save writes meshes to path. A .glb extension selects binary output.
func Save(path string, meshes []*tessellate.Mesh, opts Options) error {
	opts.Binary = strings.EqualFold(filepath.Ext(path), ".glb")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := Write(f, meshes, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// ParseHex parses "#RRGGBB" into an opaque RGBA color in [0,1].
func ParseHex(s string) ([4]float64, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return [4]float64{}, fmt.Errorf("export: color %q is not #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [4]float64{}, fmt.Errorf("export: color %q: %w", s, err)
	}
	return [4]float64{
		float64(v>>16&0xff) / 255,
		float64(v>>8&0xff) / 255,
		float64(v&0xff) / 255,
		1,
	}, nil
}
