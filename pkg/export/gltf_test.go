package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/cuboid/pkg/cuboid"
	"github.com/chazu/cuboid/pkg/export"
	"github.com/chazu/cuboid/pkg/tessellate"
)

func faces(t *testing.T) []*tessellate.Mesh {
	t.Helper()
	meshes, err := tessellate.Tessellate(cuboid.Dimensions{
		Width:  cuboid.Magnitude(400),
		Height: cuboid.Magnitude(200),
		Depth:  40,
		Unit:   "px",
	})
	require.NoError(t, err)
	return meshes
}

func TestDocument(t *testing.T) {
	doc, err := export.Document(faces(t), export.Options{})
	require.NoError(t, err)

	require.Len(t, doc.Nodes, cuboid.NumFaces)
	require.Len(t, doc.Meshes, cuboid.NumFaces)
	require.Len(t, doc.Materials, cuboid.NumFaces)
	assert.Len(t, doc.Scenes[0].Nodes, cuboid.NumFaces)

	for i, f := range cuboid.Faces {
		assert.Equal(t, f.String(), doc.Nodes[i].Name)
		assert.Equal(t, f.String(), doc.Meshes[i].Name)
	}

	// y is flipped into glTF's y-up frame.
	front := doc.Meshes[0].Primitives[0]
	pos := doc.Accessors[front.Attributes[gltf.POSITION]]
	require.Len(t, pos.Max, 3)
	assert.InDelta(t, 0, pos.Max[1], 1e-4)
	assert.InDelta(t, -200, pos.Min[1], 1e-4)
	assert.InDelta(t, 20, pos.Max[2], 1e-4)
}

func TestDocumentScaleAndAlpha(t *testing.T) {
	doc, err := export.Document(faces(t), export.Options{Scale: 0.001, Alpha: 0.5})
	require.NoError(t, err)

	pos := doc.Accessors[doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION]]
	assert.InDelta(t, 0.4, pos.Max[0], 1e-6)

	m := doc.Materials[0]
	assert.Equal(t, gltf.AlphaBlend, m.AlphaMode)
	assert.InDelta(t, 0.5, m.PBRMetallicRoughness.BaseColorFactor[3], 1e-9)
}

func TestDocumentRejectsMalformedMesh(t *testing.T) {
	bad := &tessellate.Mesh{Vertices: []float32{0, 0, 0}, PartName: "bad"}
	_, err := export.Document([]*tessellate.Mesh{bad}, export.Options{})
	assert.Error(t, err)
}

func TestDocumentSkipsEmptyMeshes(t *testing.T) {
	doc, err := export.Document([]*tessellate.Mesh{{PartName: "empty"}}, export.Options{})
	require.NoError(t, err)
	assert.Empty(t, doc.Nodes)
}

func TestWriteBinaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, faces(t), export.Options{Binary: true}))
	assert.Equal(t, "glTF", buf.String()[:4])

	var doc gltf.Document
	require.NoError(t, gltf.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(&doc))
	assert.Len(t, doc.Nodes, cuboid.NumFaces)
}

func TestWriteJSONEmbedsBuffer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, faces(t), export.Options{}))
	assert.Contains(t, buf.String(), "data:application/octet-stream;base64,")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "box.glb")
	require.NoError(t, export.Save(path, faces(t), export.Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "glTF", string(data[:4]))
}

func TestParseHex(t *testing.T) {
	c, err := export.ParseHex("#FF8000")
	require.NoError(t, err)
	assert.InDelta(t, 1, c[0], 1e-9)
	assert.InDelta(t, 128.0/255, c[1], 1e-9)
	assert.InDelta(t, 0, c[2], 1e-9)
	assert.InDelta(t, 1, c[3], 1e-9)

	_, err = export.ParseHex("#FFF")
	assert.Error(t, err)
	_, err = export.ParseHex("#GGGGGG")
	assert.Error(t, err)
}
