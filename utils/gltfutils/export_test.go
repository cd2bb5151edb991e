package gltfutils

import (
	"bytes"
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/legacy_scene_loader/scene"
)

func testGeometry(name string, mat *scene.Material) *scene.Geometry {
	mesh := scene.NewMesh()
	mesh.SetBuffer(scene.BufferPosition, 3, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0})
	mesh.SetBuffer(scene.BufferNormal, 3, []float32{0, 0, 1, 0, 0, 1, 0, 0, 1})
	mesh.SetBuffer(scene.BufferColor, 4, []float32{1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1})
	mesh.SetIndexBuffer(3, []uint32{0, 1, 2})
	g := scene.NewGeometry(name, mesh)
	g.SetMaterial(mat)
	return g
}

func testTree(t *testing.T) *scene.Node {
	lit := scene.NewMaterial(scene.LightingMaterialDef())
	require.NoError(t, lit.SetColor("Diffuse", scene.ColorRed))
	require.NoError(t, lit.SetTexture("DiffuseMap", scene.NewTexture2D(
		scene.NewImage(scene.FormatRGBA8, 2, 2, 1, make([]byte, 16)))))
	lit.SetTransparent(true)
	lit.AdditionalRenderState().SetFaceCullMode(scene.FaceCullOff)

	unshaded := scene.NewMaterial(scene.UnshadedMaterialDef())
	require.NoError(t, unshaded.SetColor("Color", scene.ColorBlue))

	root := scene.NewNode("root")
	root.SetLocalTranslation(mgl32.Vec3{1, 2, 3})
	group := scene.NewNode("")
	group.AttachChild(testGeometry("a", lit))
	group.AttachChild(testGeometry("b", lit))
	root.AttachChild(group)
	root.AttachChild(testGeometry("c", unshaded))
	return root
}

func TestExportScene(t *testing.T) {
	doc, err := ExportScene(testTree(t))
	require.NoError(t, err)

	require.Len(t, doc.Scenes, 1)
	assert.Equal(t, []uint32{0}, doc.Scenes[0].Nodes)
	assert.Len(t, doc.Nodes, 5)
	assert.Len(t, doc.Meshes, 3)
	assert.Len(t, doc.Materials, 2)
	assert.Len(t, doc.Textures, 1)
	assert.Len(t, doc.Images, 1)

	root := doc.Nodes[0]
	assert.Equal(t, "root", root.Name)
	assert.Equal(t, [3]float32{1, 2, 3}, root.Translation)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, root.Rotation)
	assert.Len(t, root.Children, 2)
	assert.NotEmpty(t, doc.Nodes[1].Name)

	prim := doc.Meshes[0].Primitives[0]
	assert.Contains(t, prim.Attributes, "POSITION")
	assert.Contains(t, prim.Attributes, "NORMAL")
	assert.Contains(t, prim.Attributes, "COLOR_0")
	require.NotNil(t, prim.Indices)

	lit := doc.Materials[0]
	assert.True(t, lit.DoubleSided)
	assert.Equal(t, gltf.AlphaBlend, lit.AlphaMode)
	require.NotNil(t, lit.PBRMetallicRoughness.BaseColorFactor)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, *lit.PBRMetallicRoughness.BaseColorFactor)
	assert.NotNil(t, lit.PBRMetallicRoughness.BaseColorTexture)

	unshaded := doc.Materials[1]
	assert.False(t, unshaded.DoubleSided)
	assert.Equal(t, [4]float32{0, 0, 1, 1}, *unshaded.PBRMetallicRoughness.BaseColorFactor)
}

func TestExportPrimitiveMode(t *testing.T) {
	for mode, want := range map[scene.Mode]gltf.PrimitiveMode{
		scene.ModeTriangles: gltf.PrimitiveTriangles,
		scene.ModeLines:     gltf.PrimitiveLines,
		scene.ModeLineStrip: gltf.PrimitiveLineStrip,
		scene.ModeLineLoop:  gltf.PrimitiveLineLoop,
		scene.ModePoints:    gltf.PrimitivePoints,
	} {
		mesh := scene.NewMesh()
		mesh.SetBuffer(scene.BufferPosition, 3, []float32{0, 0, 0, 1, 0, 0, 1, 1, 0})
		mesh.SetMode(mode)
		doc, err := ExportScene(scene.NewGeometry("g", mesh))
		require.NoError(t, err)
		require.Len(t, doc.Meshes, 1)
		prim := doc.Meshes[0].Primitives[0]
		assert.Equal(t, want, prim.Mode, mode.String())
		assert.Nil(t, prim.Indices)
	}
}

func TestExportBinary(t *testing.T) {
	doc, err := ExportScene(testTree(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportBinary(&buf, doc))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("glTF")))

	buf.Reset()
	require.NoError(t, ExportJSON(&buf, doc))
	assert.Contains(t, buf.String(), `"asset"`)
}

func TestImageToGo(t *testing.T) {
	rgb := ImageToGo(scene.NewImage(scene.FormatRGB8, 1, 1, 1, []byte{10, 20, 30}))
	require.IsType(t, &image.NRGBA{}, rgb)
	assert.Equal(t, []uint8{10, 20, 30, 0xff}, rgb.(*image.NRGBA).Pix)

	assert.IsType(t, &image.Gray{}, ImageToGo(scene.NewImage(scene.FormatLuminance8, 2, 1, 1, []byte{1, 2})))
	assert.Nil(t, ImageToGo(scene.NewImage(scene.FormatRGBA8, 2, 2, 1, []byte{1})))
	assert.Nil(t, ImageToGo(scene.NewImage(scene.FormatDXT1, 4, 4, 1, make([]byte, 8))))
	assert.Nil(t, ImageToGo(nil))
}
