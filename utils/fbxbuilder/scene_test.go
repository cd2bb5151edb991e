package fbxbuilder

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/legacy_scene_loader/scene"
)

func triangleGeometry(name string, mat *scene.Material) *scene.Geometry {
	mesh := scene.NewMesh()
	mesh.SetBuffer(scene.BufferPosition, 3, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0})
	mesh.SetBuffer(scene.BufferNormal, 3, []float32{0, 0, 1, 0, 0, 1, 0, 0, 1})
	g := scene.NewGeometry(name, mesh)
	g.SetMaterial(mat)
	return g
}

func countObjects(f *FBXBuilder) map[string]int {
	counts := make(map[string]int)
	for _, o := range f.Objects() {
		counts[o.Name]++
	}
	return counts
}

func TestExportSceneObjects(t *testing.T) {
	lit := scene.NewMaterial(scene.LightingMaterialDef())
	require.NoError(t, lit.SetColor("Diffuse", scene.ColorRed))
	require.NoError(t, lit.SetFloat("Shininess", 10))

	root := scene.NewNode("root")
	sub := scene.NewNode("")
	sub.AttachChild(triangleGeometry("a", lit))
	sub.AttachChild(triangleGeometry("b", lit))
	root.AttachChild(sub)
	root.AttachChild(triangleGeometry("c", scene.NewMaterial(scene.UnshadedMaterialDef())))

	f := ExportScene(root, "scene.fbx")
	assert.Equal(t, map[string]int{
		"Model":         5,
		"NodeAttribute": 2,
		"Geometry":      3,
		"Material":      2,
	}, countObjects(f))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("Kaydara FBX Binary")))
}

func TestPolygonIndexes(t *testing.T) {
	mesh := scene.NewMesh()
	mesh.SetBuffer(scene.BufferPosition, 3, make([]float32, 12))
	mesh.SetIndexBuffer(3, []uint32{0, 1, 2, 2, 3, 0})
	assert.Equal(t, []int32{0, 1, -3, 2, 3, -1}, polygonIndexes(mesh))

	mesh.ClearBuffer(scene.BufferIndex)
	mesh.SetBuffer(scene.BufferPosition, 3, make([]float32, 18))
	assert.Equal(t, []int32{0, 1, -3, 3, 4, -6}, polygonIndexes(mesh))
}

func TestPolygonIndexesSkipLines(t *testing.T) {
	mesh := scene.NewMesh()
	mesh.SetBuffer(scene.BufferPosition, 3, make([]float32, 18))
	for _, mode := range []scene.Mode{scene.ModeLines, scene.ModeLineStrip, scene.ModeLineLoop, scene.ModePoints} {
		mesh.SetMode(mode)
		assert.Empty(t, polygonIndexes(mesh), mode.String())
	}
}

func TestDefinitionsMatchObjects(t *testing.T) {
	root := scene.NewNode("root")
	root.AttachChild(triangleGeometry("a", scene.NewMaterial(scene.UnshadedMaterialDef())))
	f := ExportScene(root, "defs.fbx")
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	objects := countObjects(f)
	defs := f.Root().GetNode("Definitions")
	require.NotNil(t, defs)
	total := int32(1)
	for _, ot := range defs.GetNodes("ObjectType") {
		name := ot.Properties[0].(string)
		if name == "GlobalSettings" {
			continue
		}
		count := ot.GetNode("Count").Properties[0].(int32)
		assert.Equal(t, int32(objects[name]), count, name)
		assert.NotZero(t, count, "template for %s without objects", name)
		total += count
	}
	assert.Equal(t, total, defs.GetNode("Count").Properties[0].(int32))
}

func TestMaterialCache(t *testing.T) {
	f := NewFBXBuilder("cache.fbx")
	mat := scene.NewMaterial(scene.UnshadedMaterialDef())
	first := f.addMaterial("m", mat)
	assert.Equal(t, first, f.addMaterial("other", mat))
	assert.NotEqual(t, first, f.addMaterial("m", scene.NewMaterial(scene.UnshadedMaterialDef())))
}
