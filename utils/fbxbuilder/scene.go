package fbxbuilder

import (
	"github.com/mogaika/fbx"
	"github.com/mogaika/fbx/builders/bfbx73"

	"github.com/mogaika/legacy_scene_loader/scene"
	"github.com/mogaika/legacy_scene_loader/utils"
)

// ExportScene builds an fbx document with root attached to the document root node.
func ExportScene(root scene.Spatial, filename string) *FBXBuilder {
	f := NewFBXBuilder(filename)
	var names utils.RandomNameGenerator
	f.AddSpatial(root, 0, &names)
	return f
}

// AddSpatial writes s and its subtree and connects it to parentId (0 is the document root).
func (f *FBXBuilder) AddSpatial(s scene.Spatial, parentId int64, names *utils.RandomNameGenerator) int64 {
	name := names.NameOr(s.Name())

	var modelId int64
	switch v := s.(type) {
	case *scene.Node:
		modelId = f.addModel(name, "Null", s.Local())
		attribute := bfbx73.NodeAttribute(f.GenerateId(), name+"\x00\x01NodeAttribute", "Null").AddNodes(
			bfbx73.TypeFlags("Null"),
		)
		f.AddObjects(attribute)
		f.AddConnections(bfbx73.C("OO", attribute.Properties[0].(int64), modelId))

		for _, c := range v.Children() {
			f.AddSpatial(c, modelId, names)
		}
	case *scene.Geometry:
		modelId = f.addModel(name, "Mesh", s.Local())
		geometryId := f.addGeometry(v.Mesh())
		f.AddConnections(bfbx73.C("OO", geometryId, modelId))
		if mat := v.Material(); mat != nil {
			f.AddConnections(bfbx73.C("OO", f.addMaterial(name, mat), modelId))
		}
	}

	f.AddConnections(bfbx73.C("OO", modelId, parentId))
	return modelId
}

func (f *FBXBuilder) addModel(name, kind string, t *scene.Transform) int64 {
	rotation := utils.RadiansToDegreesV3(utils.QuatToEuler(t.Rotation))

	id := f.GenerateId()
	f.AddObjects(bfbx73.Model(id, name+"\x00\x01Model", kind).AddNodes(
		bfbx73.Version(232),
		bfbx73.Properties70().AddNodes(
			bfbx73.P("InheritType", "enum", "", "", int32(1)),
			bfbx73.P("DefaultAttributeIndex", "int", "Integer", "", int32(0)),
			bfbx73.P("Lcl Translation", "Lcl Translation", "", "A",
				float64(t.Translation[0]), float64(t.Translation[1]), float64(t.Translation[2])),
			bfbx73.P("Lcl Rotation", "Lcl Rotation", "", "A",
				float64(rotation[0]), float64(rotation[1]), float64(rotation[2])),
			bfbx73.P("Lcl Scaling", "Lcl Scaling", "", "A",
				float64(t.Scale[0]), float64(t.Scale[1]), float64(t.Scale[2])),
		),
		bfbx73.Shading(true),
		bfbx73.Culling("CullingOff"),
	))
	return id
}

// polygonIndexes marks the last index of every triangle as -(i)-1.
// polygonIndexes is empty for line and point meshes, FBX meshes only carry polygons.
func polygonIndexes(m *scene.Mesh) []int32 {
	if m.Mode() != scene.ModeTriangles {
		return nil
	}
	var tris []uint32
	if ib := m.Buffer(scene.BufferIndex); ib != nil {
		tris = ib.Ints
	} else {
		tris = make([]uint32, m.VertexCount()/3*3)
		for i := range tris {
			tris[i] = uint32(i)
		}
	}

	res := make([]int32, 0, len(tris)/3*3)
	for i := 0; i+2 < len(tris); i += 3 {
		res = append(res, int32(tris[i]), int32(tris[i+1]), -int32(tris[i+2])-1)
	}
	return res
}

func (f *FBXBuilder) addGeometry(m *scene.Mesh) int64 {
	id := f.GenerateId()

	geometryLayer := bfbx73.Layer(0).AddNodes(
		bfbx73.Version(100),
	)

	geometry := bfbx73.Geometry(id, "\x00\x01Geometry", "Mesh").AddNodes(
		bfbx73.Properties70().AddNodes(
			bfbx73.P("Color", "ColorRGB", "Color", "", float64(1), float64(1), float64(1)),
		),
		bfbx73.GeometryVersion(124),
		bfbx73.Vertices(utils.FloatArray32to64(m.Buffer(scene.BufferPosition).Floats)),
		bfbx73.PolygonVertexIndex(polygonIndexes(m)),
		geometryLayer,
	)

	if nb := m.Buffer(scene.BufferNormal); nb != nil {
		geometry.AddNode(
			bfbx73.LayerElementNormal(0).AddNodes(
				bfbx73.Version(101),
				bfbx73.Name(""),
				bfbx73.MappingInformationType("ByVertice"),
				bfbx73.ReferenceInformationType("Direct"),
				bfbx73.Normals(utils.FloatArray32to64(nb.Floats)),
			),
		)
		addLayerElement(geometryLayer, "LayerElementNormal")
	}

	if cb := m.Buffer(scene.BufferColor); cb != nil {
		geometry.AddNode(
			bfbx73.LayerElementColor(0).AddNodes(
				bfbx73.Version(101),
				bfbx73.Name(""),
				bfbx73.MappingInformationType("ByVertice"),
				bfbx73.ReferenceInformationType("Direct"),
				bfbx73.Colors(utils.FloatArray32to64(cb.Floats)),
			),
		)
		addLayerElement(geometryLayer, "LayerElementColor")
	}

	geometry.AddNode(
		bfbx73.LayerElementMaterial(0).AddNodes(
			bfbx73.Version(101),
			bfbx73.Name(""),
			bfbx73.MappingInformationType("AllSame"),
			bfbx73.ReferenceInformationType("IndexToDirect"),
			bfbx73.Materials([]int32{0}),
		),
	)
	addLayerElement(geometryLayer, "LayerElementMaterial")

	f.AddObjects(geometry)
	return id
}

func addLayerElement(layer *fbx.Node, kind string) {
	layer.AddNode(
		bfbx73.LayerElement().AddNodes(
			bfbx73.Type(kind),
			bfbx73.TypedIndex(0),
		),
	)
}

// addMaterial writes every distinct material once.
func (f *FBXBuilder) addMaterial(name string, mat *scene.Material) int64 {
	if id, ok := f.GetCached(mat); ok {
		return id
	}

	shading := "lambert"
	diffuse, _ := mat.Color("Color")
	ambient := scene.ColorBlack
	if mat.Def().AssetName == scene.LightingDefName {
		shading = "phong"
		diffuse, _ = mat.Color("Diffuse")
		if c, ok := mat.Color("Ambient"); ok {
			ambient = c
		}
	}

	id := f.GenerateId()
	props := bfbx73.Properties70().AddNodes(
		bfbx73.P("AmbientColor", "Color", "", "A", float64(ambient[0]), float64(ambient[1]), float64(ambient[2])),
		bfbx73.P("DiffuseColor", "Color", "", "A", float64(diffuse[0]), float64(diffuse[1]), float64(diffuse[2])),
		bfbx73.P("Diffuse", "Vector3D", "Vector", "", float64(diffuse[0]), float64(diffuse[1]), float64(diffuse[2])),
		bfbx73.P("Opacity", "double", "Number", "", float64(diffuse[3])),
	)
	if specular, ok := mat.Color("Specular"); ok {
		props.AddNode(bfbx73.P("SpecularColor", "Color", "", "A", float64(specular[0]), float64(specular[1]), float64(specular[2])))
	}
	if shininess, ok := mat.Float("Shininess"); ok {
		props.AddNode(bfbx73.P("Shininess", "double", "Number", "", float64(shininess)))
	}

	f.AddObjects(bfbx73.Material(id, name+"\x00\x01Material", "").AddNodes(
		bfbx73.Version(102),
		bfbx73.ShadingModel(shading),
		bfbx73.MultiLayer(0),
		props,
	))
	f.AddCache(mat, id)
	return id
}
