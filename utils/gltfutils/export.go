package gltfutils

import (
	"bytes"
	"image"
	"image/png"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/legacy_scene_loader/scene"
	"github.com/mogaika/legacy_scene_loader/utils"
)

// SceneExporter writes converted scene graphs into one glTF document.
// Materials and textures shared between geometries are written once.
type SceneExporter struct {
	Doc *gltf.Document

	names     utils.RandomNameGenerator
	materials map[*scene.Material]uint32
	textures  map[*scene.Texture2D]*uint32
}

func NewSceneExporter() *SceneExporter {
	return &SceneExporter{
		Doc:       NewDocument(),
		materials: make(map[*scene.Material]uint32),
		textures:  make(map[*scene.Texture2D]*uint32),
	}
}

// ExportScene converts root into a standalone document.
func ExportScene(root scene.Spatial) (*gltf.Document, error) {
	se := NewSceneExporter()
	if _, err := se.AddRoot(root); err != nil {
		return nil, err
	}
	return se.Doc, nil
}

// AddRoot adds root and its subtree as a top level node of the default scene.
func (se *SceneExporter) AddRoot(root scene.Spatial) (uint32, error) {
	idx, err := se.addSpatial(root)
	if err != nil {
		return 0, err
	}
	se.Doc.Scenes[0].Nodes = append(se.Doc.Scenes[0].Nodes, idx)
	return idx, nil
}

func (se *SceneExporter) addSpatial(s scene.Spatial) (uint32, error) {
	t := s.Local()
	node := &gltf.Node{
		Name:        se.names.NameOr(s.Name()),
		Translation: t.Translation,
		Rotation:    t.Rotation.V.Vec4(t.Rotation.W),
		Scale:       t.Scale,
	}
	idx := uint32(len(se.Doc.Nodes))
	se.Doc.Nodes = append(se.Doc.Nodes, node)

	switch v := s.(type) {
	case *scene.Node:
		for _, c := range v.Children() {
			cidx, err := se.addSpatial(c)
			if err != nil {
				return 0, err
			}
			node.Children = append(node.Children, cidx)
		}
	case *scene.Geometry:
		midx, err := se.addGeometry(node.Name, v)
		if err != nil {
			return 0, errors.Wrapf(err, "Failed to export geometry %q", node.Name)
		}
		node.Mesh = gltf.Index(midx)
	}
	return idx, nil
}

func (se *SceneExporter) addGeometry(name string, g *scene.Geometry) (uint32, error) {
	doc := se.Doc
	mesh := g.Mesh()
	pb := mesh.Buffer(scene.BufferPosition)
	if pb == nil {
		return 0, errors.New("mesh without positions")
	}

	attributes := make(map[string]uint32)
	attributes["POSITION"] = modeler.WritePosition(doc, vec3s(pb.Floats))

	if nb := mesh.Buffer(scene.BufferNormal); nb != nil {
		attributes["NORMAL"] = modeler.WriteNormal(doc, vec3s(nb.Floats))
	}

	if cb := mesh.Buffer(scene.BufferColor); cb != nil {
		colors := make([][4]uint8, len(cb.Floats)/4)
		for i := range colors {
			for c := 0; c < 4; c++ {
				colors[i][c] = floatToByte(cb.Floats[i*4+c])
			}
		}
		attributes["COLOR_0"] = modeler.WriteColor(doc, colors)
	}

	primitive := &gltf.Primitive{
		Attributes: attributes,
		Mode:       primitiveMode(mesh.Mode()),
	}

	if ib := mesh.Buffer(scene.BufferIndex); ib != nil {
		indices := make([]uint32, len(ib.Ints))
		copy(indices, ib.Ints)
		primitive.Indices = gltf.Index(modeler.WriteIndices(doc, indices))
	}

	if mat := g.Material(); mat != nil {
		matIdx, err := se.addMaterial(name, mat)
		if err != nil {
			return 0, err
		}
		primitive.Material = gltf.Index(matIdx)
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       name,
		Primitives: []*gltf.Primitive{primitive},
	})
	return uint32(len(doc.Meshes) - 1), nil
}

func (se *SceneExporter) addMaterial(name string, mat *scene.Material) (uint32, error) {
	if idx, ok := se.materials[mat]; ok {
		return idx, nil
	}

	rs := mat.AdditionalRenderState()
	gm := &gltf.Material{
		Name:                 name,
		DoubleSided:          rs.FaceCull == scene.FaceCullOff,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{},
	}

	var color [4]float32
	var haveColor bool
	switch mat.Def().AssetName {
	case scene.LightingDefName:
		c, ok := mat.Color("Diffuse")
		color, haveColor = c, ok
	case scene.UnshadedDefName:
		c, ok := mat.Color("Color")
		color, haveColor = c, ok
	}
	if haveColor {
		gm.PBRMetallicRoughness.BaseColorFactor = &color
	}

	if mat.IsTransparent() {
		gm.AlphaMode = gltf.AlphaBlend
	}
	if rs.Wireframe {
		gm.Extras = map[string]interface{}{"wireframe": true}
	}

	for _, slot := range []string{"DiffuseMap", "ColorMap"} {
		tex := mat.Texture(slot)
		if tex == nil {
			continue
		}
		tidx, err := se.addTexture(name+"_"+slot, tex)
		if err != nil {
			return 0, err
		}
		if tidx != nil {
			gm.PBRMetallicRoughness.BaseColorTexture = &gltf.TextureInfo{Index: *tidx}
		}
		break
	}

	idx := uint32(len(se.Doc.Materials))
	se.Doc.Materials = append(se.Doc.Materials, gm)
	se.materials[mat] = idx
	return idx, nil
}

// addTexture returns nil for images that cannot be stored as png.
func (se *SceneExporter) addTexture(name string, tex *scene.Texture2D) (*uint32, error) {
	if idx, ok := se.textures[tex]; ok {
		return idx, nil
	}

	img := ImageToGo(tex.Image())
	if img == nil {
		se.textures[tex] = nil
		return nil, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrapf(err, "Failed to encode png %q", name)
	}

	imageIdx, err := modeler.WriteImage(se.Doc, name+"_image", "image/png", &buf)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to write gltf image")
	}

	samplerIdx := uint32(len(se.Doc.Samplers))
	se.Doc.Samplers = append(se.Doc.Samplers, &gltf.Sampler{
		Name:      name + "_sampler",
		MagFilter: gltf.MagLinear,
		MinFilter: gltf.MinLinear,
		WrapS:     wrapMode(tex.WrapS),
		WrapT:     wrapMode(tex.WrapT),
	})

	idx := gltf.Index(uint32(len(se.Doc.Textures)))
	se.Doc.Textures = append(se.Doc.Textures, &gltf.Texture{
		Name:    name,
		Sampler: gltf.Index(samplerIdx),
		Source:  gltf.Index(imageIdx),
	})
	se.textures[tex] = idx
	return idx, nil
}

// ImageToGo wraps the first depth slice of img into an image.Image.
// Only 8 bit rgb(a), luminance and alpha formats are handled, nil otherwise.
func ImageToGo(img *scene.Image) image.Image {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil
	}
	rect := image.Rect(0, 0, img.Width, img.Height)
	pixels := img.Width * img.Height

	switch img.Format {
	case scene.FormatRGBA8:
		if len(img.Data) < pixels*4 {
			return nil
		}
		out := image.NewNRGBA(rect)
		copy(out.Pix, img.Data[:pixels*4])
		return out
	case scene.FormatRGB8:
		if len(img.Data) < pixels*3 {
			return nil
		}
		out := image.NewNRGBA(rect)
		for i := 0; i < pixels; i++ {
			copy(out.Pix[i*4:i*4+3], img.Data[i*3:i*3+3])
			out.Pix[i*4+3] = 0xff
		}
		return out
	case scene.FormatLuminance8:
		if len(img.Data) < pixels {
			return nil
		}
		out := image.NewGray(rect)
		copy(out.Pix, img.Data[:pixels])
		return out
	case scene.FormatAlpha8:
		if len(img.Data) < pixels {
			return nil
		}
		out := image.NewAlpha(rect)
		copy(out.Pix, img.Data[:pixels])
		return out
	}
	return nil
}

func primitiveMode(m scene.Mode) gltf.PrimitiveMode {
	switch m {
	case scene.ModeLines:
		return gltf.PrimitiveLines
	case scene.ModeLineStrip:
		return gltf.PrimitiveLineStrip
	case scene.ModeLineLoop:
		return gltf.PrimitiveLineLoop
	case scene.ModePoints:
		return gltf.PrimitivePoints
	}
	return gltf.PrimitiveTriangles
}

func wrapMode(m scene.WrapMode) gltf.WrappingMode {
	switch m {
	case scene.WrapEdgeClamp:
		return gltf.WrapClampToEdge
	case scene.WrapMirroredRepeat:
		return gltf.WrapMirroredRepeat
	}
	return gltf.WrapRepeat
}

func vec3s(flat []float32) [][3]float32 {
	res := make([][3]float32, len(flat)/3)
	for i := range res {
		res[i] = [3]float32{flat[i*3], flat[i*3+1], flat[i*3+2]}
	}
	return res
}

func floatToByte(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 0xff
	}
	return uint8(f*255 + 0.5)
}
