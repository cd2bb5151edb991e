package scene

import "sort"

type ParamType int

const (
	ParamFloat ParamType = iota
	ParamBoolean
	ParamColor
	ParamVector3
	ParamTexture2D
)

func (t ParamType) String() string {
	switch t {
	case ParamFloat:
		return "Float"
	case ParamBoolean:
		return "Boolean"
	case ParamColor:
		return "Color"
	case ParamVector3:
		return "Vector3"
	case ParamTexture2D:
		return "Texture2D"
	}
	return "Unknown"
}

const (
	LightingDefName = "Common/MatDefs/Light/Lighting.j3md"
	UnshadedDefName = "Common/MatDefs/Misc/Unshaded.j3md"
)

// MaterialDef is a shader definition: a named set of typed parameters.
type MaterialDef struct {
	Name      string
	AssetName string
	params    map[string]ParamType
}

func NewMaterialDef(name, assetName string, params map[string]ParamType) *MaterialDef {
	d := &MaterialDef{Name: name, AssetName: assetName, params: make(map[string]ParamType, len(params))}
	for k, v := range params {
		d.params[k] = v
	}
	return d
}

func (d *MaterialDef) ParamType(name string) (ParamType, bool) {
	t, ok := d.params[name]
	return t, ok
}

func (d *MaterialDef) ParamNames() []string {
	names := make([]string, 0, len(d.params))
	for n := range d.params {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LightingMaterialDef is the per pixel lit (phong) definition.
func LightingMaterialDef() *MaterialDef {
	return NewMaterialDef("Phong Lighting", LightingDefName, map[string]ParamType{
		"Diffuse":               ParamColor,
		"Ambient":               ParamColor,
		"Specular":              ParamColor,
		"Shininess":             ParamFloat,
		"UseMaterialColors":     ParamBoolean,
		"UseVertexColor":        ParamBoolean,
		"AlphaDiscardThreshold": ParamFloat,
		"DiffuseMap":            ParamTexture2D,
		"NormalMap":             ParamTexture2D,
		"SpecularMap":           ParamTexture2D,
	})
}

// UnshadedMaterialDef is the flat colored definition.
func UnshadedMaterialDef() *MaterialDef {
	return NewMaterialDef("Unshaded", UnshadedDefName, map[string]ParamType{
		"Color":       ParamColor,
		"ColorMap":    ParamTexture2D,
		"VertexColor": ParamBoolean,
	})
}
