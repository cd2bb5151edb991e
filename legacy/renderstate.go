package legacy

type StateType int

const (
	StateBlend StateType = iota
	StateFog
	StateLight
	StateMaterial
	StateShade
	StateTexture
	StateWireframe
	StateZBuffer
	StateCull
)

func (t StateType) String() string {
	switch t {
	case StateBlend:
		return "Blend"
	case StateFog:
		return "Fog"
	case StateLight:
		return "Light"
	case StateMaterial:
		return "Material"
	case StateShade:
		return "Shade"
	case StateTexture:
		return "Texture"
	case StateWireframe:
		return "Wireframe"
	case StateZBuffer:
		return "ZBuffer"
	case StateCull:
		return "Cull"
	default:
		return "Unknown"
	}
}

type RenderState interface {
	StateType() StateType
}

type MaterialState struct {
	Diffuse   ColorRGBA
	Ambient   ColorRGBA
	Specular  ColorRGBA
	Emissive  ColorRGBA
	Shininess float32
}

func (*MaterialState) StateType() StateType { return StateMaterial }

// TextureState holds one texture per texture unit. Unit 0 is the primary texture.
type TextureState struct {
	Textures []Texture
}

func (*TextureState) StateType() StateType { return StateTexture }

func (ts *TextureState) Texture() Texture {
	return ts.TextureAt(0)
}

func (ts *TextureState) TextureAt(unit int) Texture {
	if unit < 0 || unit >= len(ts.Textures) {
		return nil
	}
	return ts.Textures[unit]
}

func (ts *TextureState) SetTexture(unit int, t Texture) {
	for len(ts.Textures) <= unit {
		ts.Textures = append(ts.Textures, nil)
	}
	ts.Textures[unit] = t
}

type BlendFunction int

const (
	BlendZero BlendFunction = iota
	BlendOne
	BlendSourceAlpha
	BlendOneMinusSourceAlpha
)

type BlendState struct {
	BlendEnabled        bool
	SourceFunction      BlendFunction
	DestinationFunction BlendFunction
	TestEnabled         bool
	Reference           float32
}

func (*BlendState) StateType() StateType { return StateBlend }

type WireframeFace int

const (
	WireframeFront WireframeFace = iota
	WireframeBack
	WireframeFrontAndBack
)

type WireframeState struct {
	Face      WireframeFace
	LineWidth float32
	Antialias bool
}

func (*WireframeState) StateType() StateType { return StateWireframe }

type ZBufferState struct {
	Writable bool
	Enabled  bool
}

func (*ZBufferState) StateType() StateType { return StateZBuffer }
