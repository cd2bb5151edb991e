package scene

type FaceCullMode int

const (
	FaceCullBack FaceCullMode = iota
	FaceCullOff
	FaceCullFront
	FaceCullFrontAndBack
)

func (m FaceCullMode) String() string {
	switch m {
	case FaceCullBack:
		return "Back"
	case FaceCullOff:
		return "Off"
	case FaceCullFront:
		return "Front"
	case FaceCullFrontAndBack:
		return "FrontAndBack"
	}
	return "Unknown"
}

// RenderState overrides fixed pipeline settings of a material.
type RenderState struct {
	FaceCull   FaceCullMode
	Wireframe  bool
	AlphaTest  bool
	DepthWrite bool
	DepthTest  bool
}

func DefaultRenderState() RenderState {
	return RenderState{
		FaceCull:   FaceCullBack,
		DepthWrite: true,
		DepthTest:  true,
	}
}

func (rs *RenderState) SetFaceCullMode(m FaceCullMode) { rs.FaceCull = m }
func (rs *RenderState) SetWireframe(w bool)            { rs.Wireframe = w }
func (rs *RenderState) SetAlphaTest(a bool)            { rs.AlphaTest = a }
