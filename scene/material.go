package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

var (
	ColorBlack = mgl32.Vec4{0, 0, 0, 1}
	ColorWhite = mgl32.Vec4{1, 1, 1, 1}
	ColorRed   = mgl32.Vec4{1, 0, 0, 1}
	ColorGreen = mgl32.Vec4{0, 1, 0, 1}
	ColorBlue  = mgl32.Vec4{0, 0, 1, 1}
)

type MatParam struct {
	Name  string
	Type  ParamType
	Value interface{}
}

type Material struct {
	def         *MaterialDef
	params      map[string]*MatParam
	transparent bool
	additional  RenderState
}

func NewMaterial(def *MaterialDef) *Material {
	return &Material{
		def:        def,
		params:     make(map[string]*MatParam),
		additional: DefaultRenderState(),
	}
}

func (m *Material) Def() *MaterialDef { return m.def }

func (m *Material) setParam(name string, t ParamType, v interface{}) error {
	dt, ok := m.def.ParamType(name)
	if !ok {
		return errors.Errorf("material def %q has no parameter %q", m.def.AssetName, name)
	}
	if dt != t {
		return errors.Errorf("material parameter %q of %q is %v, not %v", name, m.def.AssetName, dt, t)
	}
	m.params[name] = &MatParam{Name: name, Type: t, Value: v}
	return nil
}

func (m *Material) SetColor(name string, c mgl32.Vec4) error {
	return m.setParam(name, ParamColor, c)
}

func (m *Material) SetFloat(name string, f float32) error {
	return m.setParam(name, ParamFloat, f)
}

func (m *Material) SetBoolean(name string, b bool) error {
	return m.setParam(name, ParamBoolean, b)
}

func (m *Material) SetVector3(name string, v mgl32.Vec3) error {
	return m.setParam(name, ParamVector3, v)
}

func (m *Material) SetTexture(name string, t *Texture2D) error {
	if t == nil {
		delete(m.params, name)
		return nil
	}
	return m.setParam(name, ParamTexture2D, t)
}

func (m *Material) Param(name string) *MatParam {
	return m.params[name]
}

// Params returns the set parameters sorted by name.
func (m *Material) Params() []*MatParam {
	res := make([]*MatParam, 0, len(m.params))
	for _, n := range m.def.ParamNames() {
		if p, ok := m.params[n]; ok {
			res = append(res, p)
		}
	}
	return res
}

func (m *Material) Color(name string) (mgl32.Vec4, bool) {
	if p := m.params[name]; p != nil && p.Type == ParamColor {
		return p.Value.(mgl32.Vec4), true
	}
	return mgl32.Vec4{}, false
}

func (m *Material) Float(name string) (float32, bool) {
	if p := m.params[name]; p != nil && p.Type == ParamFloat {
		return p.Value.(float32), true
	}
	return 0, false
}

func (m *Material) Boolean(name string) (bool, bool) {
	if p := m.params[name]; p != nil && p.Type == ParamBoolean {
		return p.Value.(bool), true
	}
	return false, false
}

// Texture returns nil when the slot is unset.
func (m *Material) Texture(name string) *Texture2D {
	if p := m.params[name]; p != nil && p.Type == ParamTexture2D {
		return p.Value.(*Texture2D)
	}
	return nil
}

func (m *Material) SetTransparent(t bool) { m.transparent = t }
func (m *Material) IsTransparent() bool   { return m.transparent }

func (m *Material) AdditionalRenderState() *RenderState { return &m.additional }
