package scene

import "fmt"

type BufferType int

const (
	BufferPosition BufferType = iota
	BufferNormal
	BufferColor
	BufferTexCoord
	BufferIndex
)

func (t BufferType) String() string {
	switch t {
	case BufferPosition:
		return "Position"
	case BufferNormal:
		return "Normal"
	case BufferColor:
		return "Color"
	case BufferTexCoord:
		return "TexCoord"
	case BufferIndex:
		return "Index"
	default:
		return fmt.Sprintf("BufferType(%d)", int(t))
	}
}

// VertexBuffer is a flat per-element buffer. Index buffers use Ints,
// every other type uses Floats.
type VertexBuffer struct {
	Type       BufferType
	Components int
	Floats     []float32
	Ints       []uint32
}

func (vb *VertexBuffer) Len() int {
	if vb.Type == BufferIndex {
		return len(vb.Ints)
	}
	return len(vb.Floats)
}

// ElementCount is the number of vertexes (or index groups) in the buffer.
func (vb *VertexBuffer) ElementCount() int {
	if vb.Components == 0 {
		return 0
	}
	return vb.Len() / vb.Components
}

// Mode tells how vertexes (or indexes) are assembled into primitives.
type Mode int

const (
	ModeTriangles Mode = iota
	ModeLines
	ModeLineStrip
	ModeLineLoop
	ModePoints
)

func (m Mode) String() string {
	switch m {
	case ModeTriangles:
		return "Triangles"
	case ModeLines:
		return "Lines"
	case ModeLineStrip:
		return "LineStrip"
	case ModeLineLoop:
		return "LineLoop"
	case ModePoints:
		return "Points"
	}
	return "Unknown"
}

// Mesh owns its buffers, SetBuffer does not copy the passed slices.
type Mesh struct {
	buffers map[BufferType]*VertexBuffer
	bound   BoundingVolume
	mode    Mode
}

func NewMesh() *Mesh {
	return &Mesh{buffers: make(map[BufferType]*VertexBuffer)}
}

func (m *Mesh) SetBuffer(t BufferType, components int, data []float32) {
	if t == BufferIndex {
		panic("index buffer must be set with SetIndexBuffer")
	}
	m.buffers[t] = &VertexBuffer{Type: t, Components: components, Floats: data}
}

func (m *Mesh) SetIndexBuffer(components int, data []uint32) {
	m.buffers[BufferIndex] = &VertexBuffer{Type: BufferIndex, Components: components, Ints: data}
}

func (m *Mesh) ClearBuffer(t BufferType) {
	delete(m.buffers, t)
}

func (m *Mesh) Buffer(t BufferType) *VertexBuffer {
	return m.buffers[t]
}

func (m *Mesh) HasBuffer(t BufferType) bool {
	_, ok := m.buffers[t]
	return ok
}

func (m *Mesh) IsIndexed() bool {
	return m.HasBuffer(BufferIndex)
}

func (m *Mesh) VertexCount() int {
	if pb := m.buffers[BufferPosition]; pb != nil {
		return pb.ElementCount()
	}
	return 0
}

func (m *Mesh) Mode() Mode        { return m.mode }
func (m *Mesh) SetMode(mode Mode) { m.mode = mode }

// TriangleCount counts index triples, or vertex triples for non-indexed meshes.
// Line and point meshes have no triangles.
func (m *Mesh) TriangleCount() int {
	if m.mode != ModeTriangles {
		return 0
	}
	if ib := m.buffers[BufferIndex]; ib != nil {
		return len(ib.Ints) / 3
	}
	return m.VertexCount() / 3
}

func (m *Mesh) Bound() BoundingVolume { return m.bound }

func (m *Mesh) SetBound(b BoundingVolume) { m.bound = b }

// UpdateBound recomputes the current bound from the position buffer.
// Meshes without bound or positions are left untouched.
func (m *Mesh) UpdateBound() {
	pb := m.buffers[BufferPosition]
	if m.bound == nil || pb == nil {
		return
	}
	m.bound.ComputeFromPoints(pb.Floats)
}
