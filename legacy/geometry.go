package legacy

// GeometryLeaf is implemented by Geometry and every renderable kind embedding it.
type GeometryLeaf interface {
	Spatial
	AsGeometry() *Geometry
}

// TriangleMesh is implemented by TriMesh and kinds embedding it.
// Only these carry an index buffer.
type TriangleMesh interface {
	GeometryLeaf
	AsTriMesh() *TriMesh
}

// Geometry is a renderable leaf. Buffers are flat: 3 floats per vertex for
// positions and normals, 4 floats per vertex for colors.
type Geometry struct {
	SpatialBase
	Vertices   []float32
	Normals    []float32
	Colors     []float32
	ModelBound BoundingVolume
}

func (g *Geometry) AsGeometry() *Geometry { return g }

func (g *Geometry) VertexCount() int { return len(g.Vertices) / 3 }

type TriMesh struct {
	Geometry
	// 3 indexes per triangle
	Indices []int32
}

func NewTriMesh(name string) *TriMesh {
	return &TriMesh{Geometry: Geometry{SpatialBase: SpatialBase{Name: name, Local: IdentityTransform()}}}
}

func (t *TriMesh) AsTriMesh() *TriMesh { return t }

func (t *TriMesh) TriangleCount() int { return len(t.Indices) / 3 }

type LineMode int

const (
	LineSegments LineMode = iota
	LineConnected
	LineLoop
)

type Line struct {
	Geometry
	Mode      LineMode
	LineWidth float32
}

type Point struct {
	Geometry
	PointSize float32
}
