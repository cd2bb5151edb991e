// Package scene is the scene graph consumed by the renderer.
// A tree is made of *Node groups and *Geometry leaves.
package scene

import "github.com/go-gl/mathgl/mgl32"

type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix returns the local transform as translation * rotation * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2]).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// Spatial is either *Node or *Geometry.
type Spatial interface {
	Name() string
	Local() *Transform
	Parent() *Node

	setParent(*Node)
}

type spatial struct {
	name   string
	local  Transform
	parent *Node
}

func (s *spatial) Name() string      { return s.name }
func (s *spatial) Local() *Transform { return &s.local }
func (s *spatial) Parent() *Node     { return s.parent }
func (s *spatial) setParent(p *Node) { s.parent = p }

func (s *spatial) SetLocalTranslation(v mgl32.Vec3) { s.local.Translation = v }
func (s *spatial) SetLocalRotation(q mgl32.Quat)    { s.local.Rotation = q }
func (s *spatial) SetLocalScale(v mgl32.Vec3)       { s.local.Scale = v }

type Node struct {
	spatial
	children []Spatial
}

func NewNode(name string) *Node {
	return &Node{spatial: spatial{name: name, local: IdentityTransform()}}
}

// AttachChild appends child, detaching it from a previous parent first.
func (n *Node) AttachChild(child Spatial) {
	if old := child.Parent(); old != nil {
		old.DetachChild(child)
	}
	child.setParent(n)
	n.children = append(n.children, child)
}

func (n *Node) DetachChild(child Spatial) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.setParent(nil)
			return true
		}
	}
	return false
}

func (n *Node) Children() []Spatial { return n.children }

func (n *Node) Quantity() int { return len(n.children) }

func (n *Node) Child(name string) Spatial {
	for _, c := range n.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

type Geometry struct {
	spatial
	mesh     *Mesh
	material *Material
}

func NewGeometry(name string, mesh *Mesh) *Geometry {
	return &Geometry{spatial: spatial{name: name, local: IdentityTransform()}, mesh: mesh}
}

func (g *Geometry) Mesh() *Mesh             { return g.mesh }
func (g *Geometry) SetMesh(m *Mesh)         { g.mesh = m }
func (g *Geometry) Material() *Material     { return g.material }
func (g *Geometry) SetMaterial(m *Material) { g.material = m }

// ModelBound returns the mesh bound, nil when there is no mesh or it was never bounded.
func (g *Geometry) ModelBound() BoundingVolume {
	if g.mesh == nil {
		return nil
	}
	return g.mesh.Bound()
}

// Walk visits s and its subtree depth first, parents before children.
// Returning false from fn skips the children of the visited spatial.
func Walk(s Spatial, fn func(s Spatial) bool) {
	if !fn(s) {
		return
	}
	if n, ok := s.(*Node); ok {
		for _, c := range n.children {
			Walk(c, fn)
		}
	}
}
