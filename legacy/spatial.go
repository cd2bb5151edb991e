// Package legacy holds the in-memory scene graph produced by the old engine
// importers. Trees are built completely by the importer and are treated as
// read-only afterwards.
package legacy

// Spatial is any node of a legacy scene graph.
// Concrete kinds are recognised by type switches on Group and GeometryLeaf,
// everything else is an unknown kind for the converter.
type Spatial interface {
	Base() *SpatialBase
}

type SpatialBase struct {
	Name         string
	Local        Transform
	RenderStates map[StateType]RenderState
}

func (s *SpatialBase) Base() *SpatialBase { return s }

func (s *SpatialBase) RenderState(t StateType) RenderState {
	if s.RenderStates == nil {
		return nil
	}
	return s.RenderStates[t]
}

// SetRenderState attaches rs under its own state type, replacing a previous one.
func (s *SpatialBase) SetRenderState(rs RenderState) {
	if s.RenderStates == nil {
		s.RenderStates = make(map[StateType]RenderState)
	}
	s.RenderStates[rs.StateType()] = rs
}

func (s *SpatialBase) ClearRenderState(t StateType) {
	delete(s.RenderStates, t)
}

// Group is implemented by Node and by every node kind embedding it.
type Group interface {
	Spatial
	AsNode() *Node
}

type Node struct {
	SpatialBase
	Children []Spatial
}

func NewNode(name string) *Node {
	return &Node{SpatialBase: SpatialBase{Name: name, Local: IdentityTransform()}}
}

func (n *Node) AsNode() *Node { return n }

func (n *Node) Quantity() int { return len(n.Children) }

func (n *Node) AttachChild(child Spatial) {
	n.Children = append(n.Children, child)
}

// SwitchNode renders only one of its children at a time.
// The active index has no meaning for conversion, it is kept as a plain group.
type SwitchNode struct {
	Node
	ActiveChild int
}
