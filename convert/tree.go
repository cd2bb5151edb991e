package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mogaika/legacy_scene_loader/legacy"
	"github.com/mogaika/legacy_scene_loader/scene"
)

// Convert translates the tree rooted at s. It returns nil when s is of an
// unknown kind; such subtrees are left out of their parent as well.
func (c *Converter) Convert(s legacy.Spatial) scene.Spatial {
	return c.begin().convert(s)
}

func (cv *conversion) convert(s legacy.Spatial) scene.Spatial {
	switch v := s.(type) {
	case legacy.Group:
		return cv.convertNode(v.AsNode())
	case legacy.GeometryLeaf:
		if g := cv.convertGeometry(v); g != nil {
			return g
		}
		return nil
	default:
		name := ""
		if s != nil {
			name = s.Base().Name
		}
		cv.log.Warn("unrecognized spatial type", zap.String("type", fmt.Sprintf("%T", s)), zap.String("name", name))
		return nil
	}
}

func (cv *conversion) convertNode(n *legacy.Node) *scene.Node {
	node := scene.NewNode(n.Name)
	for _, child := range n.Children {
		if converted := cv.convert(child); converted != nil {
			node.AttachChild(converted)
		}
	}
	transferTransform(node, n)
	return node
}

func (cv *conversion) convertGeometry(leaf legacy.GeometryLeaf) *scene.Geometry {
	mesh, mat, _, err := cv.geometry(leaf)
	if err != nil {
		cv.log.Warn("geometry dropped", zap.String("name", leaf.Base().Name), zap.Error(err))
		return nil
	}

	geom := scene.NewGeometry(leaf.Base().Name, mesh)
	geom.SetMaterial(mat)
	transferTransform(geom, leaf)
	return geom
}
