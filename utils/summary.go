package utils

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/legacy_scene_loader/scene"
)

// SpatialSummary is a compact description of a converted tree, without buffers.
type SpatialSummary struct {
	Name        string            `yaml:"name"`
	Kind        string            `yaml:"kind"`
	Translation [3]float32        `yaml:"translation,flow"`
	Rotation    [4]float32        `yaml:"rotation,flow"`
	Scale       [3]float32        `yaml:"scale,flow"`
	Vertices    int               `yaml:"vertices,omitempty"`
	Triangles   int               `yaml:"triangles,omitempty"`
	Indexed     bool              `yaml:"indexed,omitempty"`
	Bound       string            `yaml:"bound,omitempty"`
	Material    string            `yaml:"material,omitempty"`
	Texture     string            `yaml:"texture,omitempty"`
	Children    []*SpatialSummary `yaml:"children,omitempty"`
}

func Summarize(s scene.Spatial) *SpatialSummary {
	t := s.Local()
	sum := &SpatialSummary{
		Name:        s.Name(),
		Translation: t.Translation,
		Rotation:    [4]float32{t.Rotation.X(), t.Rotation.Y(), t.Rotation.Z(), t.Rotation.W},
		Scale:       t.Scale,
	}

	switch v := s.(type) {
	case *scene.Node:
		sum.Kind = "node"
		for _, c := range v.Children() {
			sum.Children = append(sum.Children, Summarize(c))
		}
	case *scene.Geometry:
		sum.Kind = "geometry"
		if m := v.Mesh(); m != nil {
			sum.Vertices = m.VertexCount()
			sum.Triangles = m.TriangleCount()
			sum.Indexed = m.IsIndexed()
			sum.Bound = scene.TypeOf(m.Bound()).String()
		}
		if mat := v.Material(); mat != nil {
			sum.Material = mat.Def().AssetName
			if tex := mat.Texture("DiffuseMap"); tex != nil && tex.Image() != nil {
				sum.Texture = tex.Image().Format.String()
			}
		}
	}
	return sum
}

func SummaryYAML(s scene.Spatial) ([]byte, error) {
	data, err := yaml.Marshal(Summarize(s))
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to marshal summary")
	}
	return data, nil
}
