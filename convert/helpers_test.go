package convert

import (
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mogaika/legacy_scene_loader/legacy"
	"github.com/mogaika/legacy_scene_loader/scene"
)

type testAssets struct {
	missing map[string]bool
}

func (ta testAssets) LoadMaterialDef(name string) (*scene.MaterialDef, error) {
	if ta.missing[name] {
		return nil, errors.Errorf("no %q", name)
	}
	switch name {
	case scene.LightingDefName:
		return scene.LightingMaterialDef(), nil
	case scene.UnshadedDefName:
		return scene.UnshadedMaterialDef(), nil
	}
	return nil, errors.Errorf("unknown %q", name)
}

func newObservedConverter(t *testing.T, opts Options) (*Converter, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	opts.Logger = zap.New(core)
	return New(testAssets{}, opts), logs
}

// triangle is a 3 vertex indexed mesh spanning (0,0,0) (2,0,0) (0,4,0).
func triangle(name string) *legacy.TriMesh {
	tm := legacy.NewTriMesh(name)
	tm.Vertices = []float32{
		0, 0, 0,
		2, 0, 0,
		0, 4, 0,
	}
	tm.Indices = []int32{0, 1, 2}
	return tm
}

func lineLeaf(mode legacy.LineMode) *legacy.Line {
	return &legacy.Line{
		Geometry: legacy.Geometry{
			SpatialBase: legacy.SpatialBase{Name: "line", Local: legacy.IdentityTransform()},
			Vertices:    []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
		},
		Mode: mode,
	}
}

type unknownSpatial struct {
	legacy.SpatialBase
}

func red() legacy.ColorRGBA { return legacy.ColorRGBA{R: 1, A: 1} }

func rgbaImage(w, h int) *legacy.Image {
	return &legacy.Image{
		Format: legacy.FormatRGBA8,
		Width:  w,
		Height: h,
		Depth:  1,
		Data:   make([]byte, w*h*4),
	}
}
