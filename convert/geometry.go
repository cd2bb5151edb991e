package convert

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mogaika/legacy_scene_loader/legacy"
	"github.com/mogaika/legacy_scene_loader/scene"
)

// ConvertGeometry builds the mesh, material and bound of a renderable leaf.
// Buffers are copied, the bound only keeps the legacy bound kind and is
// refitted to the copied positions.
//
// The error is only returned when the asset manager cannot provide a
// material definition. A leaf without positions panics.
func (c *Converter) ConvertGeometry(leaf legacy.GeometryLeaf) (*scene.Mesh, *scene.Material, scene.BoundingVolume, error) {
	return c.begin().geometry(leaf)
}

func (cv *conversion) geometry(leaf legacy.GeometryLeaf) (*scene.Mesh, *scene.Material, scene.BoundingVolume, error) {
	g := leaf.AsGeometry()
	if len(g.Vertices) == 0 {
		panic(fmt.Sprintf("geometry %q has no position buffer", g.Name))
	}

	mesh := scene.NewMesh()
	mesh.SetBuffer(scene.BufferPosition, 3, copyFloats(g.Vertices))
	if g.Normals != nil {
		mesh.SetBuffer(scene.BufferNormal, 3, copyFloats(g.Normals))
	}
	if g.Colors != nil {
		mesh.SetBuffer(scene.BufferColor, 4, copyFloats(g.Colors))
	}
	mesh.SetMode(modeOf(leaf))
	// lines and points stay non indexed
	if tm, ok := leaf.(legacy.TriangleMesh); ok {
		if indices := tm.AsTriMesh().Indices; indices != nil {
			mesh.SetIndexBuffer(3, copyIndices(indices))
		}
	}

	bound := cv.boundFor(g)
	mesh.SetBound(bound)
	mesh.UpdateBound()

	mat, err := cv.materialFor(g)
	if err != nil {
		return nil, nil, nil, err
	}

	return mesh, mat, bound, nil
}

func (c *Converter) boundFor(g *legacy.Geometry) scene.BoundingVolume {
	switch b := g.ModelBound.(type) {
	case *legacy.BoundingBox:
		return scene.NewBoundingBox()
	case *legacy.BoundingSphere:
		return scene.NewBoundingSphere()
	case nil:
		c.log.Info("no bounding volume found, defaulting to a bounding box", zap.String("geometry", g.Name))
	default:
		c.log.Info("bounding volume kind not supported, defaulting to a bounding box",
			zap.String("geometry", g.Name), zap.String("kind", fmt.Sprintf("%T", b)))
	}
	return scene.NewBoundingBox()
}

func modeOf(leaf legacy.GeometryLeaf) scene.Mode {
	switch v := leaf.(type) {
	case *legacy.Line:
		switch v.Mode {
		case legacy.LineConnected:
			return scene.ModeLineStrip
		case legacy.LineLoop:
			return scene.ModeLineLoop
		}
		return scene.ModeLines
	case *legacy.Point:
		return scene.ModePoints
	}
	return scene.ModeTriangles
}

func (cv *conversion) materialFor(g *legacy.Geometry) (*scene.Material, error) {
	var mat *scene.Material

	if ms, ok := g.RenderState(legacy.StateMaterial).(*legacy.MaterialState); ok && ms != nil {
		def, err := cv.assets.LoadMaterialDef(scene.LightingDefName)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %q", scene.LightingDefName)
		}
		mat = scene.NewMaterial(def)
		cv.checkParams(g, firstError(
			mat.SetColor("Diffuse", Color(ms.Diffuse)),
			mat.SetColor("Ambient", Color(ms.Ambient)),
			mat.SetColor("Specular", Color(ms.Specular)),
			mat.SetFloat("Shininess", ms.Shininess),
			// set even when the mesh has no color buffer
			mat.SetBoolean("UseMaterialColors", true),
		))
		mat.SetTransparent(true)
		mat.AdditionalRenderState().SetAlphaTest(true)
		mat.AdditionalRenderState().SetFaceCullMode(scene.FaceCullOff)

		if ts, ok := g.RenderState(legacy.StateTexture).(*legacy.TextureState); ok && ts != nil {
			if tex := cv.texture(ts.Texture()); tex != nil {
				cv.checkParams(g, mat.SetTexture("DiffuseMap", tex))
			}
		}
	} else {
		def, err := cv.assets.LoadMaterialDef(scene.UnshadedDefName)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %q", scene.UnshadedDefName)
		}
		mat = scene.NewMaterial(def)
		cv.checkParams(g, mat.SetColor("Color", cv.unshadedColor))
	}

	if _, ok := g.RenderState(legacy.StateBlend).(*legacy.BlendState); ok {
		// blending is decided by the renderer buckets, nothing to carry over
		cv.log.Debug("blend state ignored", zap.String("geometry", g.Name))
	}

	if ws, ok := g.RenderState(legacy.StateWireframe).(*legacy.WireframeState); ok && ws != nil {
		mat.AdditionalRenderState().SetWireframe(true)
	}

	return mat, nil
}

func (c *Converter) checkParams(g *legacy.Geometry, err error) {
	if err != nil {
		c.log.Warn("material parameter rejected", zap.String("geometry", g.Name), zap.Error(err))
	}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
