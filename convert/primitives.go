package convert

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/legacy_scene_loader/legacy"
	"github.com/mogaika/legacy_scene_loader/scene"
)

func Color(c legacy.ColorRGBA) mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

func Vector3(v legacy.Vector3f) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Matrix3 keeps element (r, c) at (r, c); mgl32 stores columns first.
func Matrix3(m legacy.Matrix3f) mgl32.Mat3 {
	return mgl32.Mat3FromRows(
		mgl32.Vec3{m.M00, m.M01, m.M02},
		mgl32.Vec3{m.M10, m.M11, m.M12},
		mgl32.Vec3{m.M20, m.M21, m.M22},
	)
}

func Quaternion(q legacy.Quaternion) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func Transform(t legacy.Transform) scene.Transform {
	return scene.Transform{
		Translation: Vector3(t.Translation),
		Rotation:    Quaternion(t.Rotation),
		Scale:       Vector3(t.Scale),
	}
}

func transferTransform(dst scene.Spatial, src legacy.Spatial) {
	*dst.Local() = Transform(src.Base().Local)
}

func copyFloats(src []float32) []float32 {
	if src == nil {
		return nil
	}
	dst := make([]float32, len(src))
	copy(dst, src)
	return dst
}

func copyIndices(src []int32) []uint32 {
	dst := make([]uint32, len(src))
	for i, idx := range src {
		dst[i] = uint32(idx)
	}
	return dst
}
