package convert

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/mogaika/legacy_scene_loader/legacy"
	"github.com/mogaika/legacy_scene_loader/scene"
)

func TestColor(t *testing.T) {
	assert.Equal(t, mgl32.Vec4{0.1, 0.2, 0.3, 0.4}, Color(legacy.ColorRGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4}))
}

func TestVector3(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{1, -2, 3}, Vector3(legacy.Vector3f{X: 1, Y: -2, Z: 3}))
}

func TestMatrix3KeepsRowsAndColumns(t *testing.T) {
	m := Matrix3(legacy.Matrix3f{
		M00: 1, M01: 2, M02: 3,
		M10: 4, M11: 5, M12: 6,
		M20: 7, M21: 8, M22: 9,
	})
	var n float32 = 1
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, n, m.At(r, c), "row %d col %d", r, c)
			n++
		}
	}
}

func TestQuaternion(t *testing.T) {
	q := Quaternion(legacy.Quaternion{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9})
	assert.Equal(t, float32(0.9), q.W)
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, q.V)
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform(legacy.Transform{
		Translation: legacy.Vector3f{X: 1, Y: 2, Z: 3},
		Rotation:    legacy.IdentityQuaternion(),
		Scale:       legacy.Vector3f{X: 1, Y: 1, Z: 1},
	})
	assert.Equal(t, scene.Transform{
		Translation: mgl32.Vec3{1, 2, 3},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}, tr)
}

func TestCopyFloatsDoesNotAlias(t *testing.T) {
	src := []float32{1, 2, 3}
	dst := copyFloats(src)
	src[0] = 10
	assert.Equal(t, []float32{1, 2, 3}, dst)
	assert.Nil(t, copyFloats(nil))
}
