package legacy

type ColorRGBA struct {
	R, G, B, A float32
}

type Vector3f struct {
	X, Y, Z float32
}

// Matrix3f is stored row by row, Mrc is row r column c.
type Matrix3f struct {
	M00, M01, M02 float32
	M10, M11, M12 float32
	M20, M21, M22 float32
}

type Quaternion struct {
	X, Y, Z, W float32
}

func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

type Transform struct {
	Translation Vector3f
	Rotation    Quaternion
	Scale       Vector3f
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: IdentityQuaternion(),
		Scale:    Vector3f{1, 1, 1},
	}
}
