package legacy

type BoundingVolume interface {
	Center() Vector3f
}

type BoundingBox struct {
	Centre                    Vector3f
	XExtent, YExtent, ZExtent float32
}

func (b *BoundingBox) Center() Vector3f { return b.Centre }

type BoundingSphere struct {
	Centre Vector3f
	Radius float32
}

func (b *BoundingSphere) Center() Vector3f { return b.Centre }

type OrientedBoundingBox struct {
	Centre         Vector3f
	Extent         Vector3f
	XAxis, YAxis   Vector3f
	ZAxis          Vector3f
	CorrectCorners bool
}

func (b *OrientedBoundingBox) Center() Vector3f { return b.Centre }
