package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type BoundType int

const (
	BoundNone BoundType = iota
	BoundBox
	BoundSphere
)

func (t BoundType) String() string {
	switch t {
	case BoundNone:
		return "None"
	case BoundBox:
		return "Box"
	case BoundSphere:
		return "Sphere"
	default:
		return fmt.Sprintf("BoundType(%d)", int(t))
	}
}

// BoundingVolume is either *BoundingBox or *BoundingSphere.
type BoundingVolume interface {
	Type() BoundType
	Center() mgl32.Vec3
	// ComputeFromPoints refits the volume around flat xyz triples.
	ComputeFromPoints(points []float32)
	Contains(p mgl32.Vec3) bool
}

// TypeOf returns BoundNone for a nil volume.
func TypeOf(bv BoundingVolume) BoundType {
	if bv == nil {
		return BoundNone
	}
	return bv.Type()
}

// containsSlack absorbs float rounding of points lying on the bound surface.
const containsSlack = 1e-4

type BoundingBox struct {
	Centre mgl32.Vec3
	Extent mgl32.Vec3
}

func NewBoundingBox() *BoundingBox { return &BoundingBox{} }

func (b *BoundingBox) Type() BoundType    { return BoundBox }
func (b *BoundingBox) Center() mgl32.Vec3 { return b.Centre }
func (b *BoundingBox) Min() mgl32.Vec3    { return b.Centre.Sub(b.Extent) }
func (b *BoundingBox) Max() mgl32.Vec3    { return b.Centre.Add(b.Extent) }

func (b *BoundingBox) ComputeFromPoints(points []float32) {
	min, max, ok := pointsMinMax(points)
	if !ok {
		*b = BoundingBox{}
		return
	}
	b.Centre = min.Add(max).Mul(0.5)
	b.Extent = max.Sub(b.Centre)
}

func (b *BoundingBox) Contains(p mgl32.Vec3) bool {
	d := p.Sub(b.Centre)
	for i := range d {
		if float32(math.Abs(float64(d[i]))) > b.Extent[i]+containsSlack {
			return false
		}
	}
	return true
}

type BoundingSphere struct {
	Centre mgl32.Vec3
	Radius float32
}

func NewBoundingSphere() *BoundingSphere { return &BoundingSphere{} }

func (s *BoundingSphere) Type() BoundType    { return BoundSphere }
func (s *BoundingSphere) Center() mgl32.Vec3 { return s.Centre }

// ComputeFromPoints centers the sphere on the points box and takes the farthest point as radius.
func (s *BoundingSphere) ComputeFromPoints(points []float32) {
	min, max, ok := pointsMinMax(points)
	if !ok {
		*s = BoundingSphere{}
		return
	}
	s.Centre = min.Add(max).Mul(0.5)
	var r2 float32
	for i := 0; i+2 < len(points); i += 3 {
		d := mgl32.Vec3{points[i], points[i+1], points[i+2]}.Sub(s.Centre)
		if l := d.Dot(d); l > r2 {
			r2 = l
		}
	}
	s.Radius = float32(math.Sqrt(float64(r2)))
}

func (s *BoundingSphere) Contains(p mgl32.Vec3) bool {
	return p.Sub(s.Centre).Len() <= s.Radius+containsSlack
}

func pointsMinMax(points []float32) (min, max mgl32.Vec3, ok bool) {
	if len(points) < 3 {
		return min, max, false
	}
	min = mgl32.Vec3{points[0], points[1], points[2]}
	max = min
	for i := 3; i+2 < len(points); i += 3 {
		for c := 0; c < 3; c++ {
			v := points[i+c]
			if v < min[c] {
				min[c] = v
			}
			if v > max[c] {
				max[c] = v
			}
		}
	}
	return min, max, true
}
