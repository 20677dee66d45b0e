package core

import (
	"fmt"
	"math"
)

// Vec3 is a point or direction in world space, in meters.
// X points down-range, Y to the shooter's left, Z up.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// String formats the vector like "X=1.00 Y=2.00 Z=3.00".
func (v Vec3) String() string {
	return fmt.Sprintf("X=%.2f Y=%.2f Z=%.2f", v.X, v.Y, v.Z)
}

// Rotator is an orientation in degrees. Spawned targets always use the zero rotator.
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// Box is an axis-aligned volume described by its center and half-extents.
type Box struct {
	Origin Vec3
	Extent Vec3 // Half-size along each axis, all components >= 0
}

// NewBox creates a box centered on origin with the given half-extents.
func NewBox(origin, extent Vec3) Box {
	return Box{Origin: origin, Extent: extent}
}

// Min returns the lowest corner of the box.
func (b Box) Min() Vec3 {
	return b.Origin.Sub(b.Extent)
}

// Max returns the highest corner of the box.
func (b Box) Max() Vec3 {
	return b.Origin.Add(b.Extent)
}

// Contains reports whether p lies inside the box, boundaries included.
func (b Box) Contains(p Vec3) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}

// Float64Source is the subset of *rand.Rand used for sampling.
type Float64Source interface {
	Float64() float64
}

// RandomPointInBox draws an independent uniform value per axis within
// ±extent and offsets it by the box origin.
func RandomPointInBox(rng Float64Source, b Box) Vec3 {
	return Vec3{
		X: b.Origin.X + randRange(rng, -b.Extent.X, b.Extent.X),
		Y: b.Origin.Y + randRange(rng, -b.Extent.Y, b.Extent.Y),
		Z: b.Origin.Z + randRange(rng, -b.Extent.Z, b.Extent.Z),
	}
}

func randRange(rng Float64Source, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
