package game

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Capsule is a swept-sphere volume: the set of points within Radius of the
// segment from Start to End. Start is the lower point of the segment.
type Capsule struct {
	Start  mgl32.Vec3
	End    mgl32.Vec3
	Radius float32
}

// NewCapsule returns a capsule spanning the given segment with the given radius.
func NewCapsule(start, end mgl32.Vec3, radius float32) Capsule {
	return Capsule{Start: start, End: end, Radius: radius}
}

// Translate returns the capsule moved by the given vector.
func (c Capsule) Translate(v mgl32.Vec3) Capsule {
	c.Start = c.Start.Add(v)
	c.End = c.End.Add(v)
	return c
}

// Center returns the midpoint of the capsule's segment.
func (c Capsule) Center() mgl32.Vec3 {
	return c.Start.Add(c.End).Mul(0.5)
}

// Bottom returns the lowest point of the capsule's volume.
func (c Capsule) Bottom() mgl32.Vec3 {
	return c.Start.Sub(mgl32.Vec3{0, c.Radius, 0})
}

// Height returns the vertical extent of the capsule's volume.
func (c Capsule) Height() float32 {
	return c.End.Y() - c.Start.Y() + 2*c.Radius
}
