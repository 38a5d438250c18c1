package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world up axis.
var Up = mgl32.Vec3{0, 1, 0}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq determines whether two vectors are approximately equal on every axis.
func Vec3ApproxEq(a, b mgl32.Vec3) bool {
	return Float32ApproxEq(a.X(), b.X()) && Float32ApproxEq(a.Y(), b.Y()) && Float32ApproxEq(a.Z(), b.Z())
}

// Clamp32 clamps a value between the given minimum and maximum.
func Clamp32(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// DirectionVector returns a direction vector from the given yaw and pitch values, in radians.
// A yaw of zero faces negative Z; a positive pitch looks downward.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	m := math32.Cos(pitch)
	return mgl32.Vec3{
		-m * math32.Sin(yaw),
		-math32.Sin(pitch),
		-m * math32.Cos(yaw),
	}
}

// FlattenVec3 zeroes the vertical component of a vector and normalizes the remainder.
// A vector with no horizontal component stays zero.
func FlattenVec3(v mgl32.Vec3) mgl32.Vec3 {
	flat := mgl32.Vec3{v.X(), 0, v.Z()}
	if flat.LenSqr() < 1e-12 {
		return mgl32.Vec3{}
	}
	return flat.Normalize()
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// RotateVec3AroundAxis rotates a vector around the given axis by an angle in radians.
func RotateVec3AroundAxis(v, axis mgl32.Vec3, angle float32) mgl32.Vec3 {
	return mgl32.QuatRotate(angle, axis).Rotate(v)
}

// SameHzQuadrant reports whether two vectors lie in the same horizontal-plane quadrant,
// treating a zero component as compatible with either sign.
func SameHzQuadrant(a, b mgl32.Vec3) bool {
	return a.X()*b.X() >= 0 && a.Z()*b.Z() >= 0
}

// ClosestPointOnSegment returns the point on the segment [start, end] closest to p.
func ClosestPointOnSegment(start, end, p mgl32.Vec3) mgl32.Vec3 {
	seg := end.Sub(start)
	lenSqr := seg.LenSqr()
	if lenSqr < 1e-12 {
		return start
	}
	t := Clamp32(p.Sub(start).Dot(seg)/lenSqr, 0, 1)
	return start.Add(seg.Mul(t))
}
