package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDirectionVector(t *testing.T) {
	// Zero yaw and pitch faces negative Z.
	if !Vec3ApproxEq(DirectionVector(0, 0), mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("zero orientation must face -Z, got %v", DirectionVector(0, 0))
	}
	// A quarter turn of yaw faces negative X.
	if !Vec3ApproxEq(DirectionVector(math32.Pi/2, 0), mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("quarter yaw must face -X, got %v", DirectionVector(math32.Pi/2, 0))
	}
	// Positive pitch looks down.
	if DirectionVector(0, 0.5).Y() >= 0 {
		t.Fatal("positive pitch must produce a downward component")
	}
	// The direction is always unit length.
	if !Float32ApproxEq(DirectionVector(1.2, 0.7).Len(), 1) {
		t.Fatalf("direction must be unit length, got %v", DirectionVector(1.2, 0.7).Len())
	}
}

func TestFlattenVec3(t *testing.T) {
	v := FlattenVec3(mgl32.Vec3{3, 5, 4})
	if v.Y() != 0 {
		t.Fatalf("flattened vector must have zero Y, got %v", v)
	}
	if !Float32ApproxEq(v.Len(), 1) {
		t.Fatalf("flattened vector must be normalized, got length %v", v.Len())
	}
	if !Vec3ApproxEq(FlattenVec3(mgl32.Vec3{0, 7, 0}), mgl32.Vec3{}) {
		t.Fatal("vertical-only vector must flatten to zero")
	}
}

func TestSameHzQuadrant(t *testing.T) {
	cases := []struct {
		a, b mgl32.Vec3
		want bool
	}{
		{mgl32.Vec3{1, 0, 1}, mgl32.Vec3{2, 5, 3}, true},
		{mgl32.Vec3{1, 0, 1}, mgl32.Vec3{-1, 0, 1}, false},
		{mgl32.Vec3{1, 0, 1}, mgl32.Vec3{1, 0, -1}, false},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 1}, true},
	}
	for _, c := range cases {
		if got := SameHzQuadrant(c.a, c.b); got != c.want {
			t.Fatalf("SameHzQuadrant(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestRotateVec3AroundAxis(t *testing.T) {
	v := RotateVec3AroundAxis(mgl32.Vec3{1, 0, 0}, Up, math32.Pi/2)
	if !Vec3ApproxEq(v, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("rotating +X by a quarter turn about +Y must give -Z, got %v", v)
	}
	if !Float32ApproxEq(v.Len(), 1) {
		t.Fatal("rotation must preserve length")
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a, b := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 2, 0}

	// A point beside the middle projects onto the segment interior.
	p := ClosestPointOnSegment(a, b, mgl32.Vec3{3, 1, 0})
	if !Vec3ApproxEq(p, mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("expected projection onto the interior, got %v", p)
	}
	// Points past either end clamp to the endpoints.
	if p := ClosestPointOnSegment(a, b, mgl32.Vec3{0, -5, 0}); !Vec3ApproxEq(p, a) {
		t.Fatalf("expected clamp to segment start, got %v", p)
	}
	if p := ClosestPointOnSegment(a, b, mgl32.Vec3{1, 9, 0}); !Vec3ApproxEq(p, b) {
		t.Fatalf("expected clamp to segment end, got %v", p)
	}
}

func TestRound32(t *testing.T) {
	if Round32(1.2345, 2) != 1.23 {
		t.Fatalf("Round32(1.2345, 2) = %v, want 1.23", Round32(1.2345, 2))
	}
	if Round32(-3.456, 1) != -3.5 {
		t.Fatalf("Round32(-3.456, 1) = %v, want -3.5", Round32(-3.456, 1))
	}
	if Round32(7, 0) != 7 {
		t.Fatalf("Round32(7, 0) = %v, want 7", Round32(7, 0))
	}
}

func TestVec3HzDistSqr(t *testing.T) {
	if !Float32ApproxEq(Vec3HzDistSqr(mgl32.Vec3{3, 9, 4}), 25) {
		t.Fatalf("Vec3HzDistSqr must ignore the vertical axis, got %v", Vec3HzDistSqr(mgl32.Vec3{3, 9, 4}))
	}
	if Vec3HzDistSqr(mgl32.Vec3{0, 5, 0}) != 0 {
		t.Fatal("a vertical-only vector has no horizontal distance")
	}
}

func TestClamp32(t *testing.T) {
	if Clamp32(5, 0, 1) != 1 || Clamp32(-5, 0, 1) != 0 || Clamp32(0.5, 0, 1) != 0.5 {
		t.Fatal("clamp must bound values to the given range")
	}
}

func TestCapsuleTranslateAndCenter(t *testing.T) {
	c := NewCapsule(mgl32.Vec3{0, 0.35, 0}, mgl32.Vec3{0, 1.6, 0}, 0.35)
	moved := c.Translate(mgl32.Vec3{1, 0, 2})

	if !Vec3ApproxEq(moved.Start, mgl32.Vec3{1, 0.35, 2}) || !Vec3ApproxEq(moved.End, mgl32.Vec3{1, 1.6, 2}) {
		t.Fatalf("translate must move both segment points, got %v", moved)
	}
	if !Vec3ApproxEq(c.Start, mgl32.Vec3{0, 0.35, 0}) {
		t.Fatal("translate must not mutate the receiver")
	}
	if !Vec3ApproxEq(c.Center(), mgl32.Vec3{0, 0.975, 0}) {
		t.Fatalf("unexpected center %v", c.Center())
	}
	if !Float32ApproxEq(c.Bottom().Y(), 0) {
		t.Fatalf("capsule bottom must sit at the sphere's lowest point, got %v", c.Bottom())
	}
	if !Float32ApproxEq(c.Height(), 1.95) {
		t.Fatalf("capsule height must span both end spheres, got %v", c.Height())
	}
}
