// Package world exposes the collision-query boundary consumed by the
// locomotion controller, plus two ready-made implementations: an infinite
// ground plane and a static AABB index with a coarse uniform grid.
package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-engine/stride/game"
)

// Contact reports the result of a capsule intersection query: the contact
// normal and the penetration depth along it.
type Contact struct {
	Normal mgl32.Vec3
	Depth  float32
}

// Index is a spatial index over static world geometry. It must be queryable
// at arbitrary frequency with no side effects; implementations are never
// mutated during gameplay.
type Index interface {
	// IntersectCapsule reports the deepest contact between the capsule and
	// the world, if any.
	IntersectCapsule(c game.Capsule) (Contact, bool)
}
