package world

import (
	"github.com/stride-engine/stride/game"
)

// FloorIndex is the cheap fallback index: a single infinite ground plane at
// the given height, with no other geometry.
type FloorIndex struct {
	Height float32
}

// NewFloorIndex returns a floor-only index with its plane at height.
func NewFloorIndex(height float32) FloorIndex {
	return FloorIndex{Height: height}
}

// IntersectCapsule reports contact when the capsule's bottom sphere touches
// or dips below the plane. Touching at zero depth still counts as contact,
// so a capsule settled exactly on the plane keeps its floor classification
// between ticks. The normal always points straight up.
func (f FloorIndex) IntersectCapsule(c game.Capsule) (Contact, bool) {
	depth := f.Height - (c.Start.Y() - c.Radius)
	if depth < 0 {
		return Contact{}, false
	}
	return Contact{Normal: game.Up, Depth: depth}, true
}
