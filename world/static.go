package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-engine/stride/game"
)

// defaultCellSize is the XZ extent of a grid cell in the static index.
const defaultCellSize = float32(4.0)

type cellKey struct {
	x, z int32
}

// StaticIndex is a spatial index over a fixed set of axis-aligned boxes.
// Boxes are bucketed into a coarse uniform grid on the horizontal plane so a
// capsule query only visits nearby geometry. The index is immutable after
// construction.
type StaticIndex struct {
	boxes    []cube.BBox
	cells    map[cellKey][]int
	cellSize float32
}

// NewStaticIndex builds an index over the given boxes.
func NewStaticIndex(boxes []cube.BBox) *StaticIndex {
	idx := &StaticIndex{
		boxes:    boxes,
		cells:    make(map[cellKey][]int),
		cellSize: defaultCellSize,
	}
	for i, b := range boxes {
		minX, maxX := idx.cellCoord(b.Min().X()), idx.cellCoord(b.Max().X())
		minZ, maxZ := idx.cellCoord(b.Min().Z()), idx.cellCoord(b.Max().Z())
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				key := cellKey{x, z}
				idx.cells[key] = append(idx.cells[key], i)
			}
		}
	}
	return idx
}

func (idx *StaticIndex) cellCoord(v float32) int32 {
	return int32(math32.Floor(v / idx.cellSize))
}

// nearbyBoxes returns the boxes bucketed in the grid cells overlapped by the
// capsule's horizontal footprint.
func (idx *StaticIndex) nearbyBoxes(c game.Capsule) []int {
	minX := idx.cellCoord(math32.Min(c.Start.X(), c.End.X()) - c.Radius)
	maxX := idx.cellCoord(math32.Max(c.Start.X(), c.End.X()) + c.Radius)
	minZ := idx.cellCoord(math32.Min(c.Start.Z(), c.End.Z()) - c.Radius)
	maxZ := idx.cellCoord(math32.Max(c.Start.Z(), c.End.Z()) + c.Radius)

	seen := make(map[int]struct{})
	var found []int
	for x := minX; x <= maxX; x++ {
		for z := minZ; z <= maxZ; z++ {
			for _, i := range idx.cells[cellKey{x, z}] {
				if _, dup := seen[i]; dup {
					continue
				}
				seen[i] = struct{}{}
				found = append(found, i)
			}
		}
	}
	return found
}

// IntersectCapsule reports the deepest contact between the capsule and any
// indexed box.
func (idx *StaticIndex) IntersectCapsule(c game.Capsule) (Contact, bool) {
	var (
		deepest Contact
		found   bool
	)
	for _, i := range idx.nearbyBoxes(c) {
		contact, ok := capsuleBoxContact(c, idx.boxes[i])
		if !ok {
			continue
		}
		if !found || contact.Depth > deepest.Depth {
			deepest = contact
			found = true
		}
	}
	return deepest, found
}

// capsuleBoxContact tests a capsule against a single box. The closest
// point pair between the capsule's segment and the box is refined once,
// which is exact for face contacts and close enough for edge contacts at
// controller scale.
func capsuleBoxContact(c game.Capsule, b cube.BBox) (Contact, bool) {
	center := b.Min().Add(b.Max()).Mul(0.5)
	onSeg := game.ClosestPointOnSegment(c.Start, c.End, center)
	onBox := clampToBox(onSeg, b)
	onSeg = game.ClosestPointOnSegment(c.Start, c.End, onBox)
	onBox = clampToBox(onSeg, b)

	delta := onSeg.Sub(onBox)
	dist := delta.Len()
	if dist >= c.Radius {
		return Contact{}, false
	}
	if dist < 1e-7 {
		// Segment inside the box; push out the nearest face, preferring up.
		normal, depth := insideBoxEscape(onSeg, b)
		return Contact{Normal: normal, Depth: depth + c.Radius}, true
	}
	return Contact{Normal: delta.Mul(1 / dist), Depth: c.Radius - dist}, true
}

func clampToBox(p mgl32.Vec3, b cube.BBox) mgl32.Vec3 {
	return mgl32.Vec3{
		game.Clamp32(p.X(), b.Min().X(), b.Max().X()),
		game.Clamp32(p.Y(), b.Min().Y(), b.Max().Y()),
		game.Clamp32(p.Z(), b.Min().Z(), b.Max().Z()),
	}
}

// insideBoxEscape returns the outward normal and distance of the box face
// nearest to a point contained in the box.
func insideBoxEscape(p mgl32.Vec3, b cube.BBox) (mgl32.Vec3, float32) {
	faces := []struct {
		normal mgl32.Vec3
		dist   float32
	}{
		{mgl32.Vec3{0, 1, 0}, b.Max().Y() - p.Y()},
		{mgl32.Vec3{0, -1, 0}, p.Y() - b.Min().Y()},
		{mgl32.Vec3{1, 0, 0}, b.Max().X() - p.X()},
		{mgl32.Vec3{-1, 0, 0}, p.X() - b.Min().X()},
		{mgl32.Vec3{0, 0, 1}, b.Max().Z() - p.Z()},
		{mgl32.Vec3{0, 0, -1}, p.Z() - b.Min().Z()},
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if f.dist < best.dist {
			best = f
		}
	}
	return best.normal, best.dist
}
