package accel

import (
	"fmt"
	"sort"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/shape"
)

// Capacity tiers for octree node storage, per spec.md §4.6 invariant
// 5: Small holds 256 shape indices, Medium holds 4096; upgrade from
// Small to Medium is irreversible, and overflowing Medium is a fatal
// program error (no Large tier exists yet).
const (
	smallCapacity  = 256
	mediumCapacity = 4096
)

type storageTier int

const (
	tierSmall storageTier = iota
	tierMedium
)

// nodeStorage is the tagged union of Small/Medium index arrays. Small
// is heap-allocated (boxed) only on first insert, and only the active
// tier's array is non-nil, keeping an empty leaf node cheap.
type nodeStorage struct {
	tier   storageTier
	count  int
	small  *[smallCapacity]int32
	medium *[mediumCapacity]int32
}

// insert adds idx to the storage and reports whether Small capacity
// was just exactly reached (the caller upgrades on this signal).
func (s *nodeStorage) insert(idx int32) (full bool) {
	switch s.tier {
	case tierSmall:
		if s.small == nil {
			s.small = &[smallCapacity]int32{}
		}
		s.small[s.count] = idx
		s.count++
		return s.count == smallCapacity
	default:
		if s.count >= mediumCapacity {
			panic(fmt.Sprintf("raydiant/accel: octree medium storage overflow at %d entries", s.count))
		}
		s.medium[s.count] = idx
		s.count++
		return false
	}
}

// upgrade zero-extends Small storage into Medium storage. Irreversible.
func (s *nodeStorage) upgrade() {
	if s.tier == tierMedium {
		return
	}
	medium := &[mediumCapacity]int32{}
	if s.small != nil {
		copy(medium[:], s.small[:s.count])
	}
	s.tier = tierMedium
	s.medium = medium
	s.small = nil
}

func (s *nodeStorage) indices() []int32 {
	switch s.tier {
	case tierSmall:
		if s.small == nil {
			return nil
		}
		return s.small[:s.count]
	default:
		return s.medium[:s.count]
	}
}

// node is one octree node. firstChildIdx == 0 means "no children",
// since index 0 is always the root and can never be anyone's child
// (spec.md §4.6).
type node struct {
	bounds        core.Bounds
	storage       nodeStorage
	firstChildIdx int
}

// Octree is the spatially-subdivided accelerator of spec.md §4.6.
type Octree struct {
	bindings []shape.Binding
	bounds   []core.Bounds
	nodes    []node
}

// NewOctree builds an octree over bindings. Shapes are sorted ascending
// by AABB volume before insertion (smallest first), which bubbles small
// shapes into deep leaves and keeps large shapes near the root, per
// spec.md §4.6's Build step.
func NewOctree(bindings []shape.Binding) *Octree {
	o := &Octree{bindings: bindings}

	if len(bindings) == 0 {
		o.nodes = []node{{}}
		return o
	}

	bounds := make([]core.Bounds, len(bindings))
	for i := range bindings {
		bounds[i] = bindings[i].Bounds()
	}
	o.bounds = bounds

	order := make([]int, len(bindings))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return bounds[order[a]].Volume() < bounds[order[b]].Volume()
	})

	union := bounds[0]
	for i := 1; i < len(bounds); i++ {
		union = union.Union(bounds[i])
	}
	o.nodes = []node{{bounds: union}}

	for _, idx := range order {
		o.insertShape(0, idx)
	}
	return o
}

// insertShape implements find_smallest_node_containing: walk downward
// from nodeIdx as long as shapeBounds falls entirely into one octant
// of the current node and that octant has been materialized.
func (o *Octree) insertShape(nodeIdx, shapeIdx int) {
	b := o.bounds[shapeIdx]
	cur := nodeIdx
	for {
		n := &o.nodes[cur]
		if n.firstChildIdx == 0 {
			break
		}
		octMin := n.bounds.OctantOf(b.Min)
		octMax := n.bounds.OctantOf(b.Max)
		if octMin != octMax {
			break
		}
		cur = n.firstChildIdx + octMin
	}

	full := o.nodes[cur].storage.insert(int32(shapeIdx))
	if full {
		o.splitNode(cur)
	}
}

// splitNode upgrades a Small-capacity node to Medium and materializes
// its 8 children from the node's octant sub-boxes (spec.md §4.6 Build:
// "on full, the node is upgraded to Medium, then 8 child nodes are
// created").
func (o *Octree) splitNode(nodeIdx int) {
	o.nodes[nodeIdx].storage.upgrade()

	octants := o.nodes[nodeIdx].bounds.Octants()
	firstChild := len(o.nodes)
	for i := 0; i < 8; i++ {
		o.nodes = append(o.nodes, node{bounds: octants[i]})
	}
	// Re-fetch: append may have reallocated the backing array.
	o.nodes[nodeIdx].firstChildIdx = firstChild
}

// IntersectRay descends from the root, testing every shape stored at
// a visited node and recursing into children in front-to-back order
// using the ray's direction-sign bits.
func (o *Octree) IntersectRay(ray core.Ray, tMin, tMax float64) (core.SurfaceInteraction, int, bool) {
	if len(o.nodes) == 0 || len(o.bindings) == 0 {
		return core.SurfaceInteraction{}, -1, false
	}
	var best core.SurfaceInteraction
	bestIdx := -1
	closest := tMax
	hitAnything := false

	signBits := rayOctantSignBits(ray.Direction)

	var walk func(idx int)
	walk = func(idx int) {
		n := &o.nodes[idx]
		if !n.bounds.IntersectsRay(ray, tMin, closest) {
			return
		}

		for _, si := range n.storage.indices() {
			if hit, ok := o.bindings[si].Intersect(ray, tMin, closest); ok {
				hitAnything = true
				closest = hit.It.T
				best = hit
				bestIdx = int(si)
			}
		}

		if n.firstChildIdx == 0 {
			return
		}

		for _, child := range frontToBackOctants(signBits) {
			walk(n.firstChildIdx + child)
		}
	}
	walk(0)

	return best, bestIdx, hitAnything
}

// rayOctantSignBits reports, per axis, whether the ray direction
// increases along that axis (the sign bits §4.6's in_dir consumes).
func rayOctantSignBits(dir core.Vec3) [3]bool {
	return [3]bool{dir.X >= 0, dir.Y >= 0, dir.Z >= 0}
}

// frontToBackOctants enumerates all 8 octants in the order a ray with
// the given per-axis sign bits would encounter them: nearest corner
// first, varying the axis least likely to matter last. This is the
// in_dir traversal order of spec.md §4.6.
func frontToBackOctants(sign [3]bool) [8]int {
	// Octant bit 2 is "low X half" (point.X < center.X). A ray moving in
	// +X direction reaches high-X octants first, so the near corner has
	// bit 2 clear when sign.X is true.
	bit := func(axisPositive bool, bitmask int) int {
		if axisPositive {
			return 0
		}
		return bitmask
	}
	near := bit(sign[0], 4) | bit(sign[1], 2) | bit(sign[2], 1)

	var order [8]int
	for i := 0; i < 8; i++ {
		// Gray-code-like walk from the near octant outward: flipping one
		// bit at a time visits progressively farther octants before
		// flipping a second and third.
		order[i] = near ^ grayStep(i)
	}
	return order
}

// grayStep returns the i-th step in a fixed traversal from "flip
// nothing" through "flip all three bits", ordered by popcount so nearer
// octants (fewer axis flips from the entry octant) are visited first.
func grayStep(i int) int {
	steps := [8]int{0, 1, 2, 4, 3, 5, 6, 7}
	return steps[i]
}
