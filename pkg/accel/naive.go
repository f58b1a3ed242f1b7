package accel

import (
	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/shape"
)

// Naive is a linear-scan accelerator, grounded on the teacher's BVH
// leaf-node scan: test every binding, keep the closest hit.
type Naive struct {
	bindings []shape.Binding
}

// NewNaive builds a Naive accelerator over bindings. The slice is
// retained by reference, not copied; callers must not mutate it after
// the accelerator is built.
func NewNaive(bindings []shape.Binding) *Naive {
	return &Naive{bindings: bindings}
}

func (n *Naive) IntersectRay(ray core.Ray, tMin, tMax float64) (core.SurfaceInteraction, int, bool) {
	closestSoFar := tMax
	hitAnything := false
	var best core.SurfaceInteraction
	bestIdx := -1

	for i := range n.bindings {
		if si, ok := n.bindings[i].Intersect(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = si.It.T
			best = si
			bestIdx = i
		}
	}

	return best, bestIdx, hitAnything
}
