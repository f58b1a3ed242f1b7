// Package accel implements the spatial accelerators that let a scene
// answer ray-intersection queries against many bindings without a
// linear scan of every one: Naive (linear scan, for correctness
// baselines and tiny scenes) and Octree (spec.md §4.6).
package accel

import (
	"github.com/kjbrandt/raydiant/pkg/core"
)

// Accelerator answers nearest-hit queries against a fixed set of
// shape bindings, returning the winning binding's index into the
// slice it was built from.
type Accelerator interface {
	IntersectRay(ray core.Ray, tMin, tMax float64) (si core.SurfaceInteraction, bindingIdx int, hit bool)
}
