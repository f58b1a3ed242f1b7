// Package sampler provides the pseudo-random sample sources consumed
// by integrators and BSDFs.
package sampler

import (
	"math/rand"

	"github.com/kjbrandt/raydiant/pkg/core"
)

// Uniform is a small, fast PRNG-backed sampler seeded deterministically
// from a 64-bit seed (spec.md §4.8). It is not safe for concurrent use;
// each render worker must own its own instance.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform seeds a fresh Uniform sampler.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewSource(int64(seed)))}
}

// Get1D returns a scalar in [0, 1).
func (u *Uniform) Get1D() float64 { return u.rng.Float64() }

// Get2D returns a 2-vector with both components in [0, 1).
func (u *Uniform) Get2D() core.Vec2 {
	return core.Vec2{X: u.rng.Float64(), Y: u.rng.Float64()}
}

// NewUniformFor derives a per-pixel, per-worker seed from a base seed
// and pixel coordinates, so renders are deterministic given a fixed
// base seed and single-threaded execution (spec.md §9 Determinism).
func NewUniformFor(baseSeed uint64, x, y int) *Uniform {
	mixed := baseSeed ^ uint64(x)*2654435761 ^ uint64(y)*2246822519
	return NewUniform(mixed)
}
