package integrator

import (
	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/scene"
)

// Depth returns a grayscale visualization of hit distance, useful for
// debugging accelerators (spec.md §4.7).
type Depth struct {
	Scale float64
}

// NewDepth builds a Depth integrator.
func NewDepth(scale float64) *Depth { return &Depth{Scale: scale} }

func (d *Depth) Sample(uv core.Vec2, ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Spectrum {
	si, _, hit := s.IntersectRay(ray, 1e-4, 1e30)
	if !hit {
		return core.SpectrumZero
	}
	return core.NewSpectrumMono(si.It.T / d.Scale)
}
