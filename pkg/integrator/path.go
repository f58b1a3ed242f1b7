package integrator

import (
	"math"

	"github.com/kjbrandt/raydiant/pkg/bsdf"
	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/scene"
)

const russianRouletteMinDepth = 3

// Path is the Monte-Carlo path tracer of spec.md §4.7: direct lighting
// at every bounce weighted by accumulated throughput, a BSDF-sampled
// outgoing direction, and Russian-roulette termination past a minimum
// depth.
type Path struct {
	MaxDepth int
	direct   *Direct
}

// NewPath builds a Path integrator with the given maximum bounce count.
func NewPath(maxDepth int) *Path {
	return &Path{MaxDepth: maxDepth, direct: NewDirect()}
}

func (p *Path) Sample(uv core.Vec2, ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Spectrum {
	result := core.SpectrumZero
	throughput := core.NewSpectrumRGB(1, 1, 1)
	cur := ray

	for depth := 0; depth < p.MaxDepth; depth++ {
		si, b, hit := s.IntersectRay(cur, 1e-4, 1e30)
		if !hit {
			if s.EnvLight != nil {
				result = result.Add(throughput.MultiplyVec(*s.EnvLight))
			}
			break
		}

		if spec, ok := b.(bsdf.Specular); !ok || !spec.IsSpecular() {
			result = result.Add(throughput.MultiplyVec(p.direct.directLighting(si, b, s)))
		}

		sampleable, ok := b.(bsdf.Sampleable)
		if !ok {
			break
		}
		direction, pdf, weight, ok := sampleable.Sample(si, sampler)
		if !ok {
			break
		}

		if pdf > 0 {
			throughput = throughput.MultiplyVec(weight).Multiply(1.0 / pdf)
		} else {
			// pdf == 0 signals a specular (delta-function) bounce: the
			// weight already carries the full contribution.
			throughput = throughput.MultiplyVec(weight)
		}

		if throughput.IsZero() {
			break
		}

		if depth >= russianRouletteMinDepth {
			survive := math.Min(0.95, math.Max(throughput.R, math.Max(throughput.G, throughput.B)))
			if sampler.Get1D() > survive {
				break
			}
			throughput = throughput.Multiply(1.0 / survive)
		}

		cur = core.NewRay(si.It.P, direction)
	}

	return result
}
