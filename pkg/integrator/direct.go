package integrator

import (
	"github.com/kjbrandt/raydiant/pkg/bsdf"
	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/scene"
)

// Direct implements the classical direct-lighting loop of spec.md
// §4.7: ambient unconditionally, plus a shadow-tested BSDF term per
// light.
type Direct struct{}

// NewDirect builds a Direct integrator.
func NewDirect() *Direct { return &Direct{} }

func (d *Direct) Sample(uv core.Vec2, ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Spectrum {
	si, b, hit := s.IntersectRay(ray, 1e-4, 1e30)
	if !hit {
		if s.EnvLight != nil {
			return *s.EnvLight
		}
		return core.SpectrumZero
	}
	return d.directLighting(si, b, s)
}

// directLighting is the shared per-hit lighting loop of spec.md §4.7's
// Direct integrator, factored out so Path can reuse it at every bounce.
func (d *Direct) directLighting(si core.SurfaceInteraction, b bsdf.BSDF, s *scene.Scene) core.Spectrum {
	result := core.SpectrumZero
	for _, l := range s.Lights {
		shadowRay, emitted := l.SampleTowards(si.It.P)
		if emitted.IsZero() {
			continue
		}

		result = result.Add(emitted.MultiplyVec(b.Ambient()))

		// The shadow ray runs from the light toward si.It.P (spec.md
		// §4.3); the surface sits at the distance between the two.
		distToSurface := shadowRay.Origin.Subtract(si.It.P).Length()
		if _, _, occluded := s.IntersectRay(shadowRay, 1e-4, distToSurface-shadowEpsilon); occluded {
			continue
		}

		wo := shadowRay.Direction.Negate()
		contribution := b.Eval(si, wo).MultiplyVec(emitted)
		result = result.Add(contribution.ClampNonNegative())
	}
	return result
}
