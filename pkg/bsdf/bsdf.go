// Package bsdf implements the BSDF variants from spec.md §3/§4.2:
// diffuse, Phong, debug-normal, and a Wavefront-MTL adapter, plus the
// Metal and Dielectric materials supplemented per SPEC_FULL.md §7.
package bsdf

import "github.com/kjbrandt/raydiant/pkg/core"

// BSDF evaluates how a surface scatters light at a given interaction.
type BSDF interface {
	// Eval returns the BSDF value for the interaction's incident
	// direction against outgoing direction wo.
	Eval(si core.SurfaceInteraction, wo core.Vec3) core.Spectrum
	// Ambient returns a constant ambient term, zero by default.
	Ambient() core.Spectrum
}

// Sampleable is the future extension point from spec.md §4.2: a BSDF
// that can importance-sample an outgoing direction instead of only
// being evaluated against one supplied by the caller. Diffuse and
// Metal implement it; the Path integrator (spec.md §4.7) requires it.
type Sampleable interface {
	BSDF
	Sample(si core.SurfaceInteraction, sampler core.Sampler) (direction core.Vec3, pdf float64, weight core.Spectrum, ok bool)
}

// Specular marks BSDFs whose scattering is a delta function (mirror
// reflection, refraction): direct lighting never applies to them.
type Specular interface {
	IsSpecular() bool
}

func clamp0(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
