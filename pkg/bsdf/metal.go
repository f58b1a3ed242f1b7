package bsdf

import "github.com/kjbrandt/raydiant/pkg/core"

// Metal is a fuzzy specular reflector: 0 fuzz is a perfect mirror, 1 is
// very fuzzy. It is a delta-function BSDF, so Eval always returns zero
// (there is no direction for which a random caller's wo matches the
// perturbed reflection); the Path integrator drives it entirely
// through Sample.
type Metal struct {
	Albedo core.Spectrum
	Fuzz   float64
}

// NewMetal builds a Metal BSDF, clamping fuzz to [0,1].
func NewMetal(albedo core.Spectrum, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Eval(si core.SurfaceInteraction, wo core.Vec3) core.Spectrum { return core.SpectrumZero }
func (m *Metal) Ambient() core.Spectrum                                     { return core.SpectrumZero }
func (m *Metal) IsSpecular() bool                                           { return true }

// Sample perturbs the perfect mirror reflection by Fuzz inside a unit
// sphere; a sample that ends up below the surface is rejected.
func (m *Metal) Sample(si core.SurfaceInteraction, sampler core.Sampler) (core.Vec3, float64, core.Spectrum, bool) {
	reflected := core.Reflect(si.Wi.Normalize(), si.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(randomInUnitSphere(sampler).Multiply(m.Fuzz)).Normalize()
	}
	if reflected.Dot(si.Normal) <= 0 {
		return core.Vec3{}, 0, core.SpectrumZero, false
	}
	// PDF of 0 signals "specular" to the integrator; the weight already
	// carries the full (delta-function) contribution.
	return reflected, 0, m.Albedo, true
}

func randomInUnitSphere(sampler core.Sampler) core.Vec3 {
	for i := 0; i < 16; i++ {
		u := sampler.Get2D()
		z := sampler.Get1D()
		p := core.NewVec3(2*u.X-1, 2*u.Y-1, 2*z-1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
	return core.Vec3{}
}
