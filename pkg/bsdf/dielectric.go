package bsdf

import (
	"math"

	"github.com/kjbrandt/raydiant/pkg/core"
)

// Dielectric is a transparent material (glass, water) that both
// reflects and refracts, choosing between the two stochastically by
// Schlick-approximated Fresnel reflectance. Grounded on the numerically
// careful refraction/reflection math spec.md §1 calls out as core
// engineering.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric builds a Dielectric BSDF.
func NewDielectric(ior float64) *Dielectric { return &Dielectric{RefractiveIndex: ior} }

func (d *Dielectric) Eval(si core.SurfaceInteraction, wo core.Vec3) core.Spectrum { return core.SpectrumZero }
func (d *Dielectric) Ambient() core.Spectrum                                     { return core.SpectrumZero }
func (d *Dielectric) IsSpecular() bool                                           { return true }

// Sample picks reflection or refraction per Schlick's approximation,
// handling total internal reflection.
func (d *Dielectric) Sample(si core.SurfaceInteraction, sampler core.Sampler) (core.Vec3, float64, core.Spectrum, bool) {
	frontFace := si.Wi.Dot(si.Normal) < 0
	var refractionRatio float64
	normal := si.Normal
	if frontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
		normal = normal.Negate()
	}

	unitDir := si.Wi.Normalize()
	cosTheta := math.Min(-unitDir.Dot(normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = core.Reflect(unitDir, normal)
	} else {
		direction = core.Refract(unitDir, normal, refractionRatio)
	}

	return direction, 0, core.NewSpectrumRGB(1, 1, 1), true
}

// schlickReflectance approximates Fresnel reflectance at the given
// incidence cosine and index-of-refraction ratio.
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
