package bsdf

import (
	"math"

	"github.com/kjbrandt/raydiant/pkg/core"
)

// Diffuse is a perfectly Lambertian reflector.
type Diffuse struct {
	Reflectance core.Spectrum
}

// NewDiffuse builds a Diffuse BSDF.
func NewDiffuse(reflectance core.Spectrum) *Diffuse { return &Diffuse{Reflectance: reflectance} }

// Eval implements spec.md §4.2: reflectance · max(0, n·-wi) ·
// max(0, n·wo) / π.
func (d *Diffuse) Eval(si core.SurfaceInteraction, wo core.Vec3) core.Spectrum {
	cosIn := clamp0(si.Normal.Dot(si.Wi.Negate()))
	cosOut := clamp0(si.Normal.Dot(wo))
	return d.Reflectance.Multiply(cosIn * cosOut / math.Pi)
}

// Ambient returns zero; Diffuse has no ambient term.
func (d *Diffuse) Ambient() core.Spectrum { return core.SpectrumZero }

// Sample draws a cosine-weighted direction in the surface hemisphere,
// implementing the §4.2 extension point so the path integrator has a
// real BSDF-sampling strategy rather than a stub.
func (d *Diffuse) Sample(si core.SurfaceInteraction, sampler core.Sampler) (core.Vec3, float64, core.Spectrum, bool) {
	dir := core.RandomCosineDirection(si.Normal, sampler)
	cosTheta := clamp0(dir.Dot(si.Normal))
	pdf := cosTheta / math.Pi
	if pdf <= 0 {
		return core.Vec3{}, 0, core.SpectrumZero, false
	}
	weight := d.Reflectance.Multiply(1.0 / math.Pi)
	return dir, pdf, weight, true
}
