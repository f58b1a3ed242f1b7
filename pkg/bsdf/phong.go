package bsdf

import (
	"math"

	"github.com/kjbrandt/raydiant/pkg/core"
)

// Phong is the classic diffuse+specular reflection model.
type Phong struct {
	Diffuse   core.Spectrum
	Specular  core.Spectrum
	Shininess float64
}

// NewPhong builds a Phong BSDF.
func NewPhong(kd, ks core.Spectrum, shininess float64) *Phong {
	return &Phong{Diffuse: kd, Specular: ks, Shininess: shininess}
}

// Eval implements spec.md §4.2: kd·max(0,n·wo) +
// ks·max(0,reflect(-wi,n)·wo)^shininess.
func (p *Phong) Eval(si core.SurfaceInteraction, wo core.Vec3) core.Spectrum {
	diffuseTerm := p.Diffuse.Multiply(clamp0(si.Normal.Dot(wo)))

	reflected := core.Reflect(si.Wi.Negate(), si.Normal)
	specAngle := clamp0(reflected.Dot(wo))
	specularTerm := p.Specular.Multiply(math.Pow(specAngle, p.Shininess))

	return diffuseTerm.Add(specularTerm)
}

// Ambient returns zero; Phong carries no ambient term of its own.
func (p *Phong) Ambient() core.Spectrum { return core.SpectrumZero }
