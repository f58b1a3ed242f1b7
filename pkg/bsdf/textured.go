package bsdf

import (
	"math"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/texture"
)

// TexturedDiffuse is Diffuse with the reflectance looked up per-hit
// from a bitmap instead of held constant, for MTL materials whose
// map_Kd directive names a texture file (pkg/loaders/mtl.go).
type TexturedDiffuse struct {
	Map *texture.Map
}

// NewTexturedDiffuse builds a TexturedDiffuse BSDF sampling kd from m.
func NewTexturedDiffuse(m *texture.Map) *TexturedDiffuse { return &TexturedDiffuse{Map: m} }

func (d *TexturedDiffuse) Eval(si core.SurfaceInteraction, wo core.Vec3) core.Spectrum {
	cosIn := clamp0(si.Normal.Dot(si.Wi.Negate()))
	cosOut := clamp0(si.Normal.Dot(wo))
	return d.Map.Sample(si.UV).Multiply(cosIn * cosOut / math.Pi)
}

func (d *TexturedDiffuse) Ambient() core.Spectrum { return core.SpectrumZero }

func (d *TexturedDiffuse) Sample(si core.SurfaceInteraction, sampler core.Sampler) (core.Vec3, float64, core.Spectrum, bool) {
	dir := core.RandomCosineDirection(si.Normal, sampler)
	cosTheta := clamp0(dir.Dot(si.Normal))
	pdf := cosTheta / math.Pi
	if pdf <= 0 {
		return core.Vec3{}, 0, core.SpectrumZero, false
	}
	weight := d.Map.Sample(si.UV).Multiply(1.0 / math.Pi)
	return dir, pdf, weight, true
}
