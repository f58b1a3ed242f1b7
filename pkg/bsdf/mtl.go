package bsdf

import (
	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/texture"
)

// MTLMaterial holds the fields a Wavefront .mtl entry can carry. It is
// populated by pkg/loaders' MTL parser and turned into a BSDF by
// NewMTL, which dispatches on illum to approximate the Phong/Schlick
// families the MTL format describes (spec.md §4.2, §6).
type MTLMaterial struct {
	Name      string
	Ka        core.Spectrum // ambient
	Kd        core.Spectrum // diffuse
	Ks        core.Spectrum // specular
	Ke        core.Spectrum // emissive
	Ns        float64       // specular exponent
	Ni        float64       // index of refraction
	D         float64       // dissolve (opacity); 1 = opaque
	Illum     int
	MapKd     string // map_Kd texture path, resolved relative to the mtl file's directory
}

// MTL adapts a parsed Wavefront material to the BSDF interface.
// illum values recognized (per the MTL spec, fixed by spec.md §4.2):
//
//	0, 1   diffuse-only (color on, ambient on)
//	2      diffuse + specular (Phong)
//	4, 6, 7, 9  transparent / glass — treated as Dielectric using Ni
//	5      perfect mirror — treated as Metal with zero fuzz
//	others fall back to diffuse+specular Phong
type MTL struct {
	mat  MTLMaterial
	body BSDF
}

// NewMTL builds the BSDF implied by an MTL material's illum model.
func NewMTL(mat MTLMaterial) *MTL {
	return NewMTLTextured(mat, nil)
}

// NewMTLTextured is NewMTL with an optional map_Kd texture: when kdMap
// is non-nil and the material resolves to a diffuse body (illum 0/1),
// reflectance is sampled per-hit from the bitmap instead of held
// constant at mat.Kd.
func NewMTLTextured(mat MTLMaterial, kdMap *texture.Map) *MTL {
	m := &MTL{mat: mat}
	switch mat.Illum {
	case 0, 1:
		if kdMap != nil {
			m.body = NewTexturedDiffuse(kdMap)
		} else {
			m.body = NewDiffuse(mat.Kd)
		}
	case 5:
		m.body = NewMetal(mat.Ks, 0)
	case 4, 6, 7, 9:
		ior := mat.Ni
		if ior <= 0 {
			ior = 1.5
		}
		m.body = NewDielectric(ior)
	default:
		m.body = NewPhong(mat.Kd, mat.Ks, mat.Ns)
	}
	return m
}

func (m *MTL) Eval(si core.SurfaceInteraction, wo core.Vec3) core.Spectrum {
	return m.body.Eval(si, wo)
}

// Ambient returns the material's Ka term, unlike the body BSDFs which
// carry no ambient contribution of their own.
func (m *MTL) Ambient() core.Spectrum { return m.mat.Ka }

// IsSpecular reports whether the underlying illum model resolved to a
// specular (Metal/Dielectric) body.
func (m *MTL) IsSpecular() bool {
	if s, ok := m.body.(Specular); ok {
		return s.IsSpecular()
	}
	return false
}

// Sample forwards to the underlying body when it supports sampling.
func (m *MTL) Sample(si core.SurfaceInteraction, sampler core.Sampler) (core.Vec3, float64, core.Spectrum, bool) {
	if s, ok := m.body.(Sampleable); ok {
		return s.Sample(si, sampler)
	}
	return core.Vec3{}, 0, core.SpectrumZero, false
}
