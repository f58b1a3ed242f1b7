package bsdf

import "github.com/kjbrandt/raydiant/pkg/core"

// Debug returns the absolute value of the surface normal as a
// spectrum, for visual inspection of shading-normal orientation
// (spec.md §4.2).
type Debug struct{}

// NewDebug builds a Debug BSDF.
func NewDebug() *Debug { return &Debug{} }

func (Debug) Eval(si core.SurfaceInteraction, wo core.Vec3) core.Spectrum {
	n := si.Normal
	return core.NewSpectrumRGB(abs(n.X), abs(n.Y), abs(n.Z))
}

func (Debug) Ambient() core.Spectrum { return core.SpectrumZero }

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
