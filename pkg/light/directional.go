package light

import "github.com/kjbrandt/raydiant/pkg/core"

// Directional is a parallel-ray light (sun-like) with no distance
// falloff, per spec.md §4.3.
type Directional struct {
	Direction core.Vec3 // direction the light travels, normalized at construction
	Intensity float64
	Spectrum  core.Spectrum
}

// NewDirectional builds a Directional light.
func NewDirectional(direction core.Vec3, intensity float64, spectrum core.Spectrum) *Directional {
	return &Directional{Direction: direction.Normalize(), Intensity: intensity, Spectrum: spectrum}
}

// SampleTowards implements spec.md §4.3: the ray originates at
// point − dir with direction dir.norm(), emission scaled by intensity
// with no distance falloff.
func (d *Directional) SampleTowards(point core.Vec3) (core.Ray, core.Spectrum) {
	origin := point.Subtract(d.Direction)
	ray := core.NewRay(origin, d.Direction)
	return ray, d.Spectrum.Multiply(d.Intensity)
}
