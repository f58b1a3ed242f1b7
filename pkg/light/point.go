package light

import "github.com/kjbrandt/raydiant/pkg/core"

// Point is an isotropic point light with inverse-square falloff,
// grounded on the teacher's PointSpotLight with the cone/falloff terms
// stripped (spec.md §4.3 names no cone parameter for Point).
type Point struct {
	Position  core.Vec3
	Intensity float64
	Spectrum  core.Spectrum
}

// NewPoint builds a Point light.
func NewPoint(position core.Vec3, intensity float64, spectrum core.Spectrum) *Point {
	return &Point{Position: position, Intensity: intensity, Spectrum: spectrum}
}

// SampleTowards implements spec.md §4.3: the ray runs from pos toward
// point, with emission scaled by intensity / ‖point − pos‖².
func (p *Point) SampleTowards(point core.Vec3) (core.Ray, core.Spectrum) {
	toPoint := point.Subtract(p.Position)
	distSq := toPoint.LengthSquared()
	if distSq == 0 {
		return core.NewRay(p.Position, core.NewVec3(0, 1, 0)), core.SpectrumZero
	}
	ray := core.NewRay(p.Position, toPoint.Normalize())
	falloff := p.Intensity / distSq
	return ray, p.Spectrum.Multiply(falloff)
}
