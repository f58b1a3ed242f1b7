// Package light implements the emitters a scene can contain: point
// lights and directional lights, per spec.md §3/§4.3.
package light

import "github.com/kjbrandt/raydiant/pkg/core"

// Light is something an integrator can sample towards a surface
// interaction point to find the shadow ray and incident radiance.
type Light interface {
	// SampleTowards returns the ray from the light to point (used for
	// occlusion testing, per spec.md §4.3's deliberate light-to-point
	// convention) and the emitted radiance arriving at point.
	SampleTowards(point core.Vec3) (shadowRay core.Ray, emitted core.Spectrum)
}
