package core

import "math"

// Interaction is a point along a ray where something happened. An
// Interaction with T = +Inf (see NoInteraction) represents "no hit".
type Interaction struct {
	T float64
	P Vec3
}

// NoInteraction is the canonical "nothing happened" value.
var NoInteraction = Interaction{T: math.Inf(1)}

// Hit reports whether this interaction represents an actual hit.
func (it Interaction) Hit() bool { return !math.IsInf(it.T, 1) }

// SurfaceInteraction augments Interaction with shading data at a
// surface hit: the geometric normal, UV coordinates, and the incident
// ray direction.
type SurfaceInteraction struct {
	It     Interaction
	Normal Vec3 // geometric normal, flipped to face against Wi
	UV     Vec2
	Wi     Vec3 // incident ray direction at the hit
}

// FrontFace reports whether the incident ray approached the outward
// side of the surface (Wi against the geometric normal before
// orientation correction).
func FrontFace(rayDir, outwardNormal Vec3) bool {
	return rayDir.Dot(outwardNormal) < 0
}

// OrientedNormal returns outwardNormal flipped to face against rayDir,
// matching the convention used throughout the shape package.
func OrientedNormal(rayDir, outwardNormal Vec3) Vec3 {
	if FrontFace(rayDir, outwardNormal) {
		return outwardNormal
	}
	return outwardNormal.Negate()
}

// MediumInteraction represents a scattering event inside a participating
// medium. No integrator in this package samples volumetric media; the
// type exists so the interaction model can grow to support them
// without changing the Shape/BSDF/Light contracts (spec.md §9(iii)).
type MediumInteraction struct {
	It Interaction
	Wi Vec3
}
