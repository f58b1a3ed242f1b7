// Package camera implements the projection pipeline and film of
// spec.md §4.4/§4.5: a camera maps a film-space sample to a
// world-space ray, and the film accumulates spectra per pixel.
package camera

import (
	"github.com/kjbrandt/raydiant/pkg/core"
)

// Projection produces a camera-space ray for a film-space uv sample in
// [0,1]².
type Projection interface {
	SampleRay(uv core.Vec2) core.Ray
}

// Camera is (to_world, to_world⁻¹, projection), per spec.md §4.4.
type Camera struct {
	ToWorld    core.Transform4
	Projection Projection
}

// NewCamera builds a camera from a world transform and projection.
func NewCamera(toWorld core.Transform4, projection Projection) *Camera {
	return &Camera{ToWorld: toWorld, Projection: projection}
}

// SampleRay maps uv through the projection to a camera-space ray, then
// transforms it into world space.
func (c *Camera) SampleRay(uv core.Vec2) core.Ray {
	camRay := c.Projection.SampleRay(uv)
	return c.ToWorld.TransformRay(camRay)
}
