package scene

import (
	"github.com/kjbrandt/raydiant/pkg/accel"
	"github.com/kjbrandt/raydiant/pkg/bsdf"
	"github.com/kjbrandt/raydiant/pkg/camera"
	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/light"
	"github.com/kjbrandt/raydiant/pkg/shape"
)

// Scene is { lights, camera, bsdfs, accelerator, env_light? }, per
// spec.md §3.
type Scene struct {
	Lights      []light.Light
	Camera      *camera.Camera
	BSDFs       []bsdf.BSDF // frozen arena; shape.Binding.BSDFIndex indexes into this
	Accelerator accel.Accelerator
	EnvLight    *core.Spectrum // background radiance when a ray hits nothing; nil means zero

	Sampler core.Sampler

	bindings []shape.Binding
}

// IntersectRay is the scene-level entry point integrators drive
// against: it delegates to the accelerator and resolves the winning
// binding's BSDF index back to the concrete BSDF.
func (s *Scene) IntersectRay(ray core.Ray, tMin, tMax float64) (si core.SurfaceInteraction, b bsdf.BSDF, hit bool) {
	var bindingIdx int
	si, bindingIdx, hit = s.Accelerator.IntersectRay(ray, tMin, tMax)
	if !hit {
		return core.SurfaceInteraction{}, nil, false
	}
	return si, s.BSDFs[s.bindingBSDFIndex(bindingIdx)], true
}

// bindingBSDFIndex looks up which BSDF arena slot a winning binding
// uses. s.bindings is populated by Build and kept alongside the
// accelerator that was built from it.
func (s *Scene) bindingBSDFIndex(bindingIdx int) int {
	return s.bindings[bindingIdx].BSDFIndex
}
