// Package integrator drives the per-pixel Monte Carlo sampling loop
// (spec.md §4.7): Depth for accelerator debugging, Direct for
// classical direct lighting, and Path for full Monte Carlo path
// tracing.
package integrator

import (
	"github.com/kjbrandt/raydiant/pkg/camera"
	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/scene"
)

// Integrator computes the radiance arriving along a camera ray.
type Integrator interface {
	Sample(uv core.Vec2, ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Spectrum
}

const shadowEpsilon = 0.001

// Render drives the shared per-pixel sampling loop of spec.md §4.7:
// for each pixel in Morton order, accumulate samplesPerPixel jittered
// camera rays through integ, writing the averaged spectrum to film.
func Render(s *scene.Scene, integ Integrator, film *camera.Film, samplesPerPixel int, sampler core.Sampler) {
	w, h := film.Width, film.Height
	for _, px := range film.MortonOrder() {
		x, y := px.X, px.Y
		var accum core.Spectrum
		for k := 0; k < samplesPerPixel; k++ {
			jitter := sampler.Get2D()
			uv := core.Vec2{
				X: (float64(x) + jitter.X) / float64(w),
				Y: (float64(y) + jitter.Y) / float64(h),
			}
			r := s.Camera.SampleRay(uv)
			accum = accum.Add(integ.Sample(uv, r, s, sampler))
		}
		film.Write(core.Vec2{X: float64(x) / float64(w), Y: float64(y) / float64(h)}, accum.Multiply(1.0/float64(samplesPerPixel)))
	}
}
