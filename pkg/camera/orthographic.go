package camera

import "github.com/kjbrandt/raydiant/pkg/core"

// Orthographic implements spec.md §4.4's Orthographic projection: the
// same raster_to_camera pipeline as Perspective, but the resulting ray
// has a spatially-varying origin and a constant direction down +Z.
type Orthographic struct {
	rasterToCamera core.Transform4
}

// NewOrthographic builds an orthographic projection over screen extent
// derived from aspect, independent of near/far (which only bound the
// visible range, not the projection's shape, for an orthographic camera).
func NewOrthographic(near, far, aspect float64) *Orthographic {
	var minX, maxX, minY, maxY float64
	if aspect > 1 {
		minX, maxX = -aspect, aspect
		minY, maxY = -1, 1
	} else {
		minX, maxX = -1, 1
		minY, maxY = -1/aspect, 1/aspect
	}

	ortho := core.Identity4()
	ortho[2][2] = 1 / (far - near)
	ortho[2][3] = -near / (far - near)

	scale := core.ScaleTransform(core.NewVec3(1/(maxX-minX), 1/(minY-maxY), 1))
	translate := core.Translate(core.NewVec3(-minX, -maxY, 0))
	screenToRaster := core.Compose(translate, scale)

	cameraToRaster := core.NewTransform4(screenToRaster.Forward.Mul(ortho))
	return &Orthographic{rasterToCamera: cameraToRaster.Inverted()}
}

// SampleRay maps uv to a camera-space point via raster_to_camera; the
// ray originates there and travels in the constant +Z direction.
func (o *Orthographic) SampleRay(uv core.Vec2) core.Ray {
	origin := o.rasterToCamera.TransformPoint(core.NewVec3(uv.X, uv.Y, 0))
	return core.NewRay(origin, core.NewVec3(0, 0, 1))
}
