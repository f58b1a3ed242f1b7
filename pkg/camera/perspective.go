package camera

import "github.com/kjbrandt/raydiant/pkg/core"

// Perspective implements spec.md §4.4: camera_to_raster = scale ·
// translate · perspective(x_fov, near, far), inverted once at
// construction to form raster_to_camera.
type Perspective struct {
	rasterToCamera core.Transform4
}

// NewPerspective builds a perspective projection. xFovRadians is the
// field of view along X; aspect is width/height.
func NewPerspective(xFovRadians, near, far, aspect float64) *Perspective {
	persp := core.Perspective(xFovRadians, near, far)

	var minX, maxX, minY, maxY float64
	if aspect > 1 {
		minX, maxX = -aspect, aspect
		minY, maxY = -1, 1
	} else {
		minX, maxX = -1, 1
		minY, maxY = -1/aspect, 1/aspect
	}

	// Map screen-window [minX,maxX]x[minY,maxY] (Y flipped, since raster
	// v grows downward while screen Y grows upward) onto raster [0,1]².
	scale := core.ScaleTransform(core.NewVec3(1/(maxX-minX), 1/(minY-maxY), 1))
	translate := core.Translate(core.NewVec3(-minX, -maxY, 0))
	screenToRaster := core.Compose(translate, scale)

	cameraToRaster := core.NewTransform4(screenToRaster.Forward.Mul(persp))
	return &Perspective{rasterToCamera: cameraToRaster.Inverted()}
}

// SampleRay maps a film-space uv sample through raster_to_camera,
// normalizing the resulting camera-space point to a direction from the
// camera origin, per spec.md §4.4.
func (p *Perspective) SampleRay(uv core.Vec2) core.Ray {
	camPoint := p.rasterToCamera.TransformPoint(core.NewVec3(uv.X, uv.Y, 0))
	direction := camPoint.Normalize()
	return core.NewRay(core.NewVec3(0, 0, 0), direction)
}
