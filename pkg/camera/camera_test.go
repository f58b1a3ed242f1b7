package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjbrandt/raydiant/pkg/core"
)

func TestPerspectiveCenterRayPointsForward(t *testing.T) {
	p := NewPerspective(60*math.Pi/180, 0.1, 100, 1.0)
	ray := p.SampleRay(core.NewVec2(0.5, 0.5))
	assert.True(t, ray.Origin.Equals(core.NewVec3(0, 0, 0)))
	assert.Greater(t, ray.Direction.Z, 0.0)
}

func TestPerspectiveEdgeRaysDivergeFromCenter(t *testing.T) {
	p := NewPerspective(60*math.Pi/180, 0.1, 100, 1.0)
	center := p.SampleRay(core.NewVec2(0.5, 0.5))
	edge := p.SampleRay(core.NewVec2(0.9, 0.5))
	assert.NotEqual(t, center.Direction.X, edge.Direction.X)
}

func TestOrthographicRaysAreParallel(t *testing.T) {
	o := NewOrthographic(0.1, 100, 1.0)
	a := o.SampleRay(core.NewVec2(0.2, 0.3))
	b := o.SampleRay(core.NewVec2(0.8, 0.7))
	assert.True(t, a.Direction.Equals(b.Direction))
	assert.False(t, a.Origin.Equals(b.Origin))
}

func TestCameraSampleRayAppliesToWorld(t *testing.T) {
	toWorld := core.Translate(core.NewVec3(10, 0, 0))
	cam := NewCamera(toWorld, NewOrthographic(0.1, 100, 1.0))
	ray := cam.SampleRay(core.NewVec2(0.5, 0.5))
	assert.InDelta(t, 10.0, ray.Origin.X, 1e-9)
}
