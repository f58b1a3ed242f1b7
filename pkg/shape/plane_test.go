package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjbrandt/raydiant/pkg/core"
)

func TestPlaneOnPlaneRoundTrips(t *testing.T) {
	p := NewPlane(core.NewVec3(0, 1, 0), 1, core.NewVec3(0, 0, 1), 10, 10)
	assert.True(t, p.OnPlane(core.NewVec3(3, -1, 2), 1e-9))
	assert.False(t, p.OnPlane(core.NewVec3(3, 0, 2), 1e-9))
}

func TestPlaneIntersectWithinPatch(t *testing.T) {
	p := NewPlane(core.NewVec3(0, 1, 0), 1, core.NewVec3(0, 0, 1), 4, 4)
	ray := core.NewRay(core.NewVec3(0, 4, 0), core.NewVec3(0, -1, 0))
	si, hit := p.Intersect(ray, 0, 1e30)
	assert.True(t, hit)
	assert.InDelta(t, 5.0, si.It.T, 1e-9)
}

func TestPlaneIntersectOutsidePatchMisses(t *testing.T) {
	p := NewPlane(core.NewVec3(0, 1, 0), 1, core.NewVec3(0, 0, 1), 4, 4)
	ray := core.NewRay(core.NewVec3(10, 4, 0), core.NewVec3(0, -1, 0))
	_, hit := p.Intersect(ray, 0, 1e30)
	assert.False(t, hit)
}

func TestPlaneIntersectParallelRayMisses(t *testing.T) {
	p := NewPlane(core.NewVec3(0, 1, 0), 1, core.NewVec3(0, 0, 1), 4, 4)
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(1, 0, 0))
	_, hit := p.Intersect(ray, 0, 1e30)
	assert.False(t, hit)
}
