package light

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjbrandt/raydiant/pkg/core"
)

func TestPointSampleTowardsPointsAwayFromLight(t *testing.T) {
	p := NewPoint(core.NewVec3(0, 5, 0), 10, core.NewSpectrumRGB(1, 1, 1))
	ray, emitted := p.SampleTowards(core.NewVec3(0, 0, 0))

	assert.True(t, ray.Origin.Equals(p.Position))
	assert.True(t, ray.Direction.Equals(core.NewVec3(0, -1, 0)))
	assert.InDelta(t, 10.0/25.0, emitted.R, 1e-9)
}

func TestPointSampleTowardsFalloffIsInverseSquare(t *testing.T) {
	p := NewPoint(core.NewVec3(0, 0, 0), 4, core.NewSpectrumRGB(1, 1, 1))

	_, near := p.SampleTowards(core.NewVec3(1, 0, 0))
	_, far := p.SampleTowards(core.NewVec3(2, 0, 0))

	assert.InDelta(t, 4.0, near.R, 1e-9)
	assert.InDelta(t, 1.0, far.R, 1e-9)
}

func TestPointSampleTowardsCoincidentPointReturnsZero(t *testing.T) {
	p := NewPoint(core.NewVec3(1, 1, 1), 10, core.NewSpectrumRGB(1, 1, 1))
	_, emitted := p.SampleTowards(core.NewVec3(1, 1, 1))
	assert.Equal(t, core.SpectrumZero, emitted)
}
