package bsdf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/sampler"
)

func TestDielectricIsSpecularAndEvalsToZero(t *testing.T) {
	d := NewDielectric(1.5)
	assert.True(t, d.IsSpecular())
	assert.Equal(t, core.SpectrumZero, d.Eval(core.SurfaceInteraction{}, core.NewVec3(0, 1, 0)))
}

func TestDielectricSampleAlwaysSucceedsWithUnitWeight(t *testing.T) {
	d := NewDielectric(1.5)
	si := core.SurfaceInteraction{
		Normal: core.NewVec3(0, 1, 0),
		Wi:     core.NewVec3(0.3, -1, 0).Normalize(),
	}
	samp := sampler.NewUniform(3)

	for i := 0; i < 50; i++ {
		dir, pdf, weight, ok := d.Sample(si, samp)
		assert.True(t, ok)
		assert.Equal(t, 0.0, pdf)
		assert.Equal(t, core.NewSpectrumRGB(1, 1, 1), weight)
		assert.InDelta(t, 1.0, dir.Length(), 1e-9)
	}
}

func TestSchlickReflectanceIsOneAtGrazingAngle(t *testing.T) {
	r := schlickReflectance(0, 1.0/1.5)
	assert.Greater(t, r, 0.9)
}

func TestSchlickReflectanceIsSmallAtNormalIncidenceForSimilarIndices(t *testing.T) {
	r := schlickReflectance(1, 1.0)
	assert.InDelta(t, 0.0, r, 1e-9)
}
