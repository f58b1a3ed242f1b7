package bsdf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/sampler"
)

func TestMetalIsSpecular(t *testing.T) {
	m := NewMetal(core.NewSpectrumRGB(0.9, 0.9, 0.9), 0)
	assert.True(t, m.IsSpecular())
	assert.Equal(t, core.SpectrumZero, m.Eval(core.SurfaceInteraction{}, core.NewVec3(0, 1, 0)))
}

func TestMetalSampleZeroFuzzIsExactMirror(t *testing.T) {
	m := NewMetal(core.NewSpectrumRGB(1, 1, 1), 0)
	si := core.SurfaceInteraction{Normal: core.NewVec3(0, 1, 0), Wi: core.NewVec3(1, -1, 0).Normalize()}

	dir, pdf, _, ok := m.Sample(si, sampler.NewUniform(1))
	assert.True(t, ok)
	assert.Equal(t, 0.0, pdf)
	expected := core.Reflect(si.Wi, si.Normal)
	assert.True(t, dir.Equals(expected))
}

func TestMetalSampleFuzzClampedToUnitRange(t *testing.T) {
	m := NewMetal(core.NewSpectrumRGB(1, 1, 1), 5)
	assert.Equal(t, 1.0, m.Fuzz)
	m = NewMetal(core.NewSpectrumRGB(1, 1, 1), -1)
	assert.Equal(t, 0.0, m.Fuzz)
}
