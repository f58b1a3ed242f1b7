package bsdf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjbrandt/raydiant/pkg/core"
)

func TestPhongEvalSpecularPeakAtReflectionDirection(t *testing.T) {
	p := NewPhong(core.NewSpectrumRGB(0.2, 0.2, 0.2), core.NewSpectrumRGB(0.8, 0.8, 0.8), 32)
	si := core.SurfaceInteraction{Normal: core.NewVec3(0, 1, 0), Wi: core.NewVec3(0.5, -1, 0).Normalize()}

	reflectDir := core.Reflect(si.Wi.Negate(), si.Normal)
	atPeak := p.Eval(si, reflectDir)
	offPeak := p.Eval(si, core.NewVec3(-0.5, 1, 0).Normalize())

	assert.Greater(t, atPeak.R, offPeak.R)
}

func TestPhongAmbientIsZero(t *testing.T) {
	p := NewPhong(core.NewSpectrumRGB(1, 1, 1), core.NewSpectrumRGB(1, 1, 1), 10)
	assert.Equal(t, core.SpectrumZero, p.Ambient())
}
