package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformGet1DStaysInUnitRange(t *testing.T) {
	u := NewUniform(42)
	for i := 0; i < 1000; i++ {
		v := u.Get1D()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestUniformGet2DStaysInUnitSquare(t *testing.T) {
	u := NewUniform(7)
	for i := 0; i < 1000; i++ {
		v := u.Get2D()
		assert.GreaterOrEqual(t, v.X, 0.0)
		assert.Less(t, v.X, 1.0)
		assert.GreaterOrEqual(t, v.Y, 0.0)
		assert.Less(t, v.Y, 1.0)
	}
}

func TestUniformSameSeedReproducesSequence(t *testing.T) {
	a := NewUniform(99)
	b := NewUniform(99)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Get1D(), b.Get1D())
	}
}

func TestNewUniformForIsDeterministicPerPixel(t *testing.T) {
	a := NewUniformFor(1, 3, 4)
	b := NewUniformFor(1, 3, 4)
	assert.Equal(t, a.Get1D(), b.Get1D())
}

func TestNewUniformForDiffersAcrossPixels(t *testing.T) {
	a := NewUniformFor(1, 3, 4)
	b := NewUniformFor(1, 3, 5)
	assert.NotEqual(t, a.Get1D(), b.Get1D())
}
