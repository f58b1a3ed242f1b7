package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMortonEncodeDecodeRoundTrips(t *testing.T) {
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			code := mortonEncode(x, y)
			gotX, gotY := mortonDecode(code)
			assert.Equal(t, x, gotX)
			assert.Equal(t, y, gotY)
		}
	}
}

func TestMortonEncodeIsInjective(t *testing.T) {
	seen := make(map[uint32]bool)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			code := mortonEncode(x, y)
			assert.False(t, seen[code], "collision at (%d,%d)", x, y)
			seen[code] = true
		}
	}
}
