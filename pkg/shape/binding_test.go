package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjbrandt/raydiant/pkg/core"
)

func TestBindingIntersectAppliesTransform(t *testing.T) {
	sphere, err := NewSphere(core.NewVec3(0, 0, 0), 1)
	require.NoError(t, err)

	transform := core.Translate(core.NewVec3(5, 0, 0))
	b := NewBinding(sphere, transform, 3)

	ray := core.NewRay(core.NewVec3(5, 0, -5), core.NewVec3(0, 0, 1))
	si, hit := b.Intersect(ray, 0, 1e30)
	require.True(t, hit)
	assert.InDelta(t, 4.0, si.It.T, 1e-9)
	assert.True(t, si.It.P.Equals(core.NewVec3(5, 0, -1)))
	assert.Equal(t, 3, b.BSDFIndex)
}

func TestBindingBoundsAreTranslated(t *testing.T) {
	sphere, err := NewSphere(core.NewVec3(0, 0, 0), 1)
	require.NoError(t, err)

	transform := core.Translate(core.NewVec3(5, 0, 0))
	b := NewBinding(sphere, transform, 0)

	assert.True(t, b.Bounds().ContainsPoint(core.NewVec3(5, 0, 0)))
	assert.False(t, b.Bounds().ContainsPoint(core.NewVec3(0, 0, 0)))
}
