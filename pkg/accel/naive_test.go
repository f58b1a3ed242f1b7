package accel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/shape"
)

func makeSphereBinding(t *testing.T, center core.Vec3, radius float64, bsdfIdx int) shape.Binding {
	t.Helper()
	s, err := shape.NewSphere(center, radius)
	require.NoError(t, err)
	return shape.NewBinding(s, core.IdentityTransform(), bsdfIdx)
}

func TestNaiveIntersectRayPicksClosest(t *testing.T) {
	bindings := []shape.Binding{
		makeSphereBinding(t, core.NewVec3(0, 0, 5), 1, 0),
		makeSphereBinding(t, core.NewVec3(0, 0, 10), 1, 1),
	}
	n := NewNaive(bindings)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	si, idx, hit := n.IntersectRay(ray, 0, 1e30)
	assert.True(t, hit)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 4.0, si.It.T, 1e-9)
}

func TestNaiveIntersectRayNoBindingsMisses(t *testing.T) {
	n := NewNaive(nil)
	_, _, hit := n.IntersectRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0, 1e30)
	assert.False(t, hit)
}
