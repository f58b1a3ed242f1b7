package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjbrandt/raydiant/pkg/core"
)

func TestNewTriangleRejectsColinearVertices(t *testing.T) {
	_, err := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0))
	assert.Error(t, err)
}

func TestTriangleIntersectCenter(t *testing.T) {
	tri, err := NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0))
	require.NoError(t, err)

	ray := core.NewRay(core.NewVec3(0, -0.3, -5), core.NewVec3(0, 0, 1))
	si, hit := tri.Intersect(ray, 0, 1e30)
	require.True(t, hit)
	assert.InDelta(t, 5.0, si.It.T, 1e-9)
}

func TestTriangleIntersectOutsideEdgeMisses(t *testing.T) {
	tri, err := NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0))
	require.NoError(t, err)

	ray := core.NewRay(core.NewVec3(5, 5, -5), core.NewVec3(0, 0, 1))
	_, hit := tri.Intersect(ray, 0, 1e30)
	assert.False(t, hit)
}

// TestTriangleBaryRoundTrips checks testable property 3: Bary(V0) =
// (1,0), Bary(V1) = (0,1), Bary(V2) = (0,0).
func TestTriangleBaryRoundTrips(t *testing.T) {
	tri, err := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	require.NoError(t, err)

	w0, w1 := tri.Bary(tri.V0)
	assert.InDelta(t, 1.0, w0, 1e-9)
	assert.InDelta(t, 0.0, w1, 1e-9)

	w0, w1 = tri.Bary(tri.V1)
	assert.InDelta(t, 0.0, w0, 1e-9)
	assert.InDelta(t, 1.0, w1, 1e-9)

	w0, w1 = tri.Bary(tri.V2)
	assert.InDelta(t, 0.0, w0, 1e-9)
	assert.InDelta(t, 0.0, w1, 1e-9)
}

func TestTriangleWithUVsInterpolatesAtCentroid(t *testing.T) {
	tri, err := NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0))
	require.NoError(t, err)
	tri = tri.WithUVs(core.NewVec2(0, 0), core.NewVec2(1, 0), core.NewVec2(0.5, 1))

	centroid := tri.V0.Add(tri.V1).Add(tri.V2).Multiply(1.0 / 3.0)
	ray := core.NewRay(core.NewVec3(centroid.X, centroid.Y, -5), core.NewVec3(0, 0, 1))
	si, hit := tri.Intersect(ray, 0, 1e30)
	require.True(t, hit)

	expected := tri.UV0.Add(tri.UV1).Add(tri.UV2).Multiply(1.0 / 3.0)
	assert.InDelta(t, expected.X, si.UV.X, 1e-6)
	assert.InDelta(t, expected.Y, si.UV.Y, 1e-6)
}
