package accel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/shape"
)

func TestOctreeEmptySceneMisses(t *testing.T) {
	o := NewOctree(nil)
	_, _, hit := o.IntersectRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0, 1e30)
	assert.False(t, hit)
}

func TestOctreeSingleShapeHits(t *testing.T) {
	bindings := []shape.Binding{makeSphereBinding(t, core.NewVec3(0, 0, 5), 1, 7)}
	o := NewOctree(bindings)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	si, idx, hit := o.IntersectRay(ray, 0, 1e30)
	require.True(t, hit)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 4.0, si.It.T, 1e-9)
	_ = si
}

// TestOctreeMatchesNaiveOnRandomScene builds a scene large enough to
// fill the root past smallCapacity shapes and so force it to split
// and redistribute into child octants, and checks
// that Octree and Naive agree on every query ray.
func TestOctreeMatchesNaiveOnRandomScene(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var bindings []shape.Binding
	for i := 0; i < smallCapacity+50; i++ {
		center := core.NewVec3(
			rng.Float64()*20-10,
			rng.Float64()*20-10,
			rng.Float64()*20-10,
		)
		radius := 0.1 + rng.Float64()*0.4
		bindings = append(bindings, makeSphereBinding(t, center, radius, i))
	}

	naive := NewNaive(bindings)
	octree := NewOctree(bindings)

	for i := 0; i < 200; i++ {
		origin := core.NewVec3(rng.Float64()*40-20, rng.Float64()*40-20, rng.Float64()*40-20)
		dir := core.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1).Normalize()
		ray := core.NewRay(origin, dir)

		naiveSi, _, naiveHit := naive.IntersectRay(ray, 1e-4, 1e30)
		octreeSi, _, octreeHit := octree.IntersectRay(ray, 1e-4, 1e30)

		require.Equal(t, naiveHit, octreeHit, "hit/miss disagreement on ray %d", i)
		if naiveHit {
			assert.InDelta(t, naiveSi.It.T, octreeSi.It.T, 1e-6, "closest-hit distance disagreement on ray %d", i)
		}
	}
}

func TestFrontToBackOctantsVisitsAllEightExactlyOnce(t *testing.T) {
	seen := map[int]bool{}
	for _, o := range frontToBackOctants([3]bool{true, false, true}) {
		assert.False(t, seen[o], "octant %d visited twice", o)
		seen[o] = true
	}
	assert.Len(t, seen, 8)
}

func TestFrontToBackOctantsNearestIsFirst(t *testing.T) {
	sign := [3]bool{true, true, true}
	order := frontToBackOctants(sign)
	// With all-positive direction, the near octant is the "all high"
	// octant: bits clear (index 0).
	assert.Equal(t, 0, order[0])
}
