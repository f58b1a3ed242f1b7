package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat4SolveRoundTrips(t *testing.T) {
	m := Mat4{
		{2, 0, 0, 1},
		{0, 3, 0, 2},
		{0, 0, 4, 3},
		{0, 0, 0, 1},
	}
	x := [4]float64{1, 2, 3, 1}

	var b [4]float64
	for i := 0; i < 4; i++ {
		b[i] = m[i][0]*x[0] + m[i][1]*x[1] + m[i][2]*x[2] + m[i][3]*x[3]
	}

	got, ok := m.Solve(b)
	assert.True(t, ok)
	for i := range x {
		assert.InDelta(t, x[i], got[i], 1e-9)
	}
}

func TestMat4SolveSingularFails(t *testing.T) {
	singular := Mat4{} // all zero rows: no unique solution
	_, ok := singular.Solve([4]float64{1, 0, 0, 0})
	assert.False(t, ok)
}

func TestTransform4InvertedRoundTrips(t *testing.T) {
	tr := Compose(Translate(NewVec3(1, 2, 3)), RotateTransform(NewVec3(0, 1, 0), 37))
	p := NewVec3(5, -2, 9)

	world := tr.TransformPoint(p)
	back := tr.Inverted().TransformPoint(world)
	assert.True(t, p.Equals(back))
}

func TestLookAtPlacesOriginAndForward(t *testing.T) {
	origin := NewVec3(0, 0, 5)
	target := NewVec3(0, 0, 0)
	cameraToWorld := LookAt(origin, target, NewVec3(0, 1, 0))

	assert.True(t, cameraToWorld.TransformPoint(NewVec3(0, 0, 0)).Equals(origin))

	forward := cameraToWorld.TransformVector(NewVec3(0, 0, 1)).Normalize()
	assert.True(t, forward.Equals(target.Subtract(origin).Normalize()))
}

func TestComposeAppliesInOrder(t *testing.T) {
	scale := ScaleTransform(NewVec3(2, 2, 2))
	translate := Translate(NewVec3(10, 0, 0))
	scaleThenTranslate := Compose(scale, translate)

	got := scaleThenTranslate.TransformPoint(NewVec3(1, 0, 0))
	assert.True(t, got.Equals(NewVec3(12, 0, 0)))
}
