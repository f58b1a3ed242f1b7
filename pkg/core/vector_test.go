package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}

func TestVec3NormalizeZero(t *testing.T) {
	assert.True(t, NewVec3(0, 0, 0).Normalize().IsZero())
}

func TestVec3CrossOrthogonal(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	assert.True(t, x.Cross(y).Equals(NewVec3(0, 0, 1)))
}

func TestReflectAboutNormal(t *testing.T) {
	incoming := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)
	out := Reflect(incoming, normal)
	assert.InDelta(t, incoming.X, out.X, 1e-9)
	assert.InDelta(t, -incoming.Y, out.Y, 1e-9)
}

func TestRefractPreservesSnellRelation(t *testing.T) {
	// A ray at 30deg from the normal, going from a denser (eta=1.5) into
	// a less dense medium (eta=1.0): eta = etaIncident/etaTransmitted.
	normal := NewVec3(0, 1, 0)
	theta := 30.0 * math.Pi / 180
	incoming := NewVec3(math.Sin(theta), -math.Cos(theta), 0)
	eta := 1.5 / 1.0

	out := Refract(incoming, normal, eta)
	sinOut := out.Cross(normal).Length()
	expectedSinOut := eta * math.Sin(theta)
	assert.InDelta(t, expectedSinOut, sinOut, 1e-9)
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 1))
	assert.True(t, r.At(5).Equals(NewVec3(1, 2, 8)))
}
