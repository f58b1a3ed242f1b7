// Package core holds the math primitives, spectrum, interaction, and
// sampler types shared by every other package: vectors, rays,
// transforms, bounds, and radiance.
package core

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component vector, used interchangeably for points,
// directions, and normals depending on context.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a 2-component vector, used for UV coordinates.
type Vec2 struct {
	X, Y float64
}

func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }
func NewVec2(x, y float64) Vec2    { return Vec2{X: x, Y: y} }

func (v Vec3) String() string {
	return fmt.Sprintf("{%.3g, %.3g, %.3g}", v.X, v.Y, v.Z)
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) MultiplyVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float64    { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) AbsDot(o Vec3) float64 { return math.Abs(v.Dot(o)) }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64        { return math.Sqrt(v.LengthSquared()) }
func (v Vec3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Multiply(1.0 / l)
}

func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Clamp clamps every component to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{
		X: math.Max(lo, math.Min(hi, v.X)),
		Y: math.Max(lo, math.Min(hi, v.Y)),
		Z: math.Max(lo, math.Min(hi, v.Z)),
	}
}

// MaxComponent returns the largest of the three components.
func (v Vec3) MaxComponent() float64 { return math.Max(v.X, math.Max(v.Y, v.Z)) }

// Equals compares two vectors with a small absolute tolerance.
func (v Vec3) Equals(o Vec3) bool {
	const eps = 1e-9
	return math.Abs(v.X-o.X) < eps && math.Abs(v.Y-o.Y) < eps && math.Abs(v.Z-o.Z) < eps
}

func (v Vec2) Add(o Vec2) Vec2           { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Multiply(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Subtract(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }

// Reflect returns v reflected about a surface with the given normal.
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends v (pointing toward the surface) through a surface with
// normal n using Snell's law, given the ratio eta = etaIncident/etaTransmitted.
// The caller must have already checked for total internal reflection.
func Refract(v, n Vec3, eta float64) Vec3 {
	cosTheta := math.Min(-v.Dot(n), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(eta)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Ray is an origin plus a direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

func NewRay(origin, direction Vec3) Ray { return Ray{Origin: origin, Direction: direction} }

// NewRayTo builds a ray from origin toward target, with a normalized direction.
func NewRayTo(origin, target Vec3) Ray {
	return NewRay(origin, target.Subtract(origin).Normalize())
}

// At evaluates the ray's position at parameter t.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Direction.Multiply(t)) }
