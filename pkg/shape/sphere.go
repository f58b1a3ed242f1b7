package shape

import (
	"math"

	"github.com/kjbrandt/raydiant/pkg/core"
)

// Sphere is a ray-traceable sphere defined by center and radius.
// NewSphere rejects a zero or negative radius with a GeometryError.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere validates radius and returns a Sphere.
func NewSphere(center core.Vec3, radius float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, core.NewError(core.GeometryError, "sphere radius must be positive", nil)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// Intersect solves the quadratic ‖dir‖²t² + 2·dir·(origin-center)t +
// ‖origin-center‖²-r² = 0 and keeps the smallest positive root, per
// spec.md §4.1.
func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) (core.SurfaceInteraction, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.SurfaceInteraction{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.SurfaceInteraction{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	uv := core.NewVec2(phi/(2.0*math.Pi), theta/math.Pi)

	return core.SurfaceInteraction{
		It:     core.Interaction{T: root, P: point},
		Normal: core.OrientedNormal(ray.Direction, outwardNormal),
		UV:     uv,
		Wi:     ray.Direction,
	}, true
}

// Bounds returns the sphere's axis-aligned bounding box.
func (s *Sphere) Bounds() core.Bounds {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewBounds(s.Center.Subtract(r), s.Center.Add(r))
}
