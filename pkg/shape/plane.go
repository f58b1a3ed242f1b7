package shape

import (
	"math"

	"github.com/kjbrandt/raydiant/pkg/core"
)

// Plane is a finite rectangular patch of the infinite plane
// {p : normal·p + w = 0}, spanning width/height around its footpoint,
// per spec.md §4.1.
type Plane struct {
	Normal        core.Vec3
	W             float64
	Up            core.Vec3
	Width, Height float64

	right core.Vec3 // normal × up, precomputed
	upPrime core.Vec3
}

// NewPlane builds a Plane, normalizing normal/up and precomputing the
// in-plane basis used for UV projection.
func NewPlane(normal core.Vec3, w float64, up core.Vec3, width, height float64) *Plane {
	n := normal.Normalize()
	right := n.Cross(up.Normalize()).Normalize()
	upPrime := right.Cross(n).Normalize()
	return &Plane{Normal: n, W: w, Up: up.Normalize(), Width: width, Height: height, right: right, upPrime: upPrime}
}

// footpoint returns the point on the infinite plane closest to the origin.
func (p *Plane) footpoint() core.Vec3 {
	return p.Normal.Multiply(-p.W)
}

// Intersect rejects rays parallel to the plane and rejects non-positive
// t, per spec.md §4.1 and §9(i) (this spec rejects negative t, unlike
// some evolutionary drafts in the source material).
func (p *Plane) Intersect(ray core.Ray, tMin, tMax float64) (core.SurfaceInteraction, bool) {
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-8 {
		return core.SurfaceInteraction{}, false
	}

	t := -(ray.Origin.Dot(p.Normal) + p.W) / denom
	if t <= 0 || t < tMin || t > tMax {
		return core.SurfaceInteraction{}, false
	}

	point := ray.At(t)

	// Project onto in-plane basis relative to the footpoint to bound
	// the patch and compute UV.
	rel := point.Subtract(p.footpoint())
	u := rel.Dot(p.right)
	v := rel.Dot(p.upPrime)
	if math.Abs(u) > p.Width/2 || math.Abs(v) > p.Height/2 {
		return core.SurfaceInteraction{}, false
	}

	uv := core.NewVec2(u/p.Width+0.5, v/p.Height+0.5)

	return core.SurfaceInteraction{
		It:     core.Interaction{T: t, P: point},
		Normal: core.OrientedNormal(ray.Direction, p.Normal),
		UV:     uv,
		Wi:     ray.Direction,
	}, true
}

// Bounds returns the bounding box of the finite patch.
func (p *Plane) Bounds() core.Bounds {
	c := p.footpoint()
	hw := p.right.Multiply(p.Width / 2)
	hh := p.upPrime.Multiply(p.Height / 2)
	corners := []core.Vec3{
		c.Add(hw).Add(hh),
		c.Add(hw).Subtract(hh),
		c.Subtract(hw).Add(hh),
		c.Subtract(hw).Subtract(hh),
	}
	b := core.NewBoundsFromPoints(corners...)
	// Guard against a razor-thin box along the normal axis, which
	// would make slab intersection numerically unstable.
	return b.Expand(1e-4)
}

// OnPlane reports whether p lies on the infinite plane within tol —
// used by testable property 2 (plane round-trip).
func (p *Plane) OnPlane(point core.Vec3, tol float64) bool {
	return math.Abs(point.Dot(p.Normal)+p.W) < tol
}
