package shape

import "github.com/kjbrandt/raydiant/pkg/core"

// Triangle is a single triangle defined by three vertices, using the
// geometric normal from e1×e2 (spec.md §9(ii) resolves the source
// material's inconsistency in favor of the geometric normal; per-vertex
// shading-normal interpolation is future work).
type Triangle struct {
	V0, V1, V2    core.Vec3
	UV0, UV1, UV2 core.Vec2
	hasUVs        bool

	normal core.Vec3
	bounds core.Bounds
}

// NewTriangle builds a Triangle, rejecting (nearly) colinear vertices.
func NewTriangle(v0, v1, v2 core.Vec3) (*Triangle, error) {
	e1 := v1.Subtract(v0)
	e2 := v2.Subtract(v0)
	cross := e1.Cross(e2)
	if cross.LengthSquared() < 1e-16 {
		return nil, core.NewError(core.GeometryError, "triangle vertices are colinear", nil)
	}
	t := &Triangle{V0: v0, V1: v1, V2: v2, normal: cross.Normalize()}
	t.bounds = core.NewBoundsFromPoints(v0, v1, v2)
	return t, nil
}

// WithUVs attaches per-vertex texture coordinates to the triangle.
func (t *Triangle) WithUVs(uv0, uv1, uv2 core.Vec2) *Triangle {
	out := *t
	out.UV0, out.UV1, out.UV2 = uv0, uv1, uv2
	out.hasUVs = true
	return &out
}

// Intersect implements Möller–Trumbore, per spec.md §4.1.
func (t *Triangle) Intersect(ray core.Ray, tMin, tMax float64) (core.SurfaceInteraction, bool) {
	const epsilon = 1e-8

	e1 := t.V1.Subtract(t.V0)
	e2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(e2)
	a := e1.Dot(h)
	if a > -epsilon && a < epsilon {
		return core.SurfaceInteraction{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.SurfaceInteraction{}, false
	}

	q := s.Cross(e1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.SurfaceInteraction{}, false
	}

	tParam := f * e2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return core.SurfaceInteraction{}, false
	}

	point := ray.At(tParam)

	var uv core.Vec2
	if t.hasUVs {
		w := 1.0 - u - v
		uv = t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
	} else {
		uv = core.NewVec2(u, v)
	}

	return core.SurfaceInteraction{
		It:     core.Interaction{T: tParam, P: point},
		Normal: core.OrientedNormal(ray.Direction, t.normal),
		UV:     uv,
		Wi:     ray.Direction,
	}, true
}

// Bounds returns the triangle's precomputed bounding box.
func (t *Triangle) Bounds() core.Bounds { return t.bounds }

// Bary returns the barycentric weight of V0 and V1 at point (the
// weight of V2 is implicitly 1 - w0 - w1), satisfying testable
// property 3: Bary(V0) = (1,0), Bary(V1) = (0,1), Bary(V2) = (0,0).
func (t *Triangle) Bary(point core.Vec3) (w0, w1 float64) {
	e1 := t.V1.Subtract(t.V0)
	e2 := t.V2.Subtract(t.V0)
	ep := point.Subtract(t.V0)

	d00 := e1.Dot(e1)
	d01 := e1.Dot(e2)
	d11 := e2.Dot(e2)
	d20 := ep.Dot(e1)
	d21 := ep.Dot(e2)

	denom := d00*d11 - d01*d01
	u := (d11*d20 - d01*d21) / denom
	v := (d00*d21 - d01*d20) / denom
	return 1 - u - v, u
}
