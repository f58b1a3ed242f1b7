package shape

import "github.com/kjbrandt/raydiant/pkg/core"

// Binding pairs a Shape with the transform that places it in world
// space and a stable index into the scene's BSDF arena (spec.md §3 L7,
// §9 design note (a)). Reference equality of the BSDF is meaningful
// for self-shadow tests, so Binding stores an index rather than a
// pointer: the arena (owned by the scene) is frozen before any Binding
// is created, which is what makes the index stable for the scene's
// entire lifetime — see spec.md §5's ownership policy.
type Binding struct {
	Shape     Shape
	Transform core.Transform4
	BSDFIndex int
}

// NewBinding constructs a Binding.
func NewBinding(s Shape, transform core.Transform4, bsdfIndex int) Binding {
	return Binding{Shape: s, Transform: transform, BSDFIndex: bsdfIndex}
}

// Intersect transforms ray into the shape's local space, intersects,
// and transforms the resulting interaction back to world space.
func (b Binding) Intersect(ray core.Ray, tMin, tMax float64) (core.SurfaceInteraction, bool) {
	localRay := b.Transform.Inverted().TransformRay(ray)
	si, ok := b.Shape.Intersect(localRay, tMin, tMax)
	if !ok {
		return core.SurfaceInteraction{}, false
	}
	si.It.P = b.Transform.TransformPoint(si.It.P)
	// Normals transform by the inverse-transpose of the forward matrix.
	si.Normal = b.Transform.Inverse.Transpose().MulVector(si.Normal).Normalize()
	return si, true
}

// Bounds returns the world-space bounding box of the transformed shape.
func (b Binding) Bounds() core.Bounds {
	local := b.Shape.Bounds()
	corners := [8]core.Vec3{
		{local.Min.X, local.Min.Y, local.Min.Z},
		{local.Min.X, local.Min.Y, local.Max.Z},
		{local.Min.X, local.Max.Y, local.Min.Z},
		{local.Min.X, local.Max.Y, local.Max.Z},
		{local.Max.X, local.Min.Y, local.Min.Z},
		{local.Max.X, local.Min.Y, local.Max.Z},
		{local.Max.X, local.Max.Y, local.Min.Z},
		{local.Max.X, local.Max.Y, local.Max.Z},
	}
	transformed := make([]core.Vec3, 8)
	for i, c := range corners {
		transformed[i] = b.Transform.TransformPoint(c)
	}
	return core.NewBoundsFromPoints(transformed...)
}
