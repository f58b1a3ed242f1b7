package core

import "math"

// Bounds is an axis-aligned bounding box. Valid construction guarantees
// Min[i] <= Max[i] on every axis.
type Bounds struct {
	Min, Max Vec3
}

// NewBounds builds a Bounds from two corner points, taking the
// component-wise min/max so the result is always valid regardless of
// the order the corners are given in (spec.md §3's `valid(a,b)`).
func NewBounds(a, b Vec3) Bounds {
	return Bounds{
		Min: Vec3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)},
		Max: Vec3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)},
	}
}

// NewBoundsFromPoints returns the smallest Bounds containing all points.
func NewBoundsFromPoints(points ...Vec3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}

// IsValid reports whether Min <= Max on every axis.
func (b Bounds) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Contains reports whether other is fully inside b (closed interval).
func (b Bounds) Contains(other Bounds) bool {
	return other.Min.X >= b.Min.X && other.Max.X <= b.Max.X &&
		other.Min.Y >= b.Min.Y && other.Max.Y <= b.Max.Y &&
		other.Min.Z >= b.Min.Z && other.Max.Z <= b.Max.Z
}

// StrictlyContains reports whether other is fully inside the open
// interior of b.
func (b Bounds) StrictlyContains(other Bounds) bool {
	return other.Min.X > b.Min.X && other.Max.X < b.Max.X &&
		other.Min.Y > b.Min.Y && other.Max.Y < b.Max.Y &&
		other.Min.Z > b.Min.Z && other.Max.Z < b.Max.Z
}

// ContainsPoint reports whether p lies within b, inclusive of the boundary.
func (b Bounds) ContainsPoint(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Union returns the smallest Bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Min: Vec3{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)},
	}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vec3 { return b.Min.Add(b.Max).Multiply(0.5) }

// Size returns the per-axis extent of the box.
func (b Bounds) Size() Vec3 { return b.Max.Subtract(b.Min) }

// Volume returns the box's volume (zero for a degenerate/empty box).
func (b Bounds) Volume() float64 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// SurfaceArea returns the box's surface area.
func (b Bounds) SurfaceArea() float64 {
	s := b.Size()
	return 2.0 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
func (b Bounds) LongestAxis() int {
	s := b.Size()
	if s.X > s.Y && s.X > s.Z {
		return 0
	}
	if s.Y > s.Z {
		return 1
	}
	return 2
}

// Expand grows the box by amount on every side.
func (b Bounds) Expand(amount float64) Bounds {
	e := NewVec3(amount, amount, amount)
	return Bounds{Min: b.Min.Subtract(e), Max: b.Max.Add(e)}
}

// IntersectsRay reports whether ray crosses the box within [tMin, tMax],
// using the slab method.
func (b Bounds) IntersectsRay(ray Ray, tMin, tMax float64) bool {
	_, _, hit := b.IntersectsRayParams(ray, tMin, tMax)
	return hit
}

// IntersectsRayParams returns the entry parameter t and the outward
// normal of the slab the ray entered through, along with whether it
// hit at all, per spec.md §3.
func (b Bounds) IntersectsRayParams(ray Ray, tMin, tMax float64) (t float64, outwardNormal Vec3, hit bool) {
	entryAxis := -1
	entrySign := 1.0

	for axis := 0; axis < 3; axis++ {
		var lo, hi, origin, dir float64
		switch axis {
		case 0:
			lo, hi, origin, dir = b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X
		case 1:
			lo, hi, origin, dir = b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y
		default:
			lo, hi, origin, dir = b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z
		}

		if math.Abs(dir) < 1e-12 {
			if origin < lo || origin > hi {
				return 0, Vec3{}, false
			}
			continue
		}

		invDir := 1.0 / dir
		t1 := (lo - origin) * invDir
		t2 := (hi - origin) * invDir
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}

		if t1 > tMin {
			tMin = t1
			entryAxis = axis
			entrySign = sign
		}
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, Vec3{}, false
		}
	}

	if entryAxis == -1 {
		// Ray origin started inside every slab; report the box's near face as t=tMin.
		entryAxis = b.LongestAxis()
	}

	n := Vec3{}
	switch entryAxis {
	case 0:
		n.X = entrySign
	case 1:
		n.Y = entrySign
	default:
		n.Z = entrySign
	}
	return tMin, n, true
}

// IntersectsBox reports whether b and other overlap (including touching).
func (b Bounds) IntersectsBox(other Bounds) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Octants splits b into its 8 sub-boxes at its center, in the canonical
// order defined by OctantOf: index i has bit 2 = "low X half" etc. This order must match OctantOf for the octree invariants to
// hold.
func (b Bounds) Octants() [8]Bounds {
	c := b.Center()
	var out [8]Bounds
	for i := 0; i < 8; i++ {
		lowX := i&4 != 0
		lowY := i&2 != 0
		lowZ := i&1 != 0

		min, max := b.Min, b.Max
		if lowX {
			max.X = c.X
		} else {
			min.X = c.X
		}
		if lowY {
			max.Y = c.Y
		} else {
			min.Y = c.Y
		}
		if lowZ {
			max.Z = c.Z
		} else {
			min.Z = c.Z
		}
		out[i] = Bounds{Min: min, Max: max}
	}
	return out
}

// OctantOf returns the 3-bit octant code for point relative to b's
// center: bit 2 is set when point.X < center.X, bit 1 for Y, bit 0 for Z.
func (b Bounds) OctantOf(point Vec3) int {
	c := b.Center()
	code := 0
	if point.X < c.X {
		code |= 4
	}
	if point.Y < c.Y {
		code |= 2
	}
	if point.Z < c.Z {
		code |= 1
	}
	return code
}
