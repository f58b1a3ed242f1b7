package core

import "math"

// Mat4 is a 4x4 matrix in row-major order.
type Mat4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// Mul multiplies two matrices (m * o).
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// MulPoint transforms a point (implicit w=1) and performs the
// perspective divide.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w == 1 || w == 0 {
		return Vec3{x, y, z}
	}
	inv := 1.0 / w
	return Vec3{x * inv, y * inv, z * inv}
}

// MulVector transforms a direction (implicit w=0); no translation applied.
func (m Mat4) MulVector(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// Solve solves m*x = b via Gaussian elimination with partial pivoting
// (an LU decomposition carried out in place), satisfying testable
// property 8: for non-singular m, solving against b = m·x returns x.
func (m Mat4) Solve(b [4]float64) ([4]float64, bool) {
	// Augmented matrix [A|b], reduced in place.
	var a [4][5]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i][j] = m[i][j]
		}
		a[i][4] = b[i]
	}

	for col := 0; col < 4; col++ {
		// Partial pivot: find the largest magnitude entry in this column.
		pivot := col
		best := math.Abs(a[col][col])
		for row := col + 1; row < 4; row++ {
			if v := math.Abs(a[row][col]); v > best {
				best = v
				pivot = row
			}
		}
		if best < 1e-12 {
			return [4]float64{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]

		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := a[row][col] / a[col][col]
			for k := col; k < 5; k++ {
				a[row][k] -= factor * a[col][k]
			}
		}
	}

	var x [4]float64
	for i := 0; i < 4; i++ {
		x[i] = a[i][4] / a[i][i]
	}
	return x, true
}

// Inverse computes the inverse of m by solving for each column of the
// identity matrix with Solve.
func (m Mat4) Inverse() (Mat4, bool) {
	var inv Mat4
	for col := 0; col < 4; col++ {
		var e [4]float64
		e[col] = 1
		x, ok := m.Solve(e)
		if !ok {
			return Mat4{}, false
		}
		for row := 0; row < 4; row++ {
			inv[row][col] = x[row]
		}
	}
	return inv, true
}

// Transform4 carries a transform and its precomputed inverse, so that
// shapes/cameras never invert on the hot path.
type Transform4 struct {
	Forward Mat4
	Inverse Mat4
}

// NewTransform4 wraps a forward matrix, computing and storing its inverse.
func NewTransform4(forward Mat4) Transform4 {
	inv, ok := forward.Inverse()
	if !ok {
		inv = Identity4()
	}
	return Transform4{Forward: forward, Inverse: inv}
}

// Inverted returns the inverse of t as a Transform4 (forward/inverse swapped).
func (t Transform4) Inverted() Transform4 {
	return Transform4{Forward: t.Inverse, Inverse: t.Forward}
}

// IdentityTransform returns the identity Transform4.
func IdentityTransform() Transform4 {
	return Transform4{Forward: Identity4(), Inverse: Identity4()}
}

// Translate builds a translation transform.
func Translate(delta Vec3) Transform4 {
	f := Identity4()
	f[0][3], f[1][3], f[2][3] = delta.X, delta.Y, delta.Z
	inv := Identity4()
	inv[0][3], inv[1][3], inv[2][3] = -delta.X, -delta.Y, -delta.Z
	return Transform4{Forward: f, Inverse: inv}
}

// ScaleTransform builds a non-uniform scale transform.
func ScaleTransform(s Vec3) Transform4 {
	f := Identity4()
	f[0][0], f[1][1], f[2][2] = s.X, s.Y, s.Z
	inv := Identity4()
	inv[0][0], inv[1][1], inv[2][2] = 1/s.X, 1/s.Y, 1/s.Z
	return Transform4{Forward: f, Inverse: inv}
}

// RotateTransform builds a rotation of deg degrees about the given axis
// (Rodrigues' formula); the inverse of a rotation is its transpose.
func RotateTransform(axis Vec3, deg float64) Transform4 {
	a := axis.Normalize()
	rad := deg * math.Pi / 180.0
	s, c := math.Sin(rad), math.Cos(rad)
	t := 1 - c

	f := Identity4()
	f[0][0], f[0][1], f[0][2] = t*a.X*a.X+c, t*a.X*a.Y-s*a.Z, t*a.X*a.Z+s*a.Y
	f[1][0], f[1][1], f[1][2] = t*a.X*a.Y+s*a.Z, t*a.Y*a.Y+c, t*a.Y*a.Z-s*a.X
	f[2][0], f[2][1], f[2][2] = t*a.X*a.Z-s*a.Y, t*a.Y*a.Z+s*a.X, t*a.Z*a.Z+c

	return Transform4{Forward: f, Inverse: f.Transpose()}
}

// LookAt builds a camera-to-world transform with the camera at origin,
// looking toward target, with the given up hint.
func LookAt(origin, target, up Vec3) Transform4 {
	dir := target.Subtract(origin).Normalize()
	right := up.Normalize().Cross(dir).Normalize()
	newUp := dir.Cross(right)

	f := Identity4()
	f[0][0], f[1][0], f[2][0] = right.X, right.Y, right.Z
	f[0][1], f[1][1], f[2][1] = newUp.X, newUp.Y, newUp.Z
	f[0][2], f[1][2], f[2][2] = dir.X, dir.Y, dir.Z
	f[0][3], f[1][3], f[2][3] = origin.X, origin.Y, origin.Z

	return NewTransform4(f)
}

// Compose returns the transform equivalent to applying a then b
// (b.Forward * a.Forward).
func Compose(a, b Transform4) Transform4 {
	return Transform4{
		Forward: b.Forward.Mul(a.Forward),
		Inverse: a.Inverse.Mul(b.Inverse),
	}
}

// TransformPoint applies the forward matrix to a point.
func (t Transform4) TransformPoint(p Vec3) Vec3 { return t.Forward.MulPoint(p) }

// TransformVector applies the forward matrix to a direction.
func (t Transform4) TransformVector(v Vec3) Vec3 { return t.Forward.MulVector(v) }

// TransformRay transforms both origin and direction of a ray.
func (t Transform4) TransformRay(r Ray) Ray {
	return Ray{Origin: t.TransformPoint(r.Origin), Direction: t.TransformVector(r.Direction)}
}

// Perspective builds a camera-space-to-raster-friendly perspective
// projection matrix mapping z in [near,far] to [0,1], for the given
// field of view (radians) along X.
func Perspective(fovRadians, near, far float64) Mat4 {
	invTan := 1.0 / math.Tan(fovRadians/2.0)
	m := Identity4()
	m[0][0] = invTan
	m[1][1] = invTan
	m[2][2] = far / (far - near)
	m[2][3] = -far * near / (far - near)
	m[3][2] = 1
	m[3][3] = 0
	return m
}
