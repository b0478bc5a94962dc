// Package transform builds and composes 4×4 affine and projective transforms.
//
// Mat4 is stored row-major: element (row r, column c) is m[r*4+c]. Vectors are
// column vectors, so a matrix is applied as M·v and translation lives in the
// last column (m[3], m[7], m[11]). Multiply(a, b) means "apply b, then a":
//
//	mvp := transform.Compose(proj, view, model) // proj · view · model
//
// Every function returns a new value and none of them hold state, so the
// package is safe for concurrent use.
package transform

import "math"

// Mat4 is a 4×4 matrix stored row-major. Value type for zero heap allocation.
type Mat4 [16]float64

// Identity returns the 4×4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix that moves a point by (tx, ty, tz).
func Translation(tx, ty, tz float64) Mat4 {
	return Mat4{
		1, 0, 0, tx,
		0, 1, 0, ty,
		0, 0, 1, tz,
		0, 0, 0, 1,
	}
}

// RotationX returns a right-handed rotation around the X axis. Angle in radians.
func RotationX(theta float64) Mat4 {
	s, c := math.Sincos(theta)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a right-handed rotation around the Y axis.
func RotationY(theta float64) Mat4 {
	s, c := math.Sincos(theta)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a right-handed rotation around the Z axis.
func RotationZ(theta float64) Mat4 {
	s, c := math.Sincos(theta)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale returns an anisotropic scale. Negative factors reflect.
func Scale(sx, sy, sz float64) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Multiply returns a × b: the transform that applies b first, then a.
func Multiply(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Mul returns m × b (apply b, then m).
func (m Mat4) Mul(b Mat4) Mat4 {
	return Multiply(m, b)
}

// Compose multiplies the matrices left to right, so the last one is applied
// first. Compose() is the identity.
func Compose(ms ...Mat4) Mat4 {
	out := Identity()
	for _, m := range ms {
		out = Multiply(out, m)
	}
	return out
}

// TransformVector returns M·v, including w.
func TransformVector(m Mat4, v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// MulVec4 returns M·v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return TransformVector(m, v)
}

// MulPoint transforms a 3D point (w=1) and drops w. Only meaningful for
// affine matrices; use MulVec4 when the bottom row is not (0, 0, 0, 1).
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float64 {
	return m[r*4+c]
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// ApproxEqual reports whether every element of m is within tol of b.
func (m Mat4) ApproxEqual(b Mat4, tol float64) bool {
	for i := 0; i < 16; i++ {
		if math.Abs(m[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	return m.ApproxEqual(Identity(), 1e-8)
}

// IsAffine reports whether the bottom row is exactly (0, 0, 0, 1).
func (m Mat4) IsAffine() bool {
	return m[12] == 0 && m[13] == 0 && m[14] == 0 && m[15] == 1
}

// IsFinite reports whether no element is NaN or ±Inf.
func (m Mat4) IsFinite() bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Uniform returns the matrix as column-major float32, the layout a GPU
// uniformMatrix4fv upload with transpose=false expects.
func (m Mat4) Uniform() [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = float32(m[r*4+c])
		}
	}
	return out
}
