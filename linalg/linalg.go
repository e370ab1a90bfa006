// Package linalg supplies the double-precision 3-vector and 3x3-matrix
// operations the rigid body pipeline needs on top of mathgl's mgl64 types:
// the skew-symmetric "star" operator, Gram-Schmidt re-orthonormalization of
// a rotation matrix, and a couple of small dense-matrix helpers used by the
// contact solver. Vec3 and Mat3 are mgl64's own array types (column-major
// for Mat3, matching the convention the source engine used for its rotation
// matrices) so callers can freely mix this package with mgl64 arithmetic.
package linalg

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a double-precision 3-vector.
type Vec3 = mgl64.Vec3

// Mat3 is a column-major 3x3 matrix: m[0], m[1], m[2] is the first column.
type Mat3 = mgl64.Mat3

// Star returns the skew-symmetric cross-product matrix of v, satisfying
// MulVec3(Star(v), u) == v.Cross(u) for all u.
func Star(v Vec3) Mat3 {
	return Mat3{
		0, v[2], -v[1],
		-v[2], 0, v[0],
		v[1], -v[0], 0,
	}
}

// MulVec3 computes m*v.
func MulVec3(m Mat3, v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

// MulMat3 computes a*b.
func MulMat3(a, b Mat3) Mat3 {
	var r Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[k*3+row] * b[col*3+k]
			}
			r[col*3+row] = sum
		}
	}
	return r
}

// Transpose3 returns the transpose of m.
func Transpose3(m Mat3) Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// AddMat3 returns a+b.
func AddMat3(a, b Mat3) Mat3 {
	var r Mat3
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// ScaleMat3 returns m scaled by s.
func ScaleMat3(m Mat3, s float64) Mat3 {
	var r Mat3
	for i := range r {
		r[i] = m[i] * s
	}
	return r
}

// Diag3 builds a diagonal matrix from the given components.
func Diag3(x, y, z float64) Mat3 {
	return Mat3{
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	}
}

// WorldInertia computes a * bodyInertia * transpose(a), the standard
// similarity transform that carries a body-frame inertia tensor into world
// space given the body's current orientation a.
func WorldInertia(a, bodyInertia Mat3) Mat3 {
	return MulMat3(MulMat3(a, bodyInertia), Transpose3(a))
}

// Orthonormalize re-orthonormalizes the columns of m via Gram-Schmidt,
// correcting the drift that accumulates from integrating a rotation matrix
// directly instead of re-deriving it from a quaternion each step.
func Orthonormalize(m Mat3) Mat3 {
	c0 := Vec3{m[0], m[1], m[2]}
	c1 := Vec3{m[3], m[4], m[5]}
	c2 := Vec3{m[6], m[7], m[8]}

	c0 = safeNormalize(c0)
	c1 = safeNormalize(c1.Sub(c0.Mul(c0.Dot(c1))))
	c2 = safeNormalize(c2.Sub(c0.Mul(c0.Dot(c2))).Sub(c1.Mul(c1.Dot(c2))))

	return Mat3{
		c0[0], c0[1], c0[2],
		c1[0], c1[1], c1[2],
		c2[0], c2[1], c2[2],
	}
}

func safeNormalize(v Vec3) Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return v
	}
	return v.Mul(1 / l)
}

// Ident3 returns the 3x3 identity matrix.
func Ident3() Mat3 {
	return mgl64.Ident3()
}
