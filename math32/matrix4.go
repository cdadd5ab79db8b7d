// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 matrix stored in column-major order,
// which is the order in which OpenGL expects uniform matrix data:
// element (row r, column c) is at index c*4 + r, and the translation
// is in elements 12, 13, 14.
//
// As with the other matrices here, multiplication order is the
// *reverse* of the "logical" order: for a point p,
// a.Mul(b).MulVector4(p) applies b first, then a.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromColumns returns a new matrix from the given column vectors.
func Matrix4FromColumns(c0, c1, c2, c3 Vector4) Matrix4 {
	return Matrix4{
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	}
}

// Translate4 returns a translation matrix moving points by v.
func Translate4(v Vector3) Matrix4 {
	m := Identity4()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

// Scale4 returns a matrix scaling each axis by the components of v.
func Scale4(v Vector3) Matrix4 {
	return Matrix4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// Rotate4 returns a matrix rotating by angle (in radians) counter-clockwise
// around the given axis, which is normalized here.
func Rotate4(angle float32, axis Vector3) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	w := axis.Normal()
	ic := 1 - c
	return Matrix4FromColumns(
		Vec4(c*(1-w.X*w.X)+w.X*w.X, w.X*w.Y*ic+w.Z*s, w.X*w.Z*ic-w.Y*s, 0),
		Vec4(w.X*w.Y*ic-w.Z*s, c*(1-w.Y*w.Y)+w.Y*w.Y, w.Y*w.Z*ic+w.X*s, 0),
		Vec4(w.X*w.Z*ic+w.Y*s, w.Y*w.Z*ic-w.X*s, c*(1-w.Z*w.Z)+w.Z*w.Z, 0),
		Vec4(0, 0, 0, 1),
	)
}

// LookAt returns a view matrix for a camera at eye looking at target,
// with the given up direction. It moves eye to the origin and
// points the camera down the negative Z axis.
func LookAt(eye, target, up Vector3) Matrix4 {
	w := eye.Sub(target).Normal()
	u := up.Cross(w).Normal()
	v := w.Cross(u)
	rot := Matrix4{
		u.X, v.X, w.X, 0,
		u.Y, v.Y, w.Y, 0,
		u.Z, v.Z, w.Z, 0,
		0, 0, 0, 1,
	}
	return rot.Mul(Translate4(eye.Negate()))
}

// Perspective returns a perspective projection matrix for the given
// vertical field of view (radians), aspect ratio (width / height),
// and near and far clipping plane distances.
func Perspective(fovy, aspect, near, far float32) Matrix4 {
	t := Tan(fovy / 2)
	return Matrix4{
		1 / (t * aspect), 0, 0, 0,
		0, 1 / t, 0, 0,
		0, 0, -(near + far) / (far - near), -1,
		0, 0, -2 * near * far / (far - near), 0,
	}
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// Column returns the given column as a [Vector4].
func (m Matrix4) Column(col int) Vector4 {
	i := col * 4
	return Vec4(m[i], m[i+1], m[i+2], m[i+3])
}

// Mul returns the matrix product m * other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[c*4+k]
			}
			r[c*4+row] = sum
		}
	}
	return r
}

// SetMul sets this matrix to m * other.
func (m *Matrix4) SetMul(other Matrix4) {
	*m = m.Mul(other)
}

// MulVector4 returns the product m * v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	var r [4]float32
	for row := 0; row < 4; row++ {
		r[row] = m[row]*v.X + m[4+row]*v.Y + m[8+row]*v.Z + m[12+row]*v.W
	}
	return Vec4(r[0], r[1], r[2], r[3])
}

// MulVector2AsPoint transforms the given 2D point (z = 0, w = 1)
// and returns the resulting X, Y.
func (m Matrix4) MulVector2AsPoint(v Vector2) Vector2 {
	r := m.MulVector4(Vector4FromVector2(v))
	return Vec2(r.X, r.Y)
}

// IsEqualTol returns whether all elements are within tol of the other's.
func (m Matrix4) IsEqualTol(other Matrix4, tol float32) bool {
	for i := range m {
		if !EqualTol(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// IsIdentity returns whether this is the identity matrix within tol.
func (m Matrix4) IsIdentity(tol float32) bool {
	return m.IsEqualTol(Identity4(), tol)
}

// Translation returns the translation component of an affine matrix.
func (m Matrix4) Translation() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// ExtractRotZ returns the rotation angle around the Z axis
// of an affine matrix without shear, in radians.
func (m Matrix4) ExtractRotZ() float32 {
	return Atan2(m[1], m[0])
}

func (m Matrix4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%g %g %g %g", m.At(row, 0), m.At(row, 1), m.At(row, 2), m.At(row, 3))
	}
	return "[" + sb.String() + "]"
}
