// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/glapp/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

const standardTol = float32(1.0e-6)

func TestMatrix4(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)
	zAxis := Vec3(0, 0, 1)

	assert.Equal(t, vx, Identity4().MulVector2AsPoint(vx))
	assert.Equal(t, vxy, Identity4().MulVector2AsPoint(vxy))

	assert.Equal(t, vxy, Translate4(Vec3(1, 1, 0)).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale4(Vec3(2, 2, 1)).MulVector2AsPoint(vxy))

	tolAssertEqualVector(t, standardTol, vy, Rotate4(DegToRad(90), zAxis).MulVector2AsPoint(vx))  // left
	tolAssertEqualVector(t, standardTol, vx, Rotate4(DegToRad(-90), zAxis).MulVector2AsPoint(vy)) // right
	tolAssertEqualVector(t, standardTol, vxy.Normal(), Rotate4(DegToRad(45), zAxis).MulVector2AsPoint(vx))

	// axis does not need to be normalized
	tolAssertEqualVector(t, standardTol, vy, Rotate4(DegToRad(90), Vec3(0, 0, 5)).MulVector2AsPoint(vx))

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	m := Translate4(Vec3(1, 1, 0)).Mul(Rotate4(DegToRad(90), zAxis)).Mul(Scale4(Vec3(2, 2, 1)))
	tolAssertEqualVector(t, standardTol, Vec2(1, 3), m.MulVector2AsPoint(vx))

	tolassert.EqualTol(t, DegToRad(45), Rotate4(DegToRad(45), zAxis).ExtractRotZ(), standardTol)
	assert.Equal(t, Vec3(1, 2, 3), Translate4(Vec3(1, 2, 3)).Translation())
}

func TestMatrix4Layout(t *testing.T) {
	m := Translate4(Vec3(0.1, 0.2, 0.3))
	assert.Equal(t, float32(0.1), m.At(0, 3))
	assert.Equal(t, float32(0.2), m[13])
	assert.Equal(t, Vec4(0.1, 0.2, 0.3, 1), m.Column(3))
	assert.Equal(t, "[1 0 0 0.1; 0 1 0 0.2; 0 0 1 0.3; 0 0 0 1]", m.String())
}

func TestMatrix4Mul(t *testing.T) {
	a := Translate4(Vec3(2, 3, 4))
	assert.Equal(t, a, Identity4().Mul(a))
	assert.Equal(t, a, a.Mul(Identity4()))

	b := Translate4(Vec3(-2, -3, -4))
	assert.True(t, a.Mul(b).IsIdentity(standardTol))

	s := Scale4(Vec3(2, 4, 8))
	s.SetMul(Scale4(Vec3(0.5, 0.25, 0.125)))
	assert.True(t, s.IsIdentity(standardTol))

	r := Identity4()
	for i := 0; i < 8; i++ {
		r.SetMul(Rotate4(DegToRad(45), Vec3(0, 0, 1)))
	}
	assert.True(t, r.IsIdentity(1.0e-5))
	assert.False(t, Rotate4(DegToRad(45), Vec3(0, 0, 1)).IsIdentity(1.0e-3))
}

func TestLookAtPerspective(t *testing.T) {
	view := LookAt(Vec3(0, 0, 10), Vec3(0, 0, 0), Vec3(0, 1, 0))
	p := view.MulVector4(Vec4(0, 0, 0, 1))
	assert.True(t, p.Vector3().IsEqualTol(Vec3(0, 0, -10), standardTol))
	p = view.MulVector4(Vec4(1, 2, 0, 1))
	assert.True(t, p.Vector3().IsEqualTol(Vec3(1, 2, -10), 1.0e-5))

	prjn := Perspective(DegToRad(90), 1, 1, 100)
	near := prjn.MulVector4(Vec4(0, 0, -1, 1))
	tolassert.EqualTol(t, -1, near.Z/near.W, 1.0e-5)
	far := prjn.MulVector4(Vec4(0, 0, -100, 1))
	tolassert.EqualTol(t, 1, far.Z/far.W, 1.0e-4)
	edge := prjn.MulVector4(Vec4(1, 0, -1, 1))
	tolassert.EqualTol(t, 1, edge.X/edge.W, 1.0e-5)
}

func TestLerpDeg(t *testing.T) {
	assert.Equal(t, float32(5), Lerp(0, 10, 0.5))
	tolassert.EqualTol(t, 180, RadToDeg(Pi), 1.0e-4)
	assert.True(t, EqualTol(1, 1.0005, 0.001))
	assert.False(t, EqualTol(1, 1.01, 0.001))
}
