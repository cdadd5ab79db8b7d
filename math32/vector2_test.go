// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/glapp/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	assert.Equal(t, Vec2(2, 9), v.Add(Vec2(3, 2)))
	assert.Equal(t, Vec2(-4, 5), v.Sub(Vec2(3, 2)))
	assert.Equal(t, Vec2(-3, 14), v.Mul(Vec2(3, 2)))
	assert.Equal(t, Vec2(-2, 14), v.MulScalar(2))
	assert.Equal(t, Vector2{}, v.DivScalar(0))
	assert.Equal(t, Vec2(1, -7), v.Negate())
	assert.Equal(t, float32(13), v.Dot(Vec2(1, 2)))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, float32(5), Vec2(1, 1).DistanceTo(Vec2(4, 5)))
	assert.Equal(t, "(-1, 7)", v.String())

	n := Vec2(3, 4).Normal()
	tolassert.EqualTol(t, 1, n.Length(), standardTol)
}

func TestVector2Polar(t *testing.T) {
	p := Vector2Polar(Pi/2, 0.5)
	assert.True(t, p.IsEqualTol(Vec2(0, 0.5), standardTol))
	p = Vector2Polar(Pi, 2)
	assert.True(t, p.IsEqualTol(Vec2(-2, 0), 1.0e-5))
}

func TestVector3(t *testing.T) {
	x := Vec3(1, 0, 0)
	y := Vec3(0, 1, 0)
	assert.Equal(t, Vec3(0, 0, 1), x.Cross(y))
	assert.Equal(t, Vec3(0, 0, -1), y.Cross(x))
	assert.Equal(t, float32(0), x.Dot(y))
	assert.Equal(t, Vec3(2, 4, 6), Vec3(1, 2, 3).MulScalar(2))
	assert.Equal(t, Vec3(1, 2, 0), Vector3FromVector2(Vec2(1, 2)))
	tolassert.EqualTol(t, 1, Vec3(0, 0, 7).Normal().Z, standardTol)
}

func TestVector4(t *testing.T) {
	v := Vec4(1, 2, 3, 4)
	assert.Equal(t, float32(30), v.Dot(v))
	assert.Equal(t, Vec4(1, 2, 0, 1), Vector4FromVector2(Vec2(1, 2)))
	assert.Equal(t, Vec4(1, 2, 3, 0), Vector4FromVector3(Vec3(1, 2, 3), 0))
	assert.Equal(t, float32(3), v.Dim(2))
	assert.Panics(t, func() { v.Dim(4) })
	assert.Equal(t, Vec3(1, 2, 3), v.Vector3())
}
