// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smile

import (
	"errors"
	"image"

	"cogentcore.org/glapp/gpu"
	"cogentcore.org/glapp/math32"
)

// call is one recorded GPU call.
type call struct {
	Op    string
	Name  string
	Value any
	Prim  gpu.Primitives
	Start int
	Count int
}

// recorder is a fake [gpu.GPU] that records every call in order.
type recorder struct {
	calls []call

	compileErr error
	openErr    error

	programs []*fakeProgram
	vertices []*fakeVertices
	textures []*fakeTexture
}

func (rc *recorder) add(c call) {
	rc.calls = append(rc.calls, c)
}

func (rc *recorder) NewProgram(name string) gpu.Program {
	pr := &fakeProgram{rc: rc, name: name}
	rc.programs = append(rc.programs, pr)
	return pr
}

func (rc *recorder) NewVertices(name string) gpu.Vertices {
	vs := &fakeVertices{rc: rc, name: name}
	rc.vertices = append(rc.vertices, vs)
	return vs
}

func (rc *recorder) NewTexture2D(name string) gpu.Texture2D {
	tx := &fakeTexture{rc: rc, name: name}
	rc.textures = append(rc.textures, tx)
	return tx
}

func (rc *recorder) Clear(clr math32.Vector4) {
	rc.add(call{Op: "Clear", Value: clr})
}

func (rc *recorder) SetPointSize(size float32) {
	rc.add(call{Op: "SetPointSize", Value: size})
}

func (rc *recorder) SetLineWidth(width float32) {
	rc.add(call{Op: "SetLineWidth", Value: width})
}

func (rc *recorder) Viewport(size image.Point) {
	rc.add(call{Op: "Viewport", Value: size})
}

type fakeProgram struct {
	rc       *recorder
	name     string
	compiled bool
	deleted  int
	vertSrc  string
	fragSrc  string
}

func (pr *fakeProgram) Name() string { return pr.name }

func (pr *fakeProgram) Compile(vertSrc, fragSrc string) error {
	if pr.rc.compileErr != nil {
		return pr.rc.compileErr
	}
	pr.vertSrc, pr.fragSrc = vertSrc, fragSrc
	pr.compiled = true
	return nil
}

func (pr *fakeProgram) Activate() {
	pr.rc.add(call{Op: "Activate", Name: pr.name})
}

func (pr *fakeProgram) SetUniform(name string, value any) error {
	if !pr.compiled {
		return errors.New("not compiled")
	}
	pr.rc.add(call{Op: "SetUniform", Name: name, Value: value})
	return nil
}

func (pr *fakeProgram) Delete() { pr.deleted++ }

type fakeVertices struct {
	rc          *recorder
	name        string
	vtx         []math32.Vector2
	transferred bool
	deleted     int
}

func (vs *fakeVertices) Name() string { return vs.name }

func (vs *fakeVertices) SetVertices(vtx []math32.Vector2) {
	vs.vtx = append([]math32.Vector2(nil), vtx...)
}

func (vs *fakeVertices) Len() int { return len(vs.vtx) }

func (vs *fakeVertices) Transfer() { vs.transferred = true }

func (vs *fakeVertices) Activate() {
	vs.rc.add(call{Op: "Bind", Name: vs.name})
}

func (vs *fakeVertices) Draw(prim gpu.Primitives, start, count int) {
	vs.rc.add(call{Op: "Draw", Name: vs.name, Prim: prim, Start: start, Count: count})
}

func (vs *fakeVertices) Delete() { vs.deleted++ }

type fakeTexture struct {
	rc          *recorder
	name        string
	opened      string
	transparent bool
	img         image.Image
	deleted     int
}

func (tx *fakeTexture) Name() string { return tx.name }

func (tx *fakeTexture) Open(path string, transparent bool) error {
	if tx.rc.openErr != nil {
		return tx.rc.openErr
	}
	tx.opened = path
	tx.transparent = transparent
	tx.img = image.NewRGBA(image.Rect(0, 0, 4, 4))
	return nil
}

func (tx *fakeTexture) SetImage(img image.Image) error {
	tx.img = img
	return nil
}

func (tx *fakeTexture) Size() image.Point {
	if tx.img == nil {
		return image.Point{}
	}
	return tx.img.Bounds().Size()
}

func (tx *fakeTexture) Activate(unit int) {
	tx.rc.add(call{Op: "Texture", Name: tx.name, Value: unit})
}

func (tx *fakeTexture) Delete() { tx.deleted++ }

// fakeWindow records window requests.
type fakeWindow struct {
	refreshes int
	closed    bool
}

func (w *fakeWindow) Refresh()               { w.refreshes++ }
func (w *fakeWindow) Close()                 { w.closed = true }
func (w *fakeWindow) Size() image.Point      { return image.Pt(600, 600) }
func (w *fakeWindow) Elapsed() float32       { return 0 }
func (w *fakeWindow) KeyPressed(r rune) bool { return false }
