// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"unsafe"

	"cogentcore.org/glapp/gpu"
	"cogentcore.org/glapp/math32"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Vertices is the OpenGL implementation of [gpu.Vertices]:
// a vertex array object with one buffer of 2D positions
// at attribute location 0.
type Vertices struct {
	init bool
	name string
	vao  uint32
	vbo  uint32
	vtx  []math32.Vector2
}

func (vs *Vertices) Name() string {
	return vs.name
}

func (vs *Vertices) SetVertices(vtx []math32.Vector2) {
	vs.vtx = append(vs.vtx[:0], vtx...)
}

func (vs *Vertices) Len() int {
	return len(vs.vtx)
}

// activate creates the GPU resources if needed, and binds them.
func (vs *Vertices) activate() {
	if !vs.init {
		gl.GenVertexArrays(1, &vs.vao)
		gl.BindVertexArray(vs.vao)
		gl.GenBuffers(1, &vs.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vs.vbo)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 0, 0)
		vs.init = true
		return
	}
	gl.BindVertexArray(vs.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vs.vbo)
}

// Transfer uploads the vertices. Automatically uses re-specification
// strategy per: https://www.khronos.org/opengl/wiki/Buffer_Object_Streaming
// so it is safe if the buffer is still in use by a prior draw call.
func (vs *Vertices) Transfer() {
	vs.activate()
	if len(vs.vtx) == 0 {
		return
	}
	size := len(vs.vtx) * int(unsafe.Sizeof(math32.Vector2{}))
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(vs.vtx), gl.DYNAMIC_DRAW)
	ErrCheck("Vertices Transfer " + vs.name)
}

func (vs *Vertices) Activate() {
	if !vs.init {
		return
	}
	gl.BindVertexArray(vs.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vs.vbo)
}

func (vs *Vertices) Draw(prim gpu.Primitives, start, count int) {
	if !vs.init || count <= 0 {
		return
	}
	gl.DrawArrays(glPrimitives[prim], int32(start), int32(count))
}

// Delete deletes the GPU resources associated with this buffer
// (requires Transfer to re-establish new ones).
func (vs *Vertices) Delete() {
	if !vs.init {
		return
	}
	gl.DeleteBuffers(1, &vs.vbo)
	gl.DeleteVertexArrays(1, &vs.vao)
	vs.vbo = 0
	vs.vao = 0
	vs.init = false
}
