// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements the gpu interfaces on OpenGL 3.3 core.
package glgpu

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/glapp/gpu"
	"cogentcore.org/glapp/math32"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// GPU is the OpenGL implementation of [gpu.GPU].
// It must be created with [Init] after a context has been made current.
type GPU struct {
	// Version is the OpenGL version string reported by the driver.
	Version string

	// Renderer is the renderer string reported by the driver.
	Renderer string
}

// Init initializes the OpenGL function pointers for the current context
// and returns the [GPU]. IMPORTANT: must be called on the main thread,
// after making a context current.
func Init() (*GPU, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glgpu.Init: %w", err)
	}
	gp := &GPU{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	slog.Info("OpenGL initialized", "version", gp.Version, "renderer", gp.Renderer)
	return gp, nil
}

func (gp *GPU) NewProgram(name string) gpu.Program {
	return &Program{name: name}
}

func (gp *GPU) NewVertices(name string) gpu.Vertices {
	return &Vertices{name: name}
}

func (gp *GPU) NewTexture2D(name string) gpu.Texture2D {
	return &Texture2D{name: name}
}

func (gp *GPU) Clear(clr math32.Vector4) {
	gl.ClearColor(clr.X, clr.Y, clr.Z, clr.W)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (gp *GPU) SetPointSize(size float32) {
	gl.PointSize(size)
}

// SetLineWidth sets the line width. Core profiles only guarantee
// a width of 1, so wider lines depend on the driver.
func (gp *GPU) SetLineWidth(width float32) {
	gl.LineWidth(width)
	ErrCheck("SetLineWidth")
}

func (gp *GPU) Viewport(size image.Point) {
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
}

// ErrCheck checks for any OpenGL errors, logging and returning
// them with the given context string.
func ErrCheck(ctxt string) error {
	var err error
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		err = fmt.Errorf("glgpu %s: gl error 0x%x", ctxt, code)
		slog.Error(err.Error())
	}
	return err
}

var glPrimitives = map[gpu.Primitives]uint32{
	gpu.Points:        gl.POINTS,
	gpu.Lines:         gl.LINES,
	gpu.LineStrip:     gl.LINE_STRIP,
	gpu.LineLoop:      gl.LINE_LOOP,
	gpu.Triangles:     gl.TRIANGLES,
	gpu.TriangleStrip: gl.TRIANGLE_STRIP,
	gpu.TriangleFan:   gl.TRIANGLE_FAN,
}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
	gpu.GeometryShader: gl.GEOMETRY_SHADER,
}
