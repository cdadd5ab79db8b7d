// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the backend-neutral interfaces for the
// GPU resources an application draws with: shader programs,
// vertex buffers and textures, plus the image preparation
// helpers used for textures. The OpenGL implementation is
// in package glgpu.
//
// All methods must be called on the thread that owns the
// current graphics context.
package gpu

import (
	"image"

	"cogentcore.org/glapp/math32"
)

// GPU creates GPU resources and sets global drawing state
// for the current context.
type GPU interface {
	// NewProgram returns a new, not yet compiled, shader program.
	NewProgram(name string) Program

	// NewVertices returns a new empty vertex buffer of 2D positions.
	NewVertices(name string) Vertices

	// NewTexture2D returns a new empty 2D texture.
	NewTexture2D(name string) Texture2D

	// Clear clears the current render target to the given RGBA color,
	// with components in the 0-1 range.
	Clear(clr math32.Vector4)

	// SetPointSize sets the rasterized diameter of Points in pixels.
	SetPointSize(size float32)

	// SetLineWidth sets the rasterized width of Lines and LineStrips in pixels.
	SetLineWidth(width float32)

	// Viewport sets the viewport to the given size starting at the origin.
	Viewport(size image.Point)
}
