// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/glapp/math32"

// Vertices is a GPU buffer of 2D vertex positions, bound to
// attribute location 0, together with its vertex array state.
type Vertices interface {
	// Name returns the name of the buffer.
	Name() string

	// SetVertices sets the CPU-side vertex data, copying it.
	// Call Transfer to upload it.
	SetVertices(vtx []math32.Vector2)

	// Len returns the number of vertices.
	Len() int

	// Transfer uploads the CPU-side vertices to the GPU,
	// creating the GPU resources on first use.
	Transfer()

	// Activate binds this buffer for drawing.
	Activate()

	// Draw draws count vertices starting at start with the given
	// primitive mode, using the active program.
	Draw(prim Primitives, start, count int)

	// Delete deletes the GPU resources for the buffer.
	Delete()
}
