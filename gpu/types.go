// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// Primitives are the vertex assembly modes for drawing
// a range of vertices.
type Primitives int32

const (
	// Points draws each vertex as a point of the current point size.
	Points Primitives = iota

	// Lines draws each consecutive pair of vertices as an
	// independent line segment.
	Lines

	// LineStrip draws a connected line through all the vertices.
	LineStrip

	// LineLoop is a LineStrip with the last vertex connected back to the first.
	LineLoop

	// Triangles draws each consecutive triple of vertices as a triangle.
	Triangles

	// TriangleStrip draws a triangle for every vertex after the first two,
	// using the two preceding vertices.
	TriangleStrip

	// TriangleFan draws a triangle for every vertex after the first two,
	// using the first vertex as the shared center and the preceding vertex.
	TriangleFan

	PrimitivesN
)

var primitiveNames = [...]string{"Points", "Lines", "LineStrip", "LineLoop", "Triangles", "TriangleStrip", "TriangleFan"}

func (p Primitives) String() string {
	if p < 0 || p >= PrimitivesN {
		return fmt.Sprintf("Primitives(%d)", int32(p))
	}
	return primitiveNames[p]
}

// ShaderTypes are the types of shader stages in a [Program].
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
	GeometryShader

	ShaderTypesN
)

var shaderTypeNames = [...]string{"VertexShader", "FragmentShader", "GeometryShader"}

func (st ShaderTypes) String() string {
	if st < 0 || st >= ShaderTypesN {
		return fmt.Sprintf("ShaderTypes(%d)", int32(st))
	}
	return shaderTypeNames[st]
}
