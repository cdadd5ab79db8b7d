// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// Program manages a vertex and fragment shader linked together,
// and the uniform variables they read.
type Program interface {
	// Name returns the name of the program.
	Name() string

	// Compile compiles the given vertex and fragment shader sources
	// and links them into this program. The shaders are released
	// on every return path; on error the program stays unusable.
	Compile(vertSrc, fragSrc string) error

	// Activate makes this the active program for subsequent
	// uniform settings and draw calls. It is a no-op if the program
	// was not compiled.
	Activate()

	// SetUniform sets the named uniform on the active program.
	// Supported values are int, int32, bool, float32, math32.Vector2,
	// math32.Vector3, math32.Vector4, math32.Matrix4 and
	// *math32.Matrix4. It returns an error for unknown names and
	// unsupported value types.
	SetUniform(name string, value any) error

	// Delete deletes the GPU resources for the program.
	Delete()
}
