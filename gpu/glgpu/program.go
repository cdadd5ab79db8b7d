// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/glapp/gpu"
	"cogentcore.org/glapp/math32"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Program is the OpenGL implementation of [gpu.Program].
type Program struct {
	init   bool
	handle uint32
	name   string

	// FragDataVar is the fragment shader output variable
	// bound to the framebuffer.
	FragDataVar string

	// uniform locations by name, looked up on first use
	locs map[string]int32
}

func (pr *Program) Name() string {
	return pr.name
}

// Handle returns the handle for the program; only valid after Compile.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

func (pr *Program) Compile(vertSrc, fragSrc string) error {
	pr.Delete()
	vs, err := compileShader(gpu.VertexShader, vertSrc)
	if err != nil {
		return fmt.Errorf("glgpu Program %s: %w", pr.name, err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gpu.FragmentShader, fragSrc)
	if err != nil {
		return fmt.Errorf("glgpu Program %s: %w", pr.name, err)
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	if handle == 0 {
		return fmt.Errorf("glgpu Program %s: could not create program", pr.name)
	}
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	fdv := pr.FragDataVar
	if fdv == "" {
		fdv = "fragmentColor"
	}
	gl.BindFragDataLocation(handle, 0, gl.Str(cString(fdv)))
	gl.LinkProgram(handle)
	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		lg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(lg))
		gl.DeleteProgram(handle)
		return fmt.Errorf("glgpu Program %s: failed to link program: %v", pr.name, goString(lg))
	}
	pr.handle = handle
	pr.init = true
	pr.locs = make(map[string]int32)
	gl.UseProgram(handle)
	return nil
}

func (pr *Program) Activate() {
	if !pr.init {
		return
	}
	gl.UseProgram(pr.handle)
}

func (pr *Program) location(name string) (int32, error) {
	if loc, ok := pr.locs[name]; ok {
		if loc < 0 {
			return loc, fmt.Errorf("glgpu Program %s: uniform %q cannot be set", pr.name, name)
		}
		return loc, nil
	}
	loc := gl.GetUniformLocation(pr.handle, gl.Str(cString(name)))
	pr.locs[name] = loc
	if loc < 0 {
		err := fmt.Errorf("glgpu Program %s: uniform %q cannot be set", pr.name, name)
		slog.Error(err.Error())
		return loc, err
	}
	return loc, nil
}

func (pr *Program) SetUniform(name string, value any) error {
	if !pr.init {
		return fmt.Errorf("glgpu Program %s: SetUniform %q before Compile", pr.name, name)
	}
	loc, err := pr.location(name)
	if err != nil {
		return err
	}
	switch v := value.(type) {
	case int:
		gl.Uniform1i(loc, int32(v))
	case int32:
		gl.Uniform1i(loc, v)
	case bool:
		b := int32(0)
		if v {
			b = 1
		}
		gl.Uniform1i(loc, b)
	case float32:
		gl.Uniform1f(loc, v)
	case math32.Vector2:
		gl.Uniform2f(loc, v.X, v.Y)
	case math32.Vector3:
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	case math32.Vector4:
		gl.Uniform4f(loc, v.X, v.Y, v.Z, v.W)
	case math32.Matrix4:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	case *math32.Matrix4:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	default:
		return fmt.Errorf("glgpu Program %s: uniform %q: unsupported value type %T", pr.name, name, value)
	}
	return nil
}

// Delete deletes the GPU resources associated with this program.
// The program can be compiled again afterwards.
func (pr *Program) Delete() {
	if !pr.init {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.locs = nil
	pr.init = false
}

// compileShader compiles the given source as a shader of the given type,
// deleting it again if compilation fails.
func compileShader(typ gpu.ShaderTypes, src string) (uint32, error) {
	handle := gl.CreateShader(glShaders[typ])
	if handle == 0 {
		return 0, fmt.Errorf("could not create %v", typ)
	}
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("%v failed to compile: %v", typ, goString(msg))
	}
	return handle, nil
}

// cString returns a null-terminated string if not already.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// goString returns the string up to the first null terminator.
func goString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
