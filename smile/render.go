// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smile

import (
	"cogentcore.org/glapp/base/errors"
	"cogentcore.org/glapp/gpu"
	"cogentcore.org/glapp/gpu/shape"
	"cogentcore.org/glapp/math32"
)

var (
	// ClearColor is the color the frame is cleared to.
	ClearColor = math32.Vec4(0.5, 0.5, 0.5, 1)

	// HeadColor is the fill color of the head.
	HeadColor = math32.Vec3(1, 1, 0)

	// LineColor is the color of the outline, eyes, nose and mouth.
	LineColor = math32.Vec3(0, 0, 0)
)

// Scene holds the GPU resources drawn each frame.
// Any nil resource is skipped.
type Scene struct {
	Program gpu.Program

	// Background is the full-viewport quad.
	Background      gpu.Vertices
	BackgroundRange shape.Range

	// Texture is drawn on the background.
	Texture gpu.Texture2D

	// Vertices holds all parts of the face, at the ranges in Face.
	Vertices gpu.Vertices
	Face     Face
}

// Render clears the frame and draws the textured background with
// the identity transform, then the face transformed by m.
func (sc *Scene) Render(gp gpu.GPU, m math32.Matrix4) {
	gp.Clear(ClearColor)
	if sc.Program == nil {
		return
	}
	pr := sc.Program
	pr.Activate()

	if sc.Background != nil && sc.Texture != nil {
		sc.Texture.Activate(0)
		errors.Log(pr.SetUniform("MVP", math32.Identity4()))
		errors.Log(pr.SetUniform("useTexture", 1))
		errors.Log(pr.SetUniform("samplerUnit", 0))
		sc.Background.Activate()
		draw(sc.Background, gpu.TriangleFan, sc.BackgroundRange)
	}

	if sc.Vertices == nil {
		return
	}
	errors.Log(pr.SetUniform("MVP", m))
	errors.Log(pr.SetUniform("useTexture", 0))
	sc.Vertices.Activate()
	f := &sc.Face
	errors.Log(pr.SetUniform("color", HeadColor))
	draw(sc.Vertices, gpu.TriangleFan, f.Head)
	errors.Log(pr.SetUniform("color", LineColor))
	draw(sc.Vertices, gpu.LineStrip, f.Head.Inner())
	draw(sc.Vertices, gpu.Points, f.Eyes)
	draw(sc.Vertices, gpu.Lines, f.Nose)
	draw(sc.Vertices, gpu.LineStrip, f.Mouth)
}

func draw(vs gpu.Vertices, prim gpu.Primitives, rg shape.Range) {
	vs.Draw(prim, rg.Start, rg.Count)
}
