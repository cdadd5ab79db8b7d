// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smile

import (
	"log/slog"
	"unicode"

	"cogentcore.org/glapp/math32"
)

// Action is what the window should do after a key is handled.
type Action int32

const (
	// NoAction means the key was not recognized.
	NoAction Action = iota

	// Redraw means the transform changed and the window needs redrawing.
	Redraw

	// Quit means the application should exit.
	Quit
)

func (a Action) String() string {
	switch a {
	case Redraw:
		return "Redraw"
	case Quit:
		return "Quit"
	}
	return "NoAction"
}

var (
	// TranslateStep is the translation applied by T when going forward;
	// the backward step is its negation.
	TranslateStep = math32.Vec3(0.1, 0.1, 0)

	// ScaleUp is the scale applied by S when going forward.
	ScaleUp = math32.Vec3(1.2, 1.5, 1)

	// ScaleDown is the scale applied by S when going back,
	// approximately the inverse of ScaleUp.
	ScaleDown = math32.Vec3(0.833, 0.666, 1)

	// RotateStep is the rotation angle applied by R, in radians.
	RotateStep = math32.DegToRad(45)

	zAxis = math32.Vec3(0, 0, 1)
)

// Transform is the cumulative model transform of the face,
// modified by key presses. Each step is post-multiplied
// (Matrix = Matrix * step), so the newest step applies to
// the vertices first.
type Transform struct {
	// Matrix is the current transform.
	Matrix math32.Matrix4

	// TranslateForward is whether the next T goes forward.
	TranslateForward bool

	// ScaleForward is whether the next S scales up.
	ScaleForward bool
}

// NewTransform returns a new identity transform with both
// toggles going forward.
func NewTransform() *Transform {
	return &Transform{Matrix: math32.Identity4(), TranslateForward: true, ScaleForward: true}
}

// Reset sets the matrix to identity and the translate toggle
// to forward. The scale toggle is left unchanged.
func (tr *Transform) Reset() {
	tr.Matrix = math32.Identity4()
	tr.TranslateForward = true
	slog.Info("Reset")
}

// Translate applies one translate step and flips its direction.
func (tr *Transform) Translate() {
	d := TranslateStep
	if !tr.TranslateForward {
		d = d.Negate()
	}
	tr.Matrix.SetMul(math32.Translate4(d))
	slog.Info("Translate", "dx", d.X, "dy", d.Y, "forward", tr.TranslateForward)
	tr.TranslateForward = !tr.TranslateForward
}

// Scale applies one scale step and flips its direction.
func (tr *Transform) Scale() {
	s := ScaleUp
	if !tr.ScaleForward {
		s = ScaleDown
	}
	tr.Matrix.SetMul(math32.Scale4(s))
	slog.Info("Scale", "sx", s.X, "sy", s.Y, "forward", tr.ScaleForward)
	tr.ScaleForward = !tr.ScaleForward
}

// Rotate applies one 45 degree rotation around the z axis.
func (tr *Transform) Rotate() {
	tr.Matrix.SetMul(math32.Rotate4(RotateStep, zAxis))
	slog.Info("Rotate", "degrees", math32.RadToDeg(RotateStep))
}

// HandleKey applies the transform for the given key, ignoring case:
// I resets, T translates, S scales, R rotates and Q quits.
// Other keys do nothing.
func (tr *Transform) HandleKey(r rune) Action {
	switch unicode.ToLower(r) {
	case 'i':
		tr.Reset()
	case 't':
		tr.Translate()
	case 's':
		tr.Scale()
	case 'r':
		tr.Rotate()
	case 'q':
		slog.Info("Quit")
		return Quit
	default:
		return NoAction
	}
	return Redraw
}
