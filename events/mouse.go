// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"cogentcore.org/glapp/events/key"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonsNames = [...]string{"NoButton", "Left", "Middle", "Right"}

func (bt Buttons) String() string {
	if bt < 0 || int(bt) >= len(buttonsNames) {
		return "NoButton"
	}
	return buttonsNames[bt]
}

// Mouse is a mouse button or movement event.
// Positions are in window pixels with the origin at the upper left.
type Mouse struct {
	Type Types

	// Button is the button pressed or released, or the button
	// held during a MouseMove (NoButton if none).
	Button Buttons

	// Where is the current mouse position.
	Where image.Point

	// Prev is the previous mouse position, for MouseMove.
	Prev image.Point

	Mods key.Modifiers
}

func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	return &Mouse{Type: typ, Button: but, Where: where, Mods: mods}
}

func NewMouseMove(but Buttons, where, prev image.Point, mods key.Modifiers) *Mouse {
	return &Mouse{Type: MouseMove, Button: but, Where: where, Prev: prev, Mods: mods}
}

// Delta returns the amount of mouse movement (Where - Prev).
func (ev *Mouse) Delta() image.Point {
	return ev.Where.Sub(ev.Prev)
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Type, ev.Button, ev.Where, ev.Mods)
}
