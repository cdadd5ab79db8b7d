// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events delivered by a window
// to an application.
package events

// Types determines the type of input event.
// The type includes both the source and the "action" of the event
// (e.g., MouseDown and MouseUp are separate event types).
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse is moving, whether
	// or not a button is down.
	MouseMove

	// KeyDown is sent when a key is pressed, and again on
	// auto-repeat while it is held.
	KeyDown

	// KeyUp is sent when a key is released.
	KeyUp

	TypesN
)

var typesNames = [...]string{"UnknownType", "MouseDown", "MouseUp", "MouseMove", "KeyDown", "KeyUp"}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "UnknownType"
	}
	return typesNames[tp]
}

// IsKey returns true if the type is a key event type.
func (tp Types) IsKey() bool {
	return tp == KeyDown || tp == KeyUp
}

// IsMouse returns true if the type is a mouse event type.
func (tp Types) IsMouse() bool {
	return tp >= MouseDown && tp <= MouseMove
}
