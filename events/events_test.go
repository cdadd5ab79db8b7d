// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"cogentcore.org/glapp/events/key"
	"github.com/stretchr/testify/assert"
)

func TestNewKey(t *testing.T) {
	ev := NewKey(KeyDown, key.CodeT, 0)
	assert.Equal(t, 't', ev.Rune)
	assert.Equal(t, 't', ev.Lower())

	ev = NewKey(KeyDown, key.CodeT, key.Shift)
	assert.Equal(t, 'T', ev.Rune)
	assert.Equal(t, 't', ev.Lower())

	ev = NewKey(KeyUp, key.CodeEscape, key.Control)
	assert.Equal(t, rune(0), ev.Rune)
	assert.Equal(t, "KeyUp{Code: Escape, Mods: Control}", ev.String())
}

func TestNewKeyRune(t *testing.T) {
	ev := NewKeyRune(KeyDown, 'Q', key.CodeUnknown, key.Shift)
	assert.Equal(t, 'Q', ev.Rune)
	assert.Equal(t, 'q', ev.Lower())
	assert.Equal(t, key.CodeUnknown, ev.Code)

	ev = NewKeyRune(KeyDown, 'é', key.CodeUnknown, 0)
	assert.Equal(t, 'é', ev.Rune)
	assert.Equal(t, "KeyDown{Rune: 'é', Code: Unknown, Mods: }", ev.String())
}

func TestTypes(t *testing.T) {
	assert.True(t, KeyDown.IsKey())
	assert.False(t, MouseDown.IsKey())
	assert.True(t, MouseMove.IsMouse())
	assert.False(t, KeyUp.IsMouse())
	assert.Equal(t, "MouseUp", MouseUp.String())
	assert.Equal(t, "UnknownType", Types(99).String())
}

func TestMouse(t *testing.T) {
	ev := NewMouseMove(Left, image.Pt(10, 20), image.Pt(4, 25), 0)
	assert.Equal(t, MouseMove, ev.Type)
	assert.Equal(t, image.Pt(6, -5), ev.Delta())
	ev = NewMouse(MouseDown, Right, image.Pt(1, 2), key.Alt)
	assert.Equal(t, "MouseDown{Button: Right, Pos: (1,2), Mods: Alt}", ev.String())
}
