// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"unicode"

	"cogentcore.org/glapp/events"
	"cogentcore.org/glapp/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func glfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	m.SetFlag(mod&glfw.ModShift != 0, key.Shift)
	m.SetFlag(mod&glfw.ModControl != 0, key.Control)
	m.SetFlag(mod&glfw.ModAlt != 0, key.Alt)
	m.SetFlag(mod&glfw.ModSuper != 0, key.Meta)
	return m
}

var glfwKeyCodes = map[glfw.Key]key.Codes{
	glfw.KeyEnter:        key.CodeReturnEnter,
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyBackspace:    key.CodeBackspace,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeySpace:        key.CodeSpacebar,
	glfw.KeyMinus:        key.CodeHyphenMinus,
	glfw.KeyEqual:        key.CodeEqualSign,
	glfw.KeyComma:        key.CodeComma,
	glfw.KeyPeriod:       key.CodeFullStop,
	glfw.KeySlash:        key.CodeSlash,
	glfw.KeyRight:        key.CodeRightArrow,
	glfw.KeyLeft:         key.CodeLeftArrow,
	glfw.KeyDown:         key.CodeDownArrow,
	glfw.KeyUp:           key.CodeUpArrow,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyLeftSuper:    key.CodeLeftMeta,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyRightSuper:   key.CodeRightMeta,
}

// glfwKeyCode returns the key code for the given glfw key.
// glfw letter and digit keys are their ASCII upper-case values.
func glfwKeyCode(k glfw.Key) key.Codes {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return key.CodeA + key.Codes(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return key.Code0 + key.Codes(k-glfw.Key0)
	}
	if c, ok := glfwKeyCodes[k]; ok {
		return c
	}
	return key.CodeUnknown
}

// runeKey returns the glfw key generating the given rune,
// for letters, digits and space.
func runeKey(r rune) (glfw.Key, bool) {
	r = unicode.ToUpper(r)
	switch {
	case r >= 'A' && r <= 'Z':
		return glfw.KeyA + glfw.Key(r-'A'), true
	case r >= '0' && r <= '9':
		return glfw.Key0 + glfw.Key(r-'0'), true
	case r == ' ':
		return glfw.KeySpace, true
	}
	return glfw.KeyUnknown, false
}

// typesChar returns whether a press of the given key with the given
// modifiers is also reported by glfw as a typed character, in which
// case the press is delivered by [charEvent] instead of [keyEvent].
func typesChar(code key.Codes, mods key.Modifiers) bool {
	if mods&(key.Control|key.Alt|key.Meta) != 0 {
		return false
	}
	rn, ok := key.CodeRuneMap[code]
	return ok && unicode.IsGraphic(rn)
}

// keyEvent returns the event for a glfw key callback, or nil for
// presses that glfw also reports as characters.
func keyEvent(ky glfw.Key, action glfw.Action, mod glfw.ModifierKey) *events.Key {
	code := glfwKeyCode(ky)
	mods := glfwMods(mod)
	if action == glfw.Release {
		return events.NewKey(events.KeyUp, code, mods)
	}
	if typesChar(code, mods) {
		return nil
	}
	return events.NewKey(events.KeyDown, code, mods)
}

// charEvent returns the KeyDown event for a character typed
// according to the current keyboard layout.
func charEvent(char rune, mod glfw.ModifierKey) *events.Key {
	return events.NewKeyRune(events.KeyDown, char, key.CodeUnknown, glfwMods(mod))
}
