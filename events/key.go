// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"unicode"

	"cogentcore.org/glapp/events/key"
)

// Key is a low-level immediately generated key event, tracking press
// and release of keys. Presses of keys that type a character carry
// that character as reported by the operating system for the current
// keyboard layout (see [NewKeyRune]); other presses and all releases
// carry the rune derived from the physical key (see [NewKey]), or 0
// for keys that do not generate one (e.g., arrows).
type Key struct {
	Type Types

	// Rune is the character of the key event.
	Rune rune

	// Code is the identity of the physical key.
	Code key.Codes

	// Mods are the modifier keys held during the event.
	Mods key.Modifiers
}

// NewKey returns a new Key event of the given type,
// deriving the rune from the code and modifiers as on a US keyboard.
func NewKey(typ Types, code key.Codes, mods key.Modifiers) *Key {
	rn := key.CodeRuneMap[code]
	if mods.HasFlag(key.Shift) {
		rn = unicode.ToUpper(rn)
	}
	return &Key{Type: typ, Rune: rn, Code: code, Mods: mods}
}

// NewKeyRune returns a new Key event of the given type for the
// given typed character, which is used as is.
func NewKeyRune(typ Types, rn rune, code key.Codes, mods key.Modifiers) *Key {
	return &Key{Type: typ, Rune: rn, Code: code, Mods: mods}
}

// Lower returns the case-folded rune of the event.
func (ev *Key) Lower() rune {
	return unicode.ToLower(ev.Rune)
}

func (ev *Key) String() string {
	if ev.Rune >= 0 && unicode.IsPrint(ev.Rune) {
		return fmt.Sprintf("%v{Rune: %q, Code: %v, Mods: %v}", ev.Type, ev.Rune, ev.Code, ev.Mods)
	}
	return fmt.Sprintf("%v{Code: %v, Mods: %v}", ev.Type, ev.Code, ev.Mods)
}
