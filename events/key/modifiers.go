// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "strings"

// Modifiers are used as bit flags representing a set of modifier keys.
type Modifiers int64

const (
	// Control is the "Control" (Ctrl) key.
	Control Modifiers = 1 << iota

	// Meta is the system meta key (the "Command" key on macOS
	// and the Windows key on Windows).
	Meta

	// Alt is the "Alt" ("Option" on macOS) key.
	Alt

	// Shift is the "Shift" key.
	Shift
)

var modifierNames = []struct {
	flag Modifiers
	name string
}{{Control, "Control"}, {Meta, "Meta"}, {Alt, "Alt"}, {Shift, "Shift"}}

// HasFlag returns true if all of the given flags are set.
func (m Modifiers) HasFlag(flag Modifiers) bool {
	return m&flag == flag
}

// SetFlag sets or clears the given flags.
func (m *Modifiers) SetFlag(on bool, flag Modifiers) {
	if on {
		*m |= flag
	} else {
		*m &^= flag
	}
}

// String returns the set flags joined by "|", or "" if none.
func (m Modifiers) String() string {
	var names []string
	for _, mn := range modifierNames {
		if m.HasFlag(mn.flag) {
			names = append(names, mn.name)
		}
	}
	return strings.Join(names, "|")
}
