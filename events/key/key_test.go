// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeRuneMap(t *testing.T) {
	assert.Equal(t, 'a', CodeRuneMap[CodeA])
	assert.Equal(t, 'q', CodeRuneMap[CodeQ])
	assert.Equal(t, 'z', CodeRuneMap[CodeZ])
	assert.Equal(t, '0', CodeRuneMap[Code0])
	assert.Equal(t, '9', CodeRuneMap[Code9])
	assert.Equal(t, ' ', CodeRuneMap[CodeSpacebar])
	_, ok := CodeRuneMap[CodeEscape]
	assert.False(t, ok)
}

func TestCodesString(t *testing.T) {
	assert.Equal(t, "T", CodeT.String())
	assert.Equal(t, "7", Code7.String())
	assert.Equal(t, "Escape", CodeEscape.String())
	assert.Equal(t, "Codes(1000)", Codes(1000).String())
}

func TestModifiers(t *testing.T) {
	var m Modifiers
	assert.Equal(t, "", m.String())
	m.SetFlag(true, Shift)
	m.SetFlag(true, Control)
	assert.True(t, m.HasFlag(Shift))
	assert.True(t, m.HasFlag(Shift|Control))
	assert.False(t, m.HasFlag(Alt))
	assert.Equal(t, "Control|Shift", m.String())
	m.SetFlag(false, Control)
	assert.Equal(t, "Shift", m.String())
}
