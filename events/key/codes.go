// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines physical key codes and modifier flags.
package key

import "fmt"

// Codes is the identity of a physical key, independent of
// the keyboard layout and modifiers.
type Codes int32

const (
	CodeUnknown Codes = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeReturnEnter
	CodeEscape
	CodeBackspace
	CodeTab
	CodeSpacebar
	CodeHyphenMinus
	CodeEqualSign
	CodeComma
	CodeFullStop
	CodeSlash

	CodeRightArrow
	CodeLeftArrow
	CodeDownArrow
	CodeUpArrow

	CodeLeftControl
	CodeLeftShift
	CodeLeftAlt
	CodeLeftMeta
	CodeRightControl
	CodeRightShift
	CodeRightAlt
	CodeRightMeta

	CodesN
)

// CodeRuneMap is the map from key codes to the lower-case runes
// they generate on a US keyboard without modifiers.
var CodeRuneMap = map[Codes]rune{}

func init() {
	for c := CodeA; c <= CodeZ; c++ {
		CodeRuneMap[c] = 'a' + rune(c-CodeA)
	}
	for c := Code0; c <= Code9; c++ {
		CodeRuneMap[c] = '0' + rune(c-Code0)
	}
	CodeRuneMap[CodeReturnEnter] = '\n'
	CodeRuneMap[CodeTab] = '\t'
	CodeRuneMap[CodeSpacebar] = ' '
	CodeRuneMap[CodeHyphenMinus] = '-'
	CodeRuneMap[CodeEqualSign] = '='
	CodeRuneMap[CodeComma] = ','
	CodeRuneMap[CodeFullStop] = '.'
	CodeRuneMap[CodeSlash] = '/'
}

var codesNames = map[Codes]string{
	CodeUnknown:      "Unknown",
	CodeReturnEnter:  "ReturnEnter",
	CodeEscape:       "Escape",
	CodeBackspace:    "Backspace",
	CodeTab:          "Tab",
	CodeSpacebar:     "Spacebar",
	CodeHyphenMinus:  "HyphenMinus",
	CodeEqualSign:    "EqualSign",
	CodeComma:        "Comma",
	CodeFullStop:     "FullStop",
	CodeSlash:        "Slash",
	CodeRightArrow:   "RightArrow",
	CodeLeftArrow:    "LeftArrow",
	CodeDownArrow:    "DownArrow",
	CodeUpArrow:      "UpArrow",
	CodeLeftControl:  "LeftControl",
	CodeLeftShift:    "LeftShift",
	CodeLeftAlt:      "LeftAlt",
	CodeLeftMeta:     "LeftMeta",
	CodeRightControl: "RightControl",
	CodeRightShift:   "RightShift",
	CodeRightAlt:     "RightAlt",
	CodeRightMeta:    "RightMeta",
}

func (c Codes) String() string {
	switch {
	case c >= CodeA && c <= CodeZ:
		return string('A' + rune(c-CodeA))
	case c >= Code0 && c <= Code9:
		return string('0' + rune(c-Code0))
	}
	if nm, ok := codesNames[c]; ok {
		return nm
	}
	return fmt.Sprintf("Codes(%d)", int32(c))
}
