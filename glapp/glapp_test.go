// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapp

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsFixup(t *testing.T) {
	o := &Options{Title: "Smile"}
	o.Fixup()
	assert.Equal(t, "Smile", o.Title)
	assert.Equal(t, image.Pt(600, 600), o.Size)
	assert.Equal(t, time.Second/60, o.TickInterval)

	o = &Options{Size: image.Pt(800, 0), TickInterval: time.Second}
	o.Fixup()
	assert.Equal(t, "glapp", o.Title)
	assert.Equal(t, image.Pt(600, 600), o.Size)
	assert.Equal(t, time.Second, o.TickInterval)
}
