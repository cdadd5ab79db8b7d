// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat("psd")
	assert.Error(t, err)
	assert.Equal(t, "WebP", WebP.String())
}

func twoRows() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 255, 255})
	return img
}

func TestOpen(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, twoRows()))
	fn := filepath.Join(t.TempDir(), "bg.png")
	require.NoError(t, os.WriteFile(fn, buf.Bytes(), 0o644))

	img, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, image.Pt(2, 2), img.Bounds().Size())

	_, _, err = Open(filepath.Join(t.TempDir(), "none.png"))
	assert.Error(t, err)
}

func TestAsRGBA(t *testing.T) {
	img := twoRows()
	assert.Same(t, img, AsRGBA(img))

	gray := image.NewGray(image.Rect(3, 3, 5, 5))
	gray.SetGray(3, 3, color.Gray{200})
	rgba := AsRGBA(gray)
	assert.Equal(t, image.Rect(0, 0, 2, 2), rgba.Rect)
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, rgba.RGBAAt(0, 0))
	assert.Nil(t, AsRGBA(nil))
}

func TestFlipY(t *testing.T) {
	fl := FlipY(twoRows())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, fl.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, fl.RGBAAt(1, 1))
}
