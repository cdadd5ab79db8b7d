// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"cogentcore.org/glapp/base/iox/imagex"
	"cogentcore.org/glapp/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture2D is the OpenGL implementation of [gpu.Texture2D],
// storing RGBA8 data with linear filtering.
type Texture2D struct {
	init   bool
	handle uint32
	name   string
	size   image.Point

	// Filter is the GL min / mag filter; LINEAR if 0.
	Filter int32
}

func (tx *Texture2D) Name() string {
	return tx.name
}

func (tx *Texture2D) Size() image.Point {
	return tx.size
}

// Handle returns the GPU handle; only valid after SetImage.
func (tx *Texture2D) Handle() uint32 {
	return tx.handle
}

func (tx *Texture2D) Open(path string, transparent bool) error {
	img, _, err := imagex.Open(path)
	if err != nil {
		return fmt.Errorf("glgpu Texture2D Open: %w", err)
	}
	tx.name = filepath.Base(path)
	if transparent {
		img = gpu.LuminanceAlpha(img)
	}
	if err := tx.SetImage(img); err != nil {
		return err
	}
	slog.Info("texture loaded", "file", path, "w", tx.size.X, "h", tx.size.Y)
	return nil
}

func (tx *Texture2D) SetImage(img image.Image) error {
	rgba := imagex.AsRGBA(img)
	if rgba == nil {
		return fmt.Errorf("glgpu Texture2D %s: nil image", tx.name)
	}
	rgba = imagex.FlipY(rgba)
	tx.size = rgba.Rect.Size()
	if !tx.init {
		gl.GenTextures(1, &tx.handle)
		tx.init = true
	}
	filter := tx.Filter
	if filter == 0 {
		filter = gl.LINEAR
	}
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(tx.size.X), int32(tx.size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return ErrCheck("Texture2D SetImage " + tx.name)
}

func (tx *Texture2D) Activate(unit int) {
	if !tx.init {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
}

// Delete deletes the GPU resources associated with this texture.
func (tx *Texture2D) Delete() {
	if !tx.init {
		return
	}
	gl.DeleteTextures(1, &tx.handle)
	tx.handle = 0
	tx.init = false
}
