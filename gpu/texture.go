// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "image"

// Texture2D manages a 2D RGBA texture, including loading
// from an image file and activating on the GPU.
type Texture2D interface {
	// Name returns the name of the texture (the file name
	// when loaded with Open).
	Name() string

	// Open loads the texture image from the given file.
	// If transparent is true, alpha is derived from the RGB
	// luminance with [LuminanceAlpha].
	Open(path string, transparent bool) error

	// SetImage sets the texture from the given image and
	// uploads it to the GPU.
	SetImage(img image.Image) error

	// Size returns the size of the image.
	Size() image.Point

	// Activate binds the texture to the given texture unit (0-31).
	Activate(unit int)

	// Delete deletes the GPU resources for the texture.
	Delete()
}
