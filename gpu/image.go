// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"

	"cogentcore.org/glapp/base/iox/imagex"
	"cogentcore.org/glapp/math32"
)

// ImgCompToUint8 converts a [0,1] color component to 8 bits.
func ImgCompToUint8(val float32) uint8 {
	if val > 1.0 {
		val = 1.0
	}
	if val < 0 {
		val = 0
	}
	return uint8(val * float32(0xff))
}

// ColorFromVector3 returns the opaque color for the given
// [0,1] RGB components.
func ColorFromVector3(v math32.Vector3) color.RGBA {
	return color.RGBA{ImgCompToUint8(v.X), ImgCompToUint8(v.Y), ImgCompToUint8(v.Z), 0xff}
}

// LuminanceAlpha returns an RGBA copy of the given image with each
// alpha set from the color: (R + G + B) / 6, so that black is fully
// transparent and white is half opaque.
func LuminanceAlpha(img image.Image) *image.RGBA {
	out := imagex.CloneAsRGBA(img)
	sz := len(out.Pix)
	for i := 0; i < sz; i += 4 {
		sum := int(out.Pix[i]) + int(out.Pix[i+1]) + int(out.Pix[i+2])
		out.Pix[i+3] = uint8(sum / 6)
	}
	return out
}

// Checkerboard returns a procedural image of the given size with
// alternating yellow and blue pixels, useful as a stand-in texture.
func Checkerboard(width, height int) *image.RGBA {
	yellow := ColorFromVector3(math32.Vec3(1, 1, 0))
	blue := ColorFromVector3(math32.Vec3(0, 0, 1))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x&1)^(y&1) != 0 {
				img.SetRGBA(x, y, yellow)
			} else {
				img.SetRGBA(x, y, blue)
			}
		}
	}
	return img
}
