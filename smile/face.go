// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smile

import (
	"cogentcore.org/glapp/gpu/shape"
	"cogentcore.org/glapp/math32"
)

const (
	// HeadPoints is the number of points on the perimeter of the head.
	HeadPoints = 100

	// HeadRadius is the radius of the head.
	HeadRadius = 0.5

	// MouthPoints is the number of points along the mouth arc.
	MouthPoints = 11

	// MouthRadius is the radius of the mouth arc.
	MouthRadius = 0.4
)

// MouthCenter is the center of the circle the mouth arc lies on.
var MouthCenter = math32.Vec2(0, 0.1)

// Face holds the ranges of each part of the smiley face
// within a shared [shape.List].
type Face struct {
	// Head is the center point followed by the perimeter,
	// drawn as a triangle fan.
	Head shape.Range

	// Eyes are two points.
	Eyes shape.Range

	// Nose is one line segment.
	Nose shape.Range

	// Mouth is the arc drawn as a line strip.
	Mouth shape.Range
}

// NewFace adds the head, eyes, nose and mouth to the list,
// in that order, and returns their ranges.
func NewFace(l *shape.List) Face {
	var f Face
	f.Head = Head(l)
	f.Eyes = Eyes(l)
	f.Nose = Nose(l)
	f.Mouth = Mouth(l)
	return f
}

// Head adds the head disk centered at the origin.
func Head(l *shape.List) shape.Range {
	return shape.Disk(l, math32.Vector2{}, HeadRadius, HeadPoints)
}

// Eyes adds the two eye points, drawn as Points.
func Eyes(l *shape.List) shape.Range {
	return l.Add(math32.Vec2(-0.2, 0.2), math32.Vec2(0.2, 0.2))
}

// Nose adds the vertical nose segment, drawn as Lines.
func Nose(l *shape.List) shape.Range {
	return l.Add(math32.Vec2(0, 0.05), math32.Vec2(0, -0.05))
}

// Mouth adds the lower arc of the smile, from the lower left
// to the lower right.
func Mouth(l *shape.List) shape.Range {
	return shape.Arc(l, MouthCenter, MouthRadius, math32.Pi+math32.Pi/4, 2*math32.Pi-math32.Pi/4, MouthPoints)
}

// Background adds the quad covering the whole viewport.
func Background(l *shape.List) shape.Range {
	return shape.Quad(l, math32.Vec2(-1, -1), math32.Vec2(1, 1))
}
