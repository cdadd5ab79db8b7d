// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates 2D vertex data for drawing with
// fan, strip, line and point primitives. Shapes are appended
// to a shared [List], and each one records the [Range] of
// vertices it occupies.
package shape

import (
	"fmt"

	"cogentcore.org/glapp/math32"
)

// List is an ordered, append-only list of 2D vertex positions
// shared by multiple shapes. Insertion order defines the
// draw offsets of each shape.
type List []math32.Vector2

// Len returns the number of vertices in the list.
func (l *List) Len() int {
	return len(*l)
}

// Add appends the given points and returns the range they occupy.
func (l *List) Add(pts ...math32.Vector2) Range {
	rg := Range{Start: len(*l), Count: len(pts)}
	*l = append(*l, pts...)
	return rg
}

// Slice returns the vertices in the given range.
func (l List) Slice(rg Range) []math32.Vector2 {
	return l[rg.Start:rg.End()]
}

// Range is a contiguous slice of a [List] belonging to one shape.
// It is fixed once the shape is added.
type Range struct {
	// Start is the offset of the first vertex.
	Start int

	// Count is the number of vertices.
	Count int
}

// End returns the offset one past the last vertex.
func (rg Range) End() int {
	return rg.Start + rg.Count
}

// Inner returns the range without its first vertex,
// e.g., the perimeter of a [Disk] without its center.
func (rg Range) Inner() Range {
	if rg.Count == 0 {
		return rg
	}
	return Range{Start: rg.Start + 1, Count: rg.Count - 1}
}

func (rg Range) String() string {
	return fmt.Sprintf("[%d:+%d]", rg.Start, rg.Count)
}

// Disk appends a triangle-fan polygon approximating a filled circle:
// the center followed by n perimeter points at angles i*2π/(n-1),
// so that the first and last perimeter points coincide and close
// the fan. The range has n+1 vertices.
func Disk(l *List, center math32.Vector2, radius float32, n int) Range {
	pts := make([]math32.Vector2, 0, n+1)
	pts = append(pts, center)
	for i := 0; i < n; i++ {
		phi := float32(i) * 2 * math32.Pi / float32(n-1)
		pts = append(pts, center.Add(math32.Vector2Polar(phi, radius)))
	}
	return l.Add(pts...)
}

// Arc appends n points along the circular arc of the given radius
// around center, sampled linearly in angle from start to end (radians).
func Arc(l *List, center math32.Vector2, radius, start, end float32, n int) Range {
	pts := make([]math32.Vector2, n)
	for i := range pts {
		t := float32(0)
		if n > 1 {
			t = float32(i) / float32(n-1)
		}
		phi := math32.Lerp(start, end, t)
		pts[i] = center.Add(math32.Vector2Polar(phi, radius))
	}
	return l.Add(pts...)
}

// Quad appends the 4 corners of the axis-aligned rectangle between
// min and max in counter-clockwise order starting at min, suitable
// for a TriangleFan.
func Quad(l *List, min, max math32.Vector2) Range {
	return l.Add(min, math32.Vec2(max.X, min.Y), max, math32.Vec2(min.X, max.Y))
}
