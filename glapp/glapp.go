// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glapp defines the interface between an OpenGL application
// and the window that drives it with input and timer callbacks.
// See package desktop for the glfw implementation.
package glapp

import (
	"image"
	"time"

	"cogentcore.org/glapp/events"
	"cogentcore.org/glapp/gpu"
)

// App is an application driven by a window event loop.
// All methods are called on the main thread with the
// OpenGL context current.
type App interface {
	// Init is called once after the window and context are created,
	// to compile programs and upload resources.
	Init(w Window, gp gpu.GPU) error

	// Render draws one frame. It is called whenever the window
	// has been invalidated with [Window.Refresh].
	Render(gp gpu.GPU)

	// HandleKey is called for every key press, repeat and release.
	HandleKey(w Window, ev *events.Key)

	// HandleMouse is called for mouse button and movement events.
	HandleMouse(w Window, ev *events.Mouse)

	// Tick is called once per loop iteration with the elapsed
	// seconds at the previous and the current tick.
	Tick(w Window, start, end float32)

	// Release frees all GPU resources held by the app. It is
	// called exactly once when Run returns, including after a
	// failed Init.
	Release()
}

// Window is the view of the window given to an [App].
type Window interface {
	// Refresh requests a redraw on the next loop iteration.
	Refresh()

	// Close requests the window to close, ending the event loop.
	Close()

	// Size returns the framebuffer size in pixels.
	Size() image.Point

	// Elapsed returns the number of seconds since Run started.
	Elapsed() float32

	// KeyPressed returns whether the key generating the given rune
	// is currently held down (case-insensitive).
	KeyPressed(r rune) bool
}

// Options are the options for creating the window.
type Options struct {
	// Title is the window title.
	Title string

	// Size is the initial size of the window in screen coordinates.
	Size image.Point

	// TickInterval is the maximum time to wait for events
	// before calling [App.Tick].
	TickInterval time.Duration

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool
}

// DefaultOptions returns the default window options.
func DefaultOptions() *Options {
	return &Options{
		Title:        "glapp",
		Size:         image.Pt(600, 600),
		TickInterval: time.Second / 60,
		VSync:        true,
	}
}

// Fixup fills in any zero values from the defaults.
func (o *Options) Fixup() {
	def := DefaultOptions()
	if o.Title == "" {
		o.Title = def.Title
	}
	if o.Size.X <= 0 || o.Size.Y <= 0 {
		o.Size = def.Size
	}
	if o.TickInterval <= 0 {
		o.TickInterval = def.TickInterval
	}
}
