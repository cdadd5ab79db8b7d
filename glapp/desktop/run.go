// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop runs a [glapp.App] in a glfw window with an
// OpenGL 3.3 core context.
package desktop

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"time"

	"cogentcore.org/glapp/events"
	"cogentcore.org/glapp/glapp"
	"cogentcore.org/glapp/gpu/glgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw and OpenGL must be used from the main thread.
	runtime.LockOSThread()
}

// Run creates the window and its OpenGL 3.3 core context, calls
// [glapp.App.Init], and runs the event loop until the window is closed.
// It must be called from the main goroutine. opts may be nil.
func Run(app glapp.App, opts *glapp.Options) error {
	if opts == nil {
		opts = glapp.DefaultOptions()
	}
	opts.Fixup()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("desktop.Run: failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("desktop.Run: failed to create window: %w", err)
	}
	defer glw.Destroy()
	glw.MakeContextCurrent()
	defer app.Release()
	if opts.VSync {
		glfw.SwapInterval(1)
	}

	gp, err := glgpu.Init()
	if err != nil {
		return err
	}
	w := &window{glw: glw, app: app, start: time.Now()}
	if err := app.Init(w, gp); err != nil {
		return fmt.Errorf("desktop.Run: app Init: %w", err)
	}
	w.setCallbacks()
	w.invalid = true
	slog.Info("window opened", "title", opts.Title, "size", w.Size())

	timeout := opts.TickInterval.Seconds()
	for !glw.ShouldClose() {
		glfw.WaitEventsTimeout(timeout)
		now := w.Elapsed()
		app.Tick(w, w.lastTick, now)
		w.lastTick = now
		if w.invalid && !glw.ShouldClose() {
			w.invalid = false
			gp.Viewport(w.Size())
			app.Render(gp)
			glw.SwapBuffers()
		}
	}
	slog.Info("window closed", "title", opts.Title, "elapsed", w.Elapsed())
	return nil
}

// window implements [glapp.Window] on a glfw window.
type window struct {
	glw      *glfw.Window
	app      glapp.App
	start    time.Time
	lastTick float32

	// invalid is set when a redraw is needed.
	invalid bool

	// mouse state for move events
	mousePos    image.Point
	mouseButton events.Buttons
}

func (w *window) Refresh() {
	w.invalid = true
	glfw.PostEmptyEvent()
}

func (w *window) Close() {
	w.glw.SetShouldClose(true)
	glfw.PostEmptyEvent()
}

func (w *window) Size() image.Point {
	x, y := w.glw.GetFramebufferSize()
	return image.Pt(x, y)
}

func (w *window) Elapsed() float32 {
	return float32(time.Since(w.start).Seconds())
}

func (w *window) KeyPressed(r rune) bool {
	k, ok := runeKey(r)
	if !ok {
		return false
	}
	return w.glw.GetKey(k) == glfw.Press
}

func (w *window) setCallbacks() {
	w.glw.SetKeyCallback(w.keyEvent)
	w.glw.SetCharModsCallback(w.charEvent)
	w.glw.SetMouseButtonCallback(w.mouseButtonEvent)
	w.glw.SetCursorPosCallback(w.cursorPosEvent)
	w.glw.SetFramebufferSizeCallback(func(gw *glfw.Window, width, height int) {
		w.invalid = true
	})
	w.glw.SetRefreshCallback(func(gw *glfw.Window) {
		w.invalid = true
	})
}

// physical key
func (w *window) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	ev := keyEvent(ky, action, mod)
	if ev == nil {
		return
	}
	slog.Debug("key event", "event", ev)
	w.app.HandleKey(w, ev)
}

// char input
func (w *window) charEvent(gw *glfw.Window, char rune, mod glfw.ModifierKey) {
	ev := charEvent(char, mod)
	slog.Debug("char event", "event", ev)
	w.app.HandleKey(w, ev)
}

func (w *window) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	but := events.Left
	switch button {
	case glfw.MouseButtonMiddle:
		but = events.Middle
	case glfw.MouseButtonRight:
		but = events.Right
	}
	typ := events.MouseDown
	w.mouseButton = but
	if action == glfw.Release {
		typ = events.MouseUp
		w.mouseButton = events.NoButton
	}
	x, y := gw.GetCursorPos()
	w.mousePos = image.Pt(int(x), int(y))
	w.app.HandleMouse(w, events.NewMouse(typ, but, w.mousePos, glfwMods(mod)))
}

func (w *window) cursorPosEvent(gw *glfw.Window, x, y float64) {
	where := image.Pt(int(x), int(y))
	prev := w.mousePos
	w.mousePos = where
	w.app.HandleMouse(w, events.NewMouseMove(w.mouseButton, where, prev, 0))
}
