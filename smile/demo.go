// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smile is the Smile Demo: a textured background and a
// smiley face built from fan, line and point primitives, moved
// around with the keyboard.
package smile

import (
	_ "embed"
	"log/slog"

	"cogentcore.org/glapp/base/errors"
	"cogentcore.org/glapp/events"
	"cogentcore.org/glapp/glapp"
	"cogentcore.org/glapp/gpu"
	"cogentcore.org/glapp/gpu/shape"
)

//go:embed smile.vert
var vertexShader string

//go:embed smile.frag
var fragmentShader string

// Demo is the Smile Demo application. It implements [glapp.App].
type Demo struct {
	Config    *Config
	Transform *Transform
	Scene     Scene
}

// NewDemo returns a new demo with the given config,
// or the defaults if cfg is nil.
func NewDemo(cfg *Config) *Demo {
	if cfg == nil {
		cfg = Defaults()
	}
	return &Demo{Config: cfg, Transform: NewTransform()}
}

// Options returns the window options for the config.
func (d *Demo) Options() *glapp.Options {
	opts := glapp.DefaultOptions()
	opts.Title = d.Config.Title
	opts.Size.X = d.Config.Width
	opts.Size.Y = d.Config.Height
	return opts
}

func (d *Demo) Init(w glapp.Window, gp gpu.GPU) error {
	sc := &d.Scene
	sc.Program = gp.NewProgram("smile")
	if err := sc.Program.Compile(vertexShader, fragmentShader); err != nil {
		return err
	}

	var bg shape.List
	sc.BackgroundRange = Background(&bg)
	sc.Background = gp.NewVertices("background")
	sc.Background.SetVertices(bg)
	sc.Background.Transfer()

	var face shape.List
	sc.Face = NewFace(&face)
	sc.Vertices = gp.NewVertices("face")
	sc.Vertices.SetVertices(face)
	sc.Vertices.Transfer()
	slog.Debug("face", "head", sc.Face.Head, "eyes", sc.Face.Eyes, "nose", sc.Face.Nose, "mouth", sc.Face.Mouth)

	sc.Texture = gp.NewTexture2D("background")
	if err := d.openBackground(sc.Texture); err != nil {
		return err
	}

	gp.SetPointSize(d.Config.PointSize)
	gp.SetLineWidth(d.Config.LineWidth)
	return nil
}

// openBackground loads the configured background image,
// falling back on the checkerboard if it cannot be opened.
func (d *Demo) openBackground(tx gpu.Texture2D) error {
	cfg := d.Config
	if cfg.Background != "" {
		err := errors.Log(tx.Open(cfg.Background, cfg.Transparent))
		if err == nil {
			return nil
		}
	}
	slog.Warn("using checkerboard background", "size", cfg.CheckerSize)
	return tx.SetImage(gpu.Checkerboard(cfg.CheckerSize, cfg.CheckerSize))
}

func (d *Demo) Render(gp gpu.GPU) {
	d.Scene.Render(gp, d.Transform.Matrix)
}

func (d *Demo) HandleKey(w glapp.Window, ev *events.Key) {
	if ev.Type != events.KeyDown {
		return
	}
	switch d.Transform.HandleKey(ev.Rune) {
	case Redraw:
		w.Refresh()
	case Quit:
		w.Close()
	}
}

func (d *Demo) HandleMouse(w glapp.Window, ev *events.Mouse) {
	if ev.Type == events.MouseDown {
		slog.Debug("mouse", "event", ev)
	}
}

func (d *Demo) Tick(w glapp.Window, start, end float32) {}

// Release deletes the GPU resources; it is safe to call
// after a failed or partial Init, and more than once.
func (d *Demo) Release() {
	sc := &d.Scene
	if sc.Program != nil {
		sc.Program.Delete()
		sc.Program = nil
	}
	if sc.Vertices != nil {
		sc.Vertices.Delete()
		sc.Vertices = nil
	}
	if sc.Background != nil {
		sc.Background.Delete()
		sc.Background = nil
	}
	if sc.Texture != nil {
		sc.Texture.Delete()
		sc.Texture = nil
	}
}
