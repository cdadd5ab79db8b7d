// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/glapp/base/iox/tomlx"
	"cogentcore.org/glapp/base/iox/yamlx"
	"cogentcore.org/glapp/logx"
)

// Config has the settings for the demo, read from a TOML or YAML file.
// Fields missing from the file keep their defaults; invalid sizes
// are replaced with the defaults.
type Config struct {
	// Title is the window title.
	Title string

	// Width and Height are the initial window size.
	Width  int
	Height int

	// Background is the path of the background image.
	// The checkerboard is used if it is empty or cannot be opened.
	Background string

	// Transparent derives the background alpha from its luminance.
	Transparent bool

	// PointSize is the diameter of the eyes in pixels.
	PointSize float32

	// LineWidth is the width of the outline, nose and mouth in pixels.
	LineWidth float32

	// LogLevel is the minimum level of log messages:
	// debug, info, warn or error.
	LogLevel string

	// CheckerSize is the number of squares per side of
	// the fallback checkerboard texture.
	CheckerSize int
}

// Defaults returns the default config.
func Defaults() *Config {
	return &Config{
		Title:       "Smile Demo App",
		Width:       600,
		Height:      600,
		Background:  "bg.png",
		PointSize:   15,
		LineWidth:   10,
		LogLevel:    "info",
		CheckerSize: 8,
	}
}

// OpenConfig reads the config from the given file, starting from
// [Defaults]. Files ending in .yaml or .yml are read as YAML
// (with lower-case keys), and all others as TOML.
func OpenConfig(filename string) (*Config, error) {
	cfg := Defaults()
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yamlx.Open(cfg, filename)
	default:
		err = tomlx.Open(cfg, filename)
	}
	if err != nil {
		return Defaults(), fmt.Errorf("smile.OpenConfig: %w", err)
	}
	cfg.fixup()
	return cfg, nil
}

// fixup replaces zero values with the defaults.
func (cfg *Config) fixup() {
	def := Defaults()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.PointSize <= 0 {
		cfg.PointSize = def.PointSize
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = def.LineWidth
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.CheckerSize <= 0 {
		cfg.CheckerSize = def.CheckerSize
	}
}

// Level returns the log level, or Info if it is invalid.
func (cfg *Config) Level() slog.Level {
	l, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		slog.Warn("invalid log level, using info", "level", cfg.LogLevel)
	}
	return l
}
