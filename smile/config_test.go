// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smile

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	fn := filepath.Join(t.TempDir(), "smile.toml")
	require.NoError(t, os.WriteFile(fn, []byte(text), 0666))
	return fn
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "Smile Demo App", cfg.Title)
	assert.Equal(t, 600, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, "bg.png", cfg.Background)
	assert.False(t, cfg.Transparent)
	assert.Equal(t, float32(15), cfg.PointSize)
	assert.Equal(t, float32(10), cfg.LineWidth)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestOpenConfig(t *testing.T) {
	fn := writeConfig(t, `
Title = "Smile"
Background = "face.jpg"
Transparent = true
PointSize = 20.0
LogLevel = "debug"
`)
	cfg, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "Smile", cfg.Title)
	assert.Equal(t, "face.jpg", cfg.Background)
	assert.True(t, cfg.Transparent)
	assert.Equal(t, float32(20), cfg.PointSize)
	assert.Equal(t, float32(10), cfg.LineWidth)
	assert.Equal(t, 600, cfg.Width)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestOpenConfigFixup(t *testing.T) {
	fn := writeConfig(t, `
Width = 0
LineWidth = -1.0
Background = ""
`)
	cfg, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Width)
	assert.Equal(t, float32(10), cfg.LineWidth)
	assert.Equal(t, "", cfg.Background)
}

func TestOpenConfigErrors(t *testing.T) {
	cfg, err := OpenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	assert.Equal(t, Defaults(), cfg)

	_, err = OpenConfig(writeConfig(t, `Unknown = 1`))
	assert.Error(t, err)

	_, err = OpenConfig(writeConfig(t, `Width = "wide"`))
	assert.Error(t, err)
}

func TestConfigLevel(t *testing.T) {
	cfg := Defaults()
	cfg.LogLevel = "WARN"
	assert.Equal(t, slog.LevelWarn, cfg.Level())
	cfg.LogLevel = "loud"
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestOpenConfigYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "smile.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("title: Smile\nlinewidth: 4\ntransparent: true\n"), 0666))
	cfg, err := OpenConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "Smile", cfg.Title)
	assert.Equal(t, float32(4), cfg.LineWidth)
	assert.True(t, cfg.Transparent)
	assert.Equal(t, float32(15), cfg.PointSize)

	require.NoError(t, os.WriteFile(fn, []byte("Colour: red\n"), 0666))
	_, err = OpenConfig(fn)
	assert.Error(t, err)
}
