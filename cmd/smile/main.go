// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command smile runs the Smile Demo. Keys: T translate, S scale,
// R rotate, I reset, Q quit. Settings are read from smile.toml
// or smile.yaml in the current directory if either exists.
package main

import (
	"io/fs"
	"log/slog"
	"os"

	"cogentcore.org/glapp/base/errors"
	"cogentcore.org/glapp/glapp/desktop"
	"cogentcore.org/glapp/logx"
	"cogentcore.org/glapp/smile"
)

var configFiles = []string{"smile.toml", "smile.yaml"}

func main() {
	logx.SetDefaultLogger()
	cfg := smile.Defaults()
	for _, fn := range configFiles {
		_, err := os.Stat(fn)
		if err == nil {
			cfg = errors.Log1(smile.OpenConfig(fn))
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			errors.Log(err)
		}
	}
	logx.UserLevel.Set(cfg.Level())
	slog.Info("starting", "title", cfg.Title, "background", cfg.Background)

	d := smile.NewDemo(cfg)
	if errors.Log(desktop.Run(d, d.Options())) != nil {
		os.Exit(1)
	}
}
