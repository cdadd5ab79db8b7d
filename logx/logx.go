// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger,
// writing level-colored lines to standard error.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default is
// [slog.LevelInfo], or Debug / Warn when built with the
// "debug" / "release" build tags.
var UserLevel = &slog.LevelVar{}

func init() {
	UserLevel.Set(defaultUserLevel)
}

// SetDefaultLogger sets the default logger to a [Handler] writing
// to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, termenv.NewOutput(os.Stderr).EnvColorProfile())))
}

// ParseLevel returns the [slog.Level] for the given name
// (debug, info, warn, or error; case-insensitive).
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(name)))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("logx.ParseLevel: %w", err)
	}
	return l, nil
}

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored according to the terminal color profile.
type Handler struct {
	out     io.Writer
	profile termenv.Profile
	mu      *sync.Mutex
	prefix  string
	attrs   string
}

// NewHandler returns a new [Handler] writing to the given writer.
// Use [termenv.Ascii] for plain uncolored output.
func NewHandler(out io.Writer, profile termenv.Profile) *Handler {
	return &Handler{out: out, profile: profile, mu: &sync.Mutex{}}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= UserLevel.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&sb, h.prefix, a)
	}
	nh.attrs = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func (h *Handler) levelString(l slog.Level) string {
	s := termenv.String(l.String())
	switch {
	case l >= slog.LevelError:
		s = s.Foreground(h.profile.Color("1")).Bold()
	case l >= slog.LevelWarn:
		s = s.Foreground(h.profile.Color("3"))
	case l >= slog.LevelInfo:
		s = s.Foreground(h.profile.Color("4"))
	default:
		s = s.Faint()
	}
	if h.profile == termenv.Ascii {
		return l.String()
	}
	return s.String()
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, gp, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
