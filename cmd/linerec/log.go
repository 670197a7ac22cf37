package main

import (
	"io"
	"log/slog"

	"github.com/pamburus/ansitty"
	"github.com/pamburus/slogx"
	"github.com/pamburus/slogx/slogtext"
	"github.com/pamburus/slogx/slogtext/themes"
)

func newLogger(w io.Writer, verbose bool) *slogx.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	color := slogtext.ColorNever
	if ansitty.Enable(w) {
		color = slogtext.ColorAlways
	}

	return slogx.New(slogtext.NewHandler(w,
		slogtext.WithLevel(level),
		slogtext.WithColor(color),
		slogtext.WithTheme(themes.Fancy()),
	)).WithSource(false)
}
