// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/katalvlaran/sqmatrix/config"
)

// newLogger creates the structured logger for one run.
// With format "auto", a terminal w gets slog.TextHandler and anything else
// (pipes, CI, files) gets slog.JSONHandler.
func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}

	text := format == config.FormatText || (format == config.FormatAuto && isTerminal(w))
	if text {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
