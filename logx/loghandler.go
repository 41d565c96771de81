// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// userLevelVar tracks [UserLevel] so that handlers created before a
// change of UserLevel still see it after [SetDefaultLogger] is called again.
var userLevelVar slog.LevelVar

// SetDefaultLogger sets the default logger to be a colored text
// handler writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a new text [slog.Handler] writing to the given
// writer, showing messages at or above [UserLevel], with the level
// names colored when the writer is a color-capable terminal.
func NewHandler(w io.Writer) slog.Handler {
	userLevelVar.Set(UserLevel)
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: &userLevelVar,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			level, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelStyle(out, level).String())
			return a
		},
	})
}

// LevelStyle returns the string of the given level styled for the given output.
func LevelStyle(out *termenv.Output, level slog.Level) termenv.Style {
	st := out.String(level.String())
	switch {
	case level >= slog.LevelError:
		return st.Foreground(termenv.ANSIRed).Bold()
	case level >= slog.LevelWarn:
		return st.Foreground(termenv.ANSIYellow)
	case level >= slog.LevelInfo:
		return st.Foreground(termenv.ANSIGreen)
	default:
		return st.Foreground(termenv.ANSIBrightBlack)
	}
}
