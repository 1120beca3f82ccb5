// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages.
// It is on by default unless NO_COLOR is set in the environment.
var UseColor = !termenv.EnvNoColor()

// output is the terminal output used to render colors.
var output = termenv.NewOutput(os.Stderr)

// LevelColor returns the given string colored according to the given level:
// blue for debug, green for info, yellow for warn and red for error.
// It returns str unchanged if [UseColor] is false.
func LevelColor(level slog.Level, str string) string {
	if !UseColor {
		return str
	}
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = termenv.ANSIRed
	case level >= slog.LevelWarn:
		c = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		c = termenv.ANSIGreen
	default:
		c = termenv.ANSIBlue
	}
	return output.String(str).Foreground(c).String()
}

// NewHandler returns a new text [slog.Handler] writing to w,
// filtered by [UserLevel], with the time omitted and the level
// name colored by [LevelColor].
func NewHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       userLeveler{},
		ReplaceAttr: replaceAttr,
	})
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{}
	case slog.LevelKey:
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		a.Value = slog.StringValue(LevelColor(level, level.String()))
	}
	return a
}

// SetDefaultLogger sets the default logger to be a [NewHandler]
// logger writing to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
