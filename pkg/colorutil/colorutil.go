// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package colorutil maps log levels to terminal colors.
package colorutil

import (
	"regexp"

	"github.com/fatih/color"

	"github.com/mia-platform/loglane/pkg/logdata"
)

var (
	palette = map[logdata.Level]*color.Color{
		logdata.Boring: forced(color.FgHiBlack),
		logdata.Debug:  forced(color.FgCyan),
		logdata.Info:   forced(color.FgGreen),
		logdata.Warn:   forced(color.FgYellow),
		logdata.Error:  forced(color.FgRed),
	}

	ansiSequence = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
)

// forced returns a color that ignores the NO_COLOR and terminal detection of the
// color package: whether to colorize is decided by the formatter and transports.
func forced(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// Colorize wraps text in the ANSI color assigned to level.
// Levels without a color are returned unchanged.
func Colorize(text string, level logdata.Level) string {
	c, ok := palette[level]
	if !ok {
		return text
	}

	return c.Sprint(text)
}

// Strip removes every ANSI escape sequence from text.
func Strip(text string) string {
	return ansiSequence.ReplaceAllString(text, "")
}
