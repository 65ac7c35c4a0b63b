// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logdata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown log level")

//go:generate ${TOOLS_BIN}/stringer -type=Level -linecomment
type Level int

// Levels are ordered by ascending severity. Silent is a sentinel that never produces output.
const (
	Silent Level = iota // silent
	Boring              // boring
	Debug               // debug
	Info                // info
	Warn                // warn
	Error               // error
)

// AllLevels returns every level in ascending order, Silent included.
func AllLevels() []Level {
	return []Level{Silent, Boring, Debug, Info, Warn, Error}
}

// ParseLevel returns the level matching name, ignoring case.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent":
		return Silent, nil
	case "boring":
		return Boring, nil
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// LevelFromString is like ParseLevel but falls back to Info for unknown names.
func LevelFromString(name string) Level {
	level, _ := ParseLevel(name)
	return level
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= Silent && l <= Error
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = level
	return nil
}
