// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package timeutil renders timestamps with moment-like pattern strings.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPattern is the pattern used when none is configured.
const DefaultPattern = "YYYY-MM-DD HH:mm:ss"

// Format replaces the tokens YYYY, MM, DD, HH, mm, ss and SSS in pattern with the
// matching fields of t. Everything else in pattern is copied literally.
func Format(t time.Time, pattern string) string {
	replacer := strings.NewReplacer(
		"YYYY", fmt.Sprintf("%04d", t.Year()),
		"MM", fmt.Sprintf("%02d", int(t.Month())),
		"DD", fmt.Sprintf("%02d", t.Day()),
		"HH", fmt.Sprintf("%02d", t.Hour()),
		"mm", fmt.Sprintf("%02d", t.Minute()),
		"ss", fmt.Sprintf("%02d", t.Second()),
		"SSS", fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond)),
	)

	return replacer.Replace(pattern)
}

// ISO renders t as an ISO-8601 UTC instant with millisecond precision.
func ISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
