// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mia-platform/loglane/pkg/logdata"
)

func TestColorize(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		level    logdata.Level
		expected string
	}{
		"boring is gray":            {level: logdata.Boring, expected: "\x1b[90mBORING\x1b[0m"},
		"debug is cyan":             {level: logdata.Debug, expected: "\x1b[36mBORING\x1b[0m"},
		"info is green":             {level: logdata.Info, expected: "\x1b[32mBORING\x1b[0m"},
		"warn is yellow":            {level: logdata.Warn, expected: "\x1b[33mBORING\x1b[0m"},
		"error is red":              {level: logdata.Error, expected: "\x1b[31mBORING\x1b[0m"},
		"silent passes through":     {level: logdata.Silent, expected: "BORING"},
		"unknown level passes thru": {level: logdata.Level(77), expected: "BORING"},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, Colorize("BORING", test.level))
		})
	}
}

func TestStrip(t *testing.T) {
	t.Parallel()

	colored := Colorize("WARN", logdata.Warn) + " - careful \x1b[1;31mbold\x1b[0m"
	assert.Equal(t, "WARN - careful bold", Strip(colored))
	assert.Equal(t, "plain", Strip("plain"))
}
