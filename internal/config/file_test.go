// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/loglane/pkg/logdata"
)

const fullConfig = `level: debug
colorize: false
json: true
timestamp: true
timestampFormat: HH:mm:ss.SSS
prefix: api
context:
  service: billing
  replicas: 3
transports:
  - type: console
    options:
      colorize: true
  - type: file
    options:
      path: /var/log/api.log
      maxSize: 2048
      maxFiles: 5
  - type: metrics
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("full configuration", func(t *testing.T) {
		t.Parallel()
		cfg, err := parse(strings.NewReader(fullConfig))
		require.NoError(t, err)

		require.NotNil(t, cfg.Level)
		assert.Equal(t, logdata.Debug, *cfg.Level)
		assert.False(t, *cfg.Colorize)
		assert.True(t, *cfg.JSON)
		assert.True(t, *cfg.Timestamp)
		assert.Equal(t, "HH:mm:ss.SSS", *cfg.TimestampFormat)
		assert.Equal(t, "api", *cfg.Prefix)
		assert.Equal(t, map[string]any{"service": "billing", "replicas": 3}, cfg.Context)

		colorize := true
		assert.Equal(t, []TransportConfig{
			{Type: TransportTypeConsole, Options: TransportOptions{Colorize: &colorize}},
			{Type: TransportTypeFile, Options: TransportOptions{Path: "/var/log/api.log", MaxSize: 2048, MaxFiles: 5}},
			{Type: TransportTypeMetrics},
		}, cfg.Transports)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		cfg, err := parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := parse(strings.NewReader("levels: info\n"))
		require.ErrorIs(t, err, ErrParsing)
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()
		_, err := parse(strings.NewReader("level: verbose\n"))
		require.ErrorIs(t, err, ErrParsing)
		require.ErrorIs(t, err, logdata.ErrUnknownLevel)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := parse(strings.NewReader("level: [info\n"))
		require.ErrorIs(t, err, ErrParsing)
	})
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	t.Run("reads the file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "loglane.yaml")
		require.NoError(t, os.WriteFile(path, []byte("prefix: worker\n"), 0o600))

		cfg, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "worker", *cfg.Prefix)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
