// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/loglane/internal/config"
	"github.com/mia-platform/loglane/pkg/transport/metrics"
)

func TestServeOptionsLogger(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		transports         []config.TransportConfig
		expectedTransports int
	}{
		"metrics transport appended to the default console": {
			expectedTransports: 2,
		},
		"metrics transport from the configuration is not duplicated": {
			transports: []config.TransportConfig{
				{Type: config.TransportTypeConsole},
				{Type: config.TransportTypeMetrics},
			},
			expectedTransports: 2,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			registry := prometheus.NewRegistry()
			opts := &serveOptions{
				config: &config.Config{Transports: test.transports},
				stdout: new(bytes.Buffer),
				stderr: new(bytes.Buffer),
			}

			log := opts.logger(registry)
			transports := log.Transports()
			require.Len(t, transports, test.expectedTransports)

			counter, ok := transports[len(transports)-1].(*metrics.Transport)
			require.True(t, ok)

			log.Info("ready")
			assert.InDelta(t, 1, testutil.ToFloat64(counter.Records.WithLabelValues("info", "")), 0)
			assert.Equal(t, 1, testutil.CollectAndCount(registry, "loglane_records_total"))
		})
	}
}

func TestServeCmdFlags(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "loglane.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("prefix: api\n"), 0o600))

	cmd := ServeCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-c", configPath}))

	flags := &serveFlags{configPath: configPath}
	opts, err := flags.toOptions(cmd)
	require.NoError(t, err)
	assert.Equal(t, "api", *opts.config.Prefix)

	flags.configPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = flags.toOptions(cmd)
	require.ErrorIs(t, err, os.ErrNotExist)
}
