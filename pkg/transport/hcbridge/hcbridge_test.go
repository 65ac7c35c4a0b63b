// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package hcbridge

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/loglane/pkg/logdata"
)

func TestForwardsToHclog(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	transport := New(hclog.New(&hclog.LoggerOptions{
		JSONFormat: true,
		Output:     buffer,
		Level:      hclog.Trace,
	}))

	require.NoError(t, transport.Write(&logdata.Data{
		Level:    logdata.Warn,
		Message:  "slow query",
		Prefix:   "db",
		Metadata: map[string]any{"ms": 120},
	}, nil))
	require.NoError(t, transport.Write(&logdata.Data{Level: logdata.Boring, Message: "tick"}, nil))

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "warn", first["@level"])
	assert.Equal(t, "slow query", first["@message"])
	assert.Equal(t, "db", first["@module"])
	assert.InDelta(t, 120, first["ms"], 0)

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "trace", second["@level"])
	assert.NotContains(t, second, "@module")
}

func TestConvertedLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, hclog.Trace, convertedLevel(logdata.Boring))
	assert.Equal(t, hclog.Debug, convertedLevel(logdata.Debug))
	assert.Equal(t, hclog.Info, convertedLevel(logdata.Info))
	assert.Equal(t, hclog.Warn, convertedLevel(logdata.Warn))
	assert.Equal(t, hclog.Error, convertedLevel(logdata.Error))
	assert.Equal(t, hclog.Off, convertedLevel(logdata.Silent))
}
