// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package hcbridge implements a transport that forwards records to a hashicorp
// hclog logger, so loglane records can join the output of tools built on hclog.
package hcbridge

import (
	"maps"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/mia-platform/loglane/pkg/formatter"
	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/transport"
)

var _ transport.Transport = &Transport{}

// Transport hands records to an hclog.Logger. The loglane formatter is not used:
// rendering is left to the hclog logger configuration.
type Transport struct {
	log hclog.Logger
}

func New(log hclog.Logger) *Transport {
	return &Transport{log: log}
}

func (t *Transport) Write(data *logdata.Data, _ *formatter.Formatter) error {
	level := convertedLevel(data.Level)
	if level == hclog.Off {
		return nil
	}

	log := t.log
	if data.Prefix != "" {
		log = log.Named(data.Prefix)
	}

	log.Log(level, data.Message, args(data.Metadata)...)
	return nil
}

func convertedLevel(level logdata.Level) hclog.Level {
	switch level {
	case logdata.Boring:
		return hclog.Trace
	case logdata.Debug:
		return hclog.Debug
	case logdata.Info:
		return hclog.Info
	case logdata.Warn:
		return hclog.Warn
	case logdata.Error:
		return hclog.Error
	default:
		return hclog.Off
	}
}

func args(metadata map[string]any) []any {
	keyvals := make([]any, 0, len(metadata)*2)
	for _, key := range slices.Sorted(maps.Keys(metadata)) {
		keyvals = append(keyvals, key, metadata[key])
	}
	return keyvals
}
