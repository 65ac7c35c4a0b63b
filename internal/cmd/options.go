// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"io"

	"github.com/mia-platform/loglane/internal/config"
	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/logger"
)

// options holds everything needed to emit one record.
type options struct {
	level   logdata.Level
	message string
	fields  logger.Fields

	config *config.Config
	stdout io.Writer
	stderr io.Writer
}

// execute builds the logger described by the options, emits the record and
// releases the logger resources.
func (o *options) execute(ctx context.Context) error {
	toolLog := logger.FromContext(ctx)

	log := logger.New(o.config.Options(config.Sinks{Stdout: o.stdout, Stderr: o.stderr})...)
	toolLog.Debug("emitting record", "level", o.level.String(), "transports", len(log.Transports()))

	log.Log(o.level, o.message, o.fields)
	return log.Close()
}
