// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/mia-platform/loglane/internal/config"
	"github.com/mia-platform/loglane/internal/server"
	"github.com/mia-platform/loglane/pkg/logger"
	"github.com/mia-platform/loglane/pkg/transport/metrics"
)

// serveFlags collects the CLI options of the serve command.
type serveFlags struct {
	configPath string
}

// addFlags registers the CLI flags on cmd.
func (f *serveFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, configFlagName, configFlagShort, "", configFlagUsage)
}

// toOptions loads the configuration and builds the serveOptions.
func (f *serveFlags) toOptions(cmd *cobra.Command) (*serveOptions, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	return &serveOptions{
		config: cfg,
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
	}, nil
}

// serveOptions holds everything needed to run the records server.
type serveOptions struct {
	config *config.Config
	stdout io.Writer
	stderr io.Writer
}

// logger builds the records logger. A metrics transport on registry is always present,
// either from the configuration or appended here.
func (o *serveOptions) logger(registry *prometheus.Registry) *logger.Logger {
	log := logger.New(o.config.Options(config.Sinks{Stdout: o.stdout, Stderr: o.stderr, Registry: registry})...)
	if !o.config.HasTransport(config.TransportTypeMetrics) {
		log.AddTransport(metrics.NewWithRegistry(registry))
	}
	return log
}

// execute runs the server until ctx is done.
func (o *serveOptions) execute(ctx context.Context) error {
	toolLog := logger.FromContext(ctx)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	log := o.logger(registry)
	srv, err := server.NewServer(log, registry)
	if err != nil {
		return errors.Join(err, log.Close())
	}

	toolLog.Info("starting server", "address", srv.Address())
	srv.StartAsync(ctx)
	<-ctx.Done()

	toolLog.Info("stopping server")
	return errors.Join(srv.Stop(), log.Close())
}
