// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"io"
	"maps"

	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/logger"
	"github.com/mia-platform/loglane/pkg/transport/hcbridge"
	"github.com/mia-platform/loglane/pkg/transport/metrics"
)

const (
	TransportTypeConsole = "console"
	TransportTypeFile    = "file"
	TransportTypeMetrics = "metrics"
	TransportTypeHclog   = "hclog"
)

// Config holds a logger configuration. Nil fields are left to the logger defaults.
type Config struct {
	Level           *logdata.Level
	Colorize        *bool
	JSON            *bool
	Timestamp       *bool
	TimestampFormat *string
	Prefix          *string
	Context         map[string]any
	// Transports is nil when no source configured them.
	Transports []TransportConfig
}

// TransportConfig describes one transport.
type TransportConfig struct {
	Type    string           `json:"type" yaml:"type"`
	Options TransportOptions `json:"options,omitempty" yaml:"options,omitempty"`
}

// TransportOptions collects the options of every transport type.
type TransportOptions struct {
	Colorize *bool  `json:"colorize,omitempty" yaml:"colorize,omitempty"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	MaxSize  int64  `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`
	MaxFiles int    `json:"maxFiles,omitempty" yaml:"maxFiles,omitempty"`
}

// Sinks holds the destinations needed to build transports, on top of their options.
type Sinks struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Registry prometheus.Registerer
}

// Load reads the environment and, when path is not empty, the YAML file at path.
// Values in the file take precedence over the environment.
func Load(path string) (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return cfg, nil
	}

	fileCfg, err := FromFile(path)
	if err != nil {
		return nil, err
	}

	return cfg.Merge(fileCfg), nil
}

// Merge returns a copy of c where every field set in override replaces the one in c.
// Context maps are merged key by key.
func (c *Config) Merge(override *Config) *Config {
	merged := *c
	if override == nil {
		return &merged
	}

	if override.Level != nil {
		merged.Level = override.Level
	}
	if override.Colorize != nil {
		merged.Colorize = override.Colorize
	}
	if override.JSON != nil {
		merged.JSON = override.JSON
	}
	if override.Timestamp != nil {
		merged.Timestamp = override.Timestamp
	}
	if override.TimestampFormat != nil {
		merged.TimestampFormat = override.TimestampFormat
	}
	if override.Prefix != nil {
		merged.Prefix = override.Prefix
	}
	if override.Transports != nil {
		merged.Transports = override.Transports
	}
	if len(override.Context) > 0 {
		merged.Context = make(map[string]any, len(c.Context)+len(override.Context))
		maps.Copy(merged.Context, c.Context)
		maps.Copy(merged.Context, override.Context)
	}

	return &merged
}

// Options converts the configuration into logger options. Console transports,
// including the default one, write on the sinks streams when they are set.
func (c *Config) Options(sinks Sinks) []logger.Option {
	opts := make([]logger.Option, 0)
	if c.Level != nil {
		opts = append(opts, logger.WithLevel(*c.Level))
	}
	if c.Colorize != nil {
		opts = append(opts, logger.WithColorize(*c.Colorize))
	}
	if c.JSON != nil {
		opts = append(opts, logger.WithJSON(*c.JSON))
	}
	if c.Timestamp != nil {
		opts = append(opts, logger.WithTimestamp(*c.Timestamp))
	}
	if c.TimestampFormat != nil {
		opts = append(opts, logger.WithTimestampFormat(*c.TimestampFormat))
	}
	if c.Prefix != nil {
		opts = append(opts, logger.WithPrefix(*c.Prefix))
	}
	if len(c.Context) > 0 {
		opts = append(opts, logger.WithFields(c.Context))
	}

	switch {
	case c.Transports != nil:
		descriptors := make([]logger.TransportDescriptor, 0, len(c.Transports))
		for _, transport := range c.Transports {
			descriptors = append(descriptors, transport.descriptor(sinks))
		}
		opts = append(opts, logger.WithTransports(descriptors...))
	case sinks.Stdout != nil || sinks.Stderr != nil:
		opts = append(opts, logger.WithTransports(consoleDescriptor(nil, sinks)))
	}

	return opts
}

// descriptor builds the logger descriptor. Unknown types are passed through and
// dropped by the logger.
func (t TransportConfig) descriptor(sinks Sinks) logger.TransportDescriptor {
	switch t.Type {
	case TransportTypeConsole:
		return consoleDescriptor(t.Options.Colorize, sinks)
	case TransportTypeFile:
		return logger.File(t.Options.Path, t.Options.MaxSize, t.Options.MaxFiles)
	case TransportTypeMetrics:
		return logger.Custom(metrics.NewWithRegistry(sinks.Registry))
	case TransportTypeHclog:
		output := sinks.Stderr
		if output == nil {
			output = hclog.DefaultOutput
		}
		return logger.Custom(hcbridge.New(hclog.New(&hclog.LoggerOptions{
			Output: output,
			Level:  hclog.Trace,
		})))
	default:
		return logger.TransportDescriptor{Type: logger.TransportType(t.Type)}
	}
}

func consoleDescriptor(colorize *bool, sinks Sinks) logger.TransportDescriptor {
	return logger.TransportDescriptor{
		Type:     logger.ConsoleTransport,
		Colorize: colorize,
		Stdout:   sinks.Stdout,
		Stderr:   sinks.Stderr,
	}
}

// HasTransport reports whether a transport of type kind is configured.
func (c *Config) HasTransport(kind string) bool {
	for _, transport := range c.Transports {
		if transport.Type == kind {
			return true
		}
	}
	return false
}
