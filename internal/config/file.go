// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mia-platform/loglane/pkg/logdata"
)

var (
	// ErrParsing reports failures that occur while decoding configuration files.
	ErrParsing = errors.New("error parsing")
)

// fileConfig is the YAML layout of a configuration file.
type fileConfig struct {
	Level           *string           `yaml:"level"`
	Colorize        *bool             `yaml:"colorize"`
	JSON            *bool             `yaml:"json"`
	Timestamp       *bool             `yaml:"timestamp"`
	TimestampFormat *string           `yaml:"timestampFormat"`
	Prefix          *string           `yaml:"prefix"`
	Context         map[string]any    `yaml:"context"`
	Transports      []TransportConfig `yaml:"transports"`
}

// FromFile reads a YAML configuration file.
func FromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	defer file.Close()

	cfg, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

func parse(reader io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var raw fileConfig
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrParsing, err)
	}

	cfg := &Config{
		Colorize:        raw.Colorize,
		JSON:            raw.JSON,
		Timestamp:       raw.Timestamp,
		TimestampFormat: raw.TimestampFormat,
		Prefix:          raw.Prefix,
		Context:         raw.Context,
		Transports:      raw.Transports,
	}

	if raw.Level != nil {
		level, err := logdata.ParseLevel(*raw.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParsing, err)
		}
		cfg.Level = &level
	}

	return cfg, nil
}
