// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/logger"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// envConfig maps the supported environment variables. Unset variables stay nil.
type envConfig struct {
	Level           *string `env:"LOGLANE_LEVEL"`
	Format          *string `env:"LOGLANE_FORMAT"`
	Colorize        *bool   `env:"LOGLANE_COLORIZE"`
	Timestamp       *bool   `env:"LOGLANE_TIMESTAMP"`
	TimestampFormat *string `env:"LOGLANE_TIMESTAMP_FORMAT"`
	Prefix          *string `env:"LOGLANE_PREFIX"`
	FilePath        string  `env:"LOGLANE_FILE"`
	FileMaxSize     int64   `env:"LOGLANE_FILE_MAX_SIZE"`
	FileMaxFiles    int     `env:"LOGLANE_FILE_MAX_FILES"`
}

// FromEnv reads the configuration from the LOGLANE_* environment variables.
// When LOGLANE_FILE is set the logger writes both on the console and on that file.
func FromEnv() (*Config, error) {
	var envVars envConfig
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	return envVars.toConfig()
}

func (e *envConfig) toConfig() (*Config, error) {
	envError := make([]string, 0)
	cfg := &Config{
		Colorize:        e.Colorize,
		Timestamp:       e.Timestamp,
		TimestampFormat: e.TimestampFormat,
		Prefix:          e.Prefix,
	}

	if e.Level != nil {
		level, err := logdata.ParseLevel(*e.Level)
		if err != nil {
			envError = append(envError, "LOGLANE_LEVEL is not a valid level")
		}
		cfg.Level = &level
	}

	if e.Format != nil {
		json, err := parseFormat(*e.Format)
		if err != nil {
			envError = append(envError, "LOGLANE_FORMAT must be text or json")
		}
		cfg.JSON = &json
	}

	if e.FileMaxSize < 0 {
		envError = append(envError, "LOGLANE_FILE_MAX_SIZE must not be negative")
	}
	if e.FileMaxFiles < 0 {
		envError = append(envError, "LOGLANE_FILE_MAX_FILES must not be negative")
	}

	if e.FilePath != "" {
		cfg.Transports = []TransportConfig{
			{Type: TransportTypeConsole},
			{Type: TransportTypeFile, Options: TransportOptions{
				Path:     e.FilePath,
				MaxSize:  e.FileMaxSize,
				MaxFiles: e.FileMaxFiles,
			}},
		}
	}

	if len(envError) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return cfg, nil
}

var errInvalidFormat = errors.New("invalid format")

// parseFormat reports whether format selects JSON output.
func parseFormat(format string) (bool, error) {
	switch logger.Format(strings.ToLower(strings.TrimSpace(format))) {
	case logger.FormatJSON:
		return true, nil
	case logger.FormatText:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", errInvalidFormat, format)
	}
}
