// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mia-platform/loglane/internal/config"
	"github.com/mia-platform/loglane/pkg/logdata"
)

const (
	configFlagName  = "config"
	configFlagShort = "c"
	configFlagUsage = "Path to a YAML configuration file"

	formatFlagName  = "format"
	formatFlagUsage = "Output format of the record (text or json)"

	prefixFlagName  = "prefix"
	prefixFlagUsage = "Prefix tag added to the record"

	timestampFlagName  = "timestamp"
	timestampFlagUsage = "Include the timestamp in the record"

	fileFlagName  = "file"
	fileFlagUsage = "Also write the record on this file"
)

// flags collects the CLI options of the emit command.
type flags struct {
	configPath string
	format     string
	prefix     string
	timestamp  bool
	file       string
}

// addFlags registers the CLI flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, configFlagName, configFlagShort, "", configFlagUsage)
	cmd.Flags().StringVar(&f.format, formatFlagName, "", formatFlagUsage)
	cmd.Flags().StringVar(&f.prefix, prefixFlagName, "", prefixFlagUsage)
	cmd.Flags().BoolVar(&f.timestamp, timestampFlagName, false, timestampFlagUsage)
	cmd.Flags().StringVar(&f.file, fileFlagName, "", fileFlagUsage)
}

// toOptions builds an options instance from the parsed flags and CLI arguments.
// Only the flags explicitly set on the command line override the loaded configuration.
func (f *flags) toOptions(cmd *cobra.Command, args []string) (*options, error) {
	switch len(args) {
	case 0:
		return nil, errNoArguments
	case 1:
		return nil, errMissingMessage
	}

	level, err := logdata.ParseLevel(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidLevel, args[0])
	}

	fields, err := parseFields(args[2:])
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed(formatFlagName) {
		json, err := formatToJSON(f.format)
		if err != nil {
			return nil, err
		}
		cfg.JSON = &json
	}
	if changed(prefixFlagName) {
		cfg.Prefix = &f.prefix
	}
	if changed(timestampFlagName) {
		cfg.Timestamp = &f.timestamp
	}
	if changed(fileFlagName) {
		cfg.Transports = []config.TransportConfig{
			{Type: config.TransportTypeConsole},
			{Type: config.TransportTypeFile, Options: config.TransportOptions{Path: f.file}},
		}
	}

	return &options{
		level:   level,
		message: args[1],
		fields:  fields,
		config:  cfg,
		stdout:  cmd.OutOrStdout(),
		stderr:  cmd.ErrOrStderr(),
	}, nil
}

func formatToJSON(format string) (bool, error) {
	switch format {
	case "json":
		return true, nil
	case "text":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", errInvalidFormat, format)
	}
}
