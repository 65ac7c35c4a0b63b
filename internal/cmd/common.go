// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/logger"
)

var (
	errNoArguments    = errors.New("no level provided")
	errMissingMessage = errors.New("no message provided")
	errInvalidLevel   = errors.New("invalid level provided")
	errInvalidField   = errors.New("invalid field, expected key=value")
	errInvalidFormat  = errors.New("invalid format, expected text or json")
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errMissingMessage), errors.Is(err, errInvalidLevel):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// validArgsFunc completes the first argument with the level names.
func validArgsFunc() cobra.CompletionFunc {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var comps []string
		if len(args) == 0 {
			for _, level := range logdata.AllLevels() {
				if strings.HasPrefix(level.String(), toComplete) {
					comps = append(comps, level.String())
				}
			}
		}

		return comps, cobra.ShellCompDirectiveNoFileComp
	}
}

// parseFields turns key=value arguments into record fields. A value that is valid
// JSON is decoded, anything else is kept as a string.
func parseFields(args []string) (logger.Fields, error) {
	fields := make(logger.Fields, len(args))
	for _, arg := range args {
		key, rawValue, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidField, arg)
		}

		var value any
		if err := json.Unmarshal([]byte(rawValue), &value); err != nil {
			value = rawValue
		}
		fields[key] = value
	}

	return fields, nil
}
