// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// diagnostics reports problems of the logging pipeline itself. It cannot use a
// loglane logger, since the failing transport may be the one it would write to.
var diagnostics = hclog.New(&hclog.LoggerOptions{
	Name:   "loglane",
	Output: os.Stderr,
	Level:  hclog.Warn,
})

// reportToDiagnostics is the default ErrorHandler.
func reportToDiagnostics(err error) {
	diagnostics.Warn("log transport failed", "error", err)
}
