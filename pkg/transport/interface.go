// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transport

import (
	"github.com/mia-platform/loglane/pkg/formatter"
	"github.com/mia-platform/loglane/pkg/logdata"
)

// Transport delivers a record to a sink. Implementations must not modify data.
// The returned error reports I/O failures only, rendering never fails.
type Transport interface {
	Write(data *logdata.Data, f *formatter.Formatter) error
}

// Func adapts a plain function to the Transport interface.
type Func func(data *logdata.Data, f *formatter.Formatter) error

// Write calls fn(data, f).
func (fn Func) Write(data *logdata.Data, f *formatter.Formatter) error {
	return fn(data, f)
}
