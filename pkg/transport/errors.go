// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package transport

import (
	"errors"
	"fmt"

	"github.com/mia-platform/loglane/pkg/formatter"
	"github.com/mia-platform/loglane/pkg/logdata"
)

// ErrTransportPanic is wrapped by TransportError when a transport panicked instead of returning.
var ErrTransportPanic = errors.New("transport panicked")

// Ensure TransportError implements the error interface.
var _ error = &TransportError{}

// TransportError reports the failure of one transport while fanning out a record.
type TransportError struct {
	// Index is the position of the transport in the logger transport list.
	Index int
	// Transport is the failing transport.
	Transport Transport
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %d (%T): %s", e.Index, e.Transport, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SafeWrite calls t.Write and converts a panic into an error wrapping ErrTransportPanic.
func SafeWrite(t Transport, data *logdata.Data, f *formatter.Formatter) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTransportPanic, r)
		}
	}()

	return t.Write(data, f)
}
