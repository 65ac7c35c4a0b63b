// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logdata

import (
	"time"
)

// Data is a single log record. It is built once per logging call and shared by
// every transport of the logger, so it must be treated as read-only.
type Data struct {
	Level     Level
	Message   string
	Timestamp time.Time
	// Metadata is nil when the merged context and call-site metadata are empty.
	Metadata map[string]any
	Prefix   string
}

// HasMetadata reports whether the record carries any metadata.
func (d *Data) HasMetadata() bool {
	return len(d.Metadata) > 0
}
