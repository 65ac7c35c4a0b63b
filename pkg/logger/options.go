// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"maps"

	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/timeutil"
)

// ErrorHandler receives the transport failures of a logger, one call per failing transport.
type ErrorHandler func(err error)

// Option configures a Logger. Options that are not given are inherited from the
// parent logger, if any, or take their default value.
type Option func(*options)

type options struct {
	level           *logdata.Level
	colorize        *bool
	json            *bool
	timestamp       *bool
	timestampFormat *string
	prefix          *string
	fields          Fields
	errorHandler    ErrorHandler

	transports    []TransportDescriptor
	transportsSet bool

	parent *Logger
}

// WithLevel sets the severity threshold.
func WithLevel(level logdata.Level) Option {
	return func(o *options) { o.level = &level }
}

// WithColorize enables or disables level colors in text output.
func WithColorize(colorize bool) Option {
	return func(o *options) { o.colorize = &colorize }
}

// WithJSON selects JSON output instead of text.
func WithJSON(json bool) Option {
	return func(o *options) { o.json = &json }
}

// WithTimestamp enables or disables the record timestamp in the output.
func WithTimestamp(timestamp bool) Option {
	return func(o *options) { o.timestamp = &timestamp }
}

// WithTimestampFormat sets the pattern used to render timestamps in text output.
func WithTimestampFormat(pattern string) Option {
	return func(o *options) { o.timestampFormat = &pattern }
}

// WithPrefix sets the prefix written before every message.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = &prefix }
}

// WithFields adds contextual fields to every record of the logger. For a child
// logger they are overlaid on the parent fields.
func WithFields(fields Fields) Option {
	return func(o *options) {
		if o.fields == nil {
			o.fields = make(Fields, len(fields))
		}
		maps.Copy(o.fields, fields)
	}
}

// WithTransports replaces the transports of the logger. Calling it with no
// descriptors creates a logger without transports.
func WithTransports(descriptors ...TransportDescriptor) Option {
	return func(o *options) {
		o.transports = append([]TransportDescriptor(nil), descriptors...)
		o.transportsSet = true
	}
}

// WithErrorHandler sets the function called when a transport fails.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(o *options) { o.errorHandler = handler }
}

// WithParent makes the new logger a child of parent.
func WithParent(parent *Logger) Option {
	return func(o *options) { o.parent = parent }
}

// settings is the fully resolved configuration of a logger.
type settings struct {
	level           logdata.Level
	prefix          string
	timestamp       bool
	colorize        bool
	json            bool
	timestampFormat string
	fields          map[string]any
	errorHandler    ErrorHandler
}

func defaultSettings() settings {
	return settings{
		level:           logdata.Info,
		colorize:        true,
		timestampFormat: timeutil.DefaultPattern,
		errorHandler:    reportToDiagnostics,
	}
}

// resolve merges explicit options with the parent snapshot, or with the defaults
// for a root logger.
func resolve(o *options, parent *settings) settings {
	resolved := defaultSettings()
	if parent != nil {
		resolved = *parent
	}

	if o.level != nil {
		resolved.level = *o.level
	}
	if o.colorize != nil {
		resolved.colorize = *o.colorize
	}
	if o.json != nil {
		resolved.json = *o.json
	}
	if o.timestamp != nil {
		resolved.timestamp = *o.timestamp
	}
	if o.timestampFormat != nil {
		resolved.timestampFormat = *o.timestampFormat
	}
	if o.prefix != nil {
		resolved.prefix = *o.prefix
	}
	if o.errorHandler != nil {
		resolved.errorHandler = o.errorHandler
	}
	resolved.fields = mergeFields(resolved.fields, o.fields)

	return resolved
}
