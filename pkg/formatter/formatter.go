// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package formatter

import (
	"strings"
	"sync/atomic"

	"github.com/mia-platform/loglane/pkg/colorutil"
	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/timeutil"
)

// Options configures a Formatter.
type Options struct {
	Colorize        bool
	JSON            bool
	TimestampFormat string
	Timestamp       bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Colorize:        true,
		TimestampFormat: timeutil.DefaultPattern,
	}
}

// Formatter turns a record into a string. Only the JSON flag can change after
// construction.
type Formatter struct {
	colorize        bool
	json            atomic.Bool
	timestampFormat string
	timestamp       bool
}

// New returns a formatter for opts. An empty TimestampFormat falls back to the default pattern.
func New(opts Options) *Formatter {
	if opts.TimestampFormat == "" {
		opts.TimestampFormat = timeutil.DefaultPattern
	}

	f := &Formatter{
		colorize:        opts.Colorize,
		timestampFormat: opts.TimestampFormat,
		timestamp:       opts.Timestamp,
	}
	f.json.Store(opts.JSON)
	return f
}

// Format renders data according to the current mode. It never fails.
func (f *Formatter) Format(data *logdata.Data) string {
	if f.json.Load() {
		return f.formatAsJSON(data)
	}
	return f.formatAsText(data)
}

// SetJSON switches between JSON and text rendering for subsequent calls.
func (f *Formatter) SetJSON(json bool) {
	f.json.Store(json)
}

// Accessors used by child loggers to read the parent's settings.

func (f *Formatter) Colorize() bool          { return f.colorize }
func (f *Formatter) JSON() bool              { return f.json.Load() }
func (f *Formatter) TimestampFormat() string { return f.timestampFormat }
func (f *Formatter) Timestamp() bool         { return f.timestamp }

// Options returns a snapshot of the current configuration.
func (f *Formatter) Options() Options {
	return Options{
		Colorize:        f.colorize,
		JSON:            f.json.Load(),
		TimestampFormat: f.timestampFormat,
		Timestamp:       f.timestamp,
	}
}

func (f *Formatter) formatAsText(data *logdata.Data) string {
	builder := new(strings.Builder)
	if f.timestamp {
		builder.WriteString("[" + timeutil.Format(data.Timestamp, f.timestampFormat) + "] ")
	}

	level := strings.ToUpper(data.Level.String())
	if f.colorize {
		level = colorutil.Colorize(level, data.Level)
	}
	builder.WriteString(level + " - ")

	if data.Prefix != "" {
		builder.WriteString(data.Prefix + " ")
	}

	builder.WriteString(data.Message)

	if data.HasMetadata() {
		builder.WriteString(" ")
		builder.Write(encodeMap(data.Metadata))
	}

	return builder.String()
}

func (f *Formatter) formatAsJSON(data *logdata.Data) string {
	object := newOrderedObject()
	object.set("level", data.Level.String())
	object.set("message", data.Message)
	for _, key := range sortedKeys(data.Metadata) {
		object.set(key, data.Metadata[key])
	}

	if f.timestamp {
		object.set("timestamp", timeutil.ISO(data.Timestamp))
	}

	if data.Prefix != "" {
		object.set("prefix", data.Prefix)
	}

	return string(object.encode())
}
