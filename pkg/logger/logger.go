// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"io"
	"maps"
	"slices"
	"sync/atomic"
	"time"

	"github.com/mia-platform/loglane/pkg/formatter"
	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/transport"
)

// Format selects the rendering mode of a logger.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Logger is a node of the logger tree. It is safe for concurrent use.
type Logger struct {
	level        atomic.Int64
	prefix       string
	fields       map[string]any
	formatter    *formatter.Formatter
	errorHandler ErrorHandler

	transports       *transportList
	sharedTransports bool
}

// New creates a logger. With WithParent, every option not given is taken from
// the parent as it is at this moment.
func New(opts ...Option) *Logger {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var parent *settings
	if o.parent != nil {
		snapshot := o.parent.settings()
		parent = &snapshot
	}
	resolved := resolve(o, parent)

	l := &Logger{
		prefix:       resolved.prefix,
		fields:       resolved.fields,
		errorHandler: resolved.errorHandler,
		formatter: formatter.New(formatter.Options{
			Colorize:        resolved.colorize,
			JSON:            resolved.json,
			TimestampFormat: resolved.timestampFormat,
			Timestamp:       resolved.timestamp,
		}),
	}
	l.level.Store(int64(resolved.level))

	switch {
	case o.transportsSet:
		l.transports = newTransportList(buildTransports(o.transports, resolved))
	case o.parent != nil:
		l.transports = o.parent.transports
		l.sharedTransports = true
	default:
		l.transports = newTransportList(buildTransports(defaultDescriptors(), resolved))
	}

	return l
}

// Discard returns a logger without transports.
func Discard() *Logger {
	return New(WithTransports(), WithLevel(logdata.Silent))
}

// settings returns the current effective configuration, used as the parent snapshot of a child.
func (l *Logger) settings() settings {
	formatterOptions := l.formatter.Options()
	return settings{
		level:           l.Level(),
		prefix:          l.prefix,
		timestamp:       formatterOptions.Timestamp,
		colorize:        formatterOptions.Colorize,
		json:            formatterOptions.JSON,
		timestampFormat: formatterOptions.TimestampFormat,
		fields:          l.fields,
		errorHandler:    l.errorHandler,
	}
}

// CreateChild returns a new logger whose unset options are inherited from l.
func (l *Logger) CreateChild(opts ...Option) *Logger {
	return New(append(slices.Clone(opts), WithParent(l))...)
}

// ShouldLog reports whether a record at level passes the threshold.
// Levels outside the declared set never pass.
func (l *Logger) ShouldLog(level logdata.Level) bool {
	threshold := l.Level()
	if threshold == logdata.Silent || level == logdata.Silent || !level.Valid() {
		return false
	}
	return level >= threshold
}

// Log sends a record to every transport, in order, if level passes the threshold.
// args are alternating key/value pairs or Fields, and override the logger fields.
// A failing transport is reported to the error handler and does not stop the others.
func (l *Logger) Log(level logdata.Level, msg string, args ...any) {
	if !l.ShouldLog(level) {
		return
	}

	data := &logdata.Data{
		Level:     level,
		Message:   msg,
		Timestamp: time.Now(),
		Metadata:  mergeFields(l.fields, argsToFields(args)),
		Prefix:    l.prefix,
	}

	for i, t := range l.transports.snapshot() {
		if err := transport.SafeWrite(t, data, l.formatter); err != nil {
			l.errorHandler(&transport.TransportError{Index: i, Transport: t, Err: err})
		}
	}
}

// Boring emits a message and key/value pairs at the BORING level.
func (l *Logger) Boring(msg string, args ...any) {
	l.Log(logdata.Boring, msg, args...)
}

// Debug emits a message and key/value pairs at the DEBUG level.
func (l *Logger) Debug(msg string, args ...any) {
	l.Log(logdata.Debug, msg, args...)
}

// Info emits a message and key/value pairs at the INFO level.
func (l *Logger) Info(msg string, args ...any) {
	l.Log(logdata.Info, msg, args...)
}

// Warn emits a message and key/value pairs at the WARN level.
func (l *Logger) Warn(msg string, args ...any) {
	l.Log(logdata.Warn, msg, args...)
}

// Error emits a message and key/value pairs at the ERROR level.
func (l *Logger) Error(msg string, args ...any) {
	l.Log(logdata.Error, msg, args...)
}

// Silent never emits anything.
func (l *Logger) Silent(msg string, args ...any) {
	l.Log(logdata.Silent, msg, args...)
}

// SetLevel updates the severity threshold. Existing children are not affected.
func (l *Logger) SetLevel(level logdata.Level) {
	l.level.Store(int64(level))
}

// SetFormat switches the formatter of this logger between text and JSON.
// Any value other than FormatJSON selects text.
func (l *Logger) SetFormat(format Format) {
	l.formatter.SetJSON(format == FormatJSON)
}

// AddTransport appends t to the transport list. When the list is shared with the
// parent or with children, they all start using t.
func (l *Logger) AddTransport(t transport.Transport) {
	if t == nil {
		return
	}
	l.transports.add(t)
}

func (l *Logger) Level() logdata.Level {
	return logdata.Level(l.level.Load())
}

func (l *Logger) Prefix() string {
	return l.prefix
}

// Fields returns a copy of the effective contextual fields.
func (l *Logger) Fields() Fields {
	return maps.Clone(l.fields)
}

func (l *Logger) Formatter() *formatter.Formatter {
	return l.formatter
}

// Transports returns a copy of the current transport list.
func (l *Logger) Transports() []transport.Transport {
	return l.transports.snapshot()
}

// SharesTransports reports whether the transport list is the one of the parent.
func (l *Logger) SharesTransports() bool {
	return l.sharedTransports
}

// Close closes the transports owned by l that implement io.Closer.
// A logger sharing its parent transports closes nothing.
func (l *Logger) Close() error {
	if l.sharedTransports {
		return nil
	}

	var errs []error
	for _, t := range l.transports.snapshot() {
		if closer, ok := t.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
