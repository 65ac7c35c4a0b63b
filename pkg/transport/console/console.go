// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package console implements a transport that prints records on the standard streams.
// Warnings and errors go to stderr, every other level to stdout.
package console

import (
	"io"
	"os"
	"sync"

	"github.com/mia-platform/loglane/pkg/colorutil"
	"github.com/mia-platform/loglane/pkg/formatter"
	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/transport"
)

var _ transport.Transport = &Transport{}

// Options configures a console transport. Nil writers default to os.Stdout and os.Stderr.
type Options struct {
	Colorize bool
	Stdout   io.Writer
	Stderr   io.Writer
}

// Transport writes one line per record on stdout or stderr.
type Transport struct {
	colorize bool
	stdout   io.Writer
	stderr   io.Writer

	lock sync.Mutex
}

func New(opts Options) *Transport {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	return &Transport{
		colorize: opts.Colorize,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
	}
}

// Colorize reports whether the transport keeps ANSI colors produced by the formatter.
func (t *Transport) Colorize() bool {
	return t.colorize
}

func (t *Transport) Write(data *logdata.Data, f *formatter.Formatter) error {
	line := f.Format(data)
	if !t.colorize {
		line = colorutil.Strip(line)
	}

	t.lock.Lock()
	defer t.lock.Unlock()
	_, err := io.WriteString(t.streamFor(data.Level), line+"\n")
	return err
}

func (t *Transport) streamFor(level logdata.Level) io.Writer {
	switch level {
	case logdata.Warn, logdata.Error:
		return t.stderr
	default:
		return t.stdout
	}
}
