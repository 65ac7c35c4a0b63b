// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package console

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/loglane/pkg/formatter"
	"github.com/mia-platform/loglane/pkg/logdata"
)

func TestStdoutStderrRouting(t *testing.T) {
	t.Parallel()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	transport := New(Options{Stdout: stdout, Stderr: stderr})
	f := formatter.New(formatter.Options{})

	for _, level := range []logdata.Level{logdata.Boring, logdata.Debug, logdata.Info, logdata.Warn, logdata.Error} {
		require.NoError(t, transport.Write(&logdata.Data{Level: level, Message: "message"}, f))
	}

	assert.Equal(t, "BORING - message\nDEBUG - message\nINFO - message\n", stdout.String())
	assert.Equal(t, "WARN - message\nERROR - message\n", stderr.String())
}

func TestColorHandling(t *testing.T) {
	t.Parallel()

	colorFormatter := formatter.New(formatter.Options{Colorize: true})
	data := &logdata.Data{Level: logdata.Info, Message: "colors"}

	t.Run("colorized transport keeps formatter colors", func(t *testing.T) {
		t.Parallel()

		stdout := new(bytes.Buffer)
		require.NoError(t, New(Options{Colorize: true, Stdout: stdout}).Write(data, colorFormatter))
		assert.Contains(t, stdout.String(), "\033[")
	})

	t.Run("plain transport strips formatter colors", func(t *testing.T) {
		t.Parallel()

		stdout := new(bytes.Buffer)
		require.NoError(t, New(Options{Colorize: false, Stdout: stdout}).Write(data, colorFormatter))
		assert.Equal(t, "INFO - colors\n", stdout.String())
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWriteErrorIsReturned(t *testing.T) {
	t.Parallel()

	transport := New(Options{Stdout: failingWriter{}, Stderr: failingWriter{}})
	err := transport.Write(&logdata.Data{Level: logdata.Error, Message: "lost"}, formatter.New(formatter.Options{}))
	require.ErrorIs(t, err, os.ErrClosed)
}

func TestDefaultsToStandardStreams(t *testing.T) {
	t.Parallel()

	transport := New(Options{})
	assert.Equal(t, os.Stdout, transport.stdout)
	assert.Equal(t, os.Stderr, transport.stderr)
	assert.False(t, transport.Colorize())
}
