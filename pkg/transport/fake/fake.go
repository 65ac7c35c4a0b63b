// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package fake provides a recording transport for tests.
package fake

import (
	"sync"
	"testing"

	"github.com/mia-platform/loglane/pkg/formatter"
	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/transport"
)

var _ transport.Transport = &FakeTransport{}

// FakeTransport records every record and its rendered line.
// When Err is set, Write records the call and returns Err.
type FakeTransport struct {
	tb testing.TB

	Err error

	lock  sync.Mutex
	data  []*logdata.Data
	lines []string
}

func NewFakeTransport(tb testing.TB) *FakeTransport {
	tb.Helper()
	return &FakeTransport{tb: tb}
}

func (f *FakeTransport) Write(data *logdata.Data, formatter *formatter.Formatter) error {
	f.tb.Helper()

	f.lock.Lock()
	defer f.lock.Unlock()
	f.data = append(f.data, data)
	f.lines = append(f.lines, formatter.Format(data))
	return f.Err
}

// Data returns the received records in arrival order.
func (f *FakeTransport) Data() []*logdata.Data {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]*logdata.Data(nil), f.data...)
}

// Lines returns the rendered lines in arrival order.
func (f *FakeTransport) Lines() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]string(nil), f.lines...)
}

// Writes returns the number of Write calls.
func (f *FakeTransport) Writes() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.data)
}
