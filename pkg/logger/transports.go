// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"slices"
	"sync"

	"github.com/mia-platform/loglane/pkg/transport"
)

// transportList is the ordered set of transports of a logger. A single list may
// be shared by a parent and the children created without their own transports.
type transportList struct {
	lock       sync.RWMutex
	transports []transport.Transport
}

func newTransportList(transports []transport.Transport) *transportList {
	return &transportList{transports: transports}
}

func (l *transportList) add(t transport.Transport) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.transports = append(l.transports, t)
}

// snapshot returns a copy so that fan-out is not affected by concurrent additions.
func (l *transportList) snapshot() []transport.Transport {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return slices.Clone(l.transports)
}
