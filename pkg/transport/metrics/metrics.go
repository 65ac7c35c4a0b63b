// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package metrics implements a transport that counts records with Prometheus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mia-platform/loglane/pkg/formatter"
	"github.com/mia-platform/loglane/pkg/logdata"
	"github.com/mia-platform/loglane/pkg/transport"
)

var _ transport.Transport = &Transport{}

const (
	levelLabel  = "level"
	prefixLabel = "prefix"
)

// Transport increments loglane_records_total for every record it receives.
// It never renders the record.
type Transport struct {
	Records *prometheus.CounterVec
}

// New registers the counter on the default registerer.
func New() *Transport {
	return NewWithRegistry(nil)
}

// NewWithRegistry registers the counter on registry, or on the default registerer when nil.
// When the counter is already registered there, the returned transport shares it.
func NewWithRegistry(registry prometheus.Registerer) *Transport {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	records := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loglane_records_total",
			Help: "The total number of log records written, by level and logger prefix",
		},
		[]string{levelLabel, prefixLabel},
	)

	if err := registry.Register(records); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			if existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec); ok {
				records = existing
			}
		}
	}

	return &Transport{Records: records}
}

func (t *Transport) Write(data *logdata.Data, _ *formatter.Formatter) error {
	t.Records.WithLabelValues(data.Level.String(), data.Prefix).Inc()
	return nil
}
