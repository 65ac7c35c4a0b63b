// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"io"

	"github.com/mia-platform/loglane/pkg/transport"
	"github.com/mia-platform/loglane/pkg/transport/console"
	"github.com/mia-platform/loglane/pkg/transport/file"
)

// TransportType tags a TransportDescriptor.
type TransportType string

const (
	ConsoleTransport TransportType = "console"
	FileTransport    TransportType = "file"
	CustomTransport  TransportType = "custom"
)

// TransportDescriptor describes a transport to build when a logger is created.
// Descriptors that cannot be built, like a file descriptor without a path, are skipped.
type TransportDescriptor struct {
	Type TransportType

	// Colorize overrides the logger colorize setting for a console transport.
	Colorize *bool
	// Stdout and Stderr redirect a console transport. Nil means the process streams.
	Stdout io.Writer
	Stderr io.Writer

	// Path, MaxSize and MaxFiles configure a file transport.
	Path     string
	MaxSize  int64
	MaxFiles int

	// Instance is the transport used by a custom descriptor.
	Instance transport.Transport
}

// Console describes a console transport that follows the logger colorize setting.
func Console() TransportDescriptor {
	return TransportDescriptor{Type: ConsoleTransport}
}

// ConsoleWithColor describes a console transport with its own colorize setting.
func ConsoleWithColor(colorize bool) TransportDescriptor {
	return TransportDescriptor{Type: ConsoleTransport, Colorize: &colorize}
}

// File describes a file transport. Zero maxSize disables rotation, zero maxFiles keeps every archive.
func File(path string, maxSize int64, maxFiles int) TransportDescriptor {
	return TransportDescriptor{Type: FileTransport, Path: path, MaxSize: maxSize, MaxFiles: maxFiles}
}

// Custom describes an already built transport.
func Custom(instance transport.Transport) TransportDescriptor {
	return TransportDescriptor{Type: CustomTransport, Instance: instance}
}

func defaultDescriptors() []TransportDescriptor {
	return []TransportDescriptor{Console()}
}

// buildTransports turns descriptors into transports, silently dropping the invalid ones.
func buildTransports(descriptors []TransportDescriptor, resolved settings) []transport.Transport {
	transports := make([]transport.Transport, 0, len(descriptors))
	for _, descriptor := range descriptors {
		if built := descriptor.build(resolved); built != nil {
			transports = append(transports, built)
		}
	}
	return transports
}

func (d TransportDescriptor) build(resolved settings) transport.Transport {
	switch d.Type {
	case ConsoleTransport:
		colorize := resolved.colorize
		if d.Colorize != nil {
			colorize = *d.Colorize
		}
		return console.New(console.Options{
			Colorize: colorize,
			Stdout:   d.Stdout,
			Stderr:   d.Stderr,
		})
	case FileTransport:
		if d.Path == "" {
			return nil
		}
		return file.New(file.Options{
			Path:     d.Path,
			MaxSize:  d.MaxSize,
			MaxFiles: d.MaxFiles,
		})
	case CustomTransport:
		return d.Instance
	default:
		return nil
	}
}
