// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package transport defines the primitives implemented by log sinks.
// A transport receives every record accepted by a logger together with the logger's
// formatter, and decides where the rendered output goes.
package transport
