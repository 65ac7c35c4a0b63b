// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logdata defines the severity levels and the immutable record that flows
// from a logger to its transports.
package logdata
