// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package formatter renders log records as single human readable lines or as
// single-line JSON objects.
package formatter
