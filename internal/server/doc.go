// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server contains the HTTP server started by the serve command.
// It sets up the Fiber application with the request logging middleware and
// defines routes for emitting records, health checks and Prometheus metrics.
package server
