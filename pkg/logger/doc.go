// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger implements a leveled logger organized as a tree.
//
// A Logger filters records by severity, merges its contextual fields with the
// fields given at the call site, and hands the resulting record to each of its
// transports in order. Child loggers resolve every unset option from a snapshot
// of their parent taken at creation time; after that the two are independent,
// except for the transport list which a child shares with its parent unless it
// is given its own.
//
// A process wide logger is available through Global and the package level
// shortcuts:
//
//	logger.Info("server started", "port", 8080)
//
//	api := logger.Global().CreateChild(logger.WithPrefix("api"), logger.WithFields(logger.Fields{"service": "users"}))
//	api.Warn("slow request", "ms", 1200)
package logger
