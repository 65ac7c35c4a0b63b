// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"sync"

	"github.com/mia-platform/loglane/pkg/logdata"
)

var (
	globalLock sync.Mutex
	global     *Logger
)

// Global returns the process wide logger, creating it with the default options
// on first use. It lives until the process exits or ResetGlobal is called.
func Global() *Logger {
	globalLock.Lock()
	defer globalLock.Unlock()

	if global == nil {
		global = New()
	}
	return global
}

// SetGlobal replaces the process wide logger.
func SetGlobal(l *Logger) {
	globalLock.Lock()
	defer globalLock.Unlock()
	global = l
}

// ResetGlobal drops the process wide logger, the next Global call creates a fresh one.
func ResetGlobal() {
	SetGlobal(nil)
}

// Log emits a record through the global logger.
func Log(level logdata.Level, msg string, args ...any) {
	Global().Log(level, msg, args...)
}

func Boring(msg string, args ...any) { Global().Boring(msg, args...) }
func Debug(msg string, args ...any)  { Global().Debug(msg, args...) }
func Info(msg string, args ...any)   { Global().Info(msg, args...) }
func Warn(msg string, args ...any)   { Global().Warn(msg, args...) }
func Error(msg string, args ...any)  { Global().Error(msg, args...) }
