// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

// Package obs is the repository's single logging entry point: a small
// wrapper around go.uber.org/zap, in the teacher's style of a
// package-level logger rather than threading a logger through every
// constructor. The test harness logs through L(); registration and the
// CLI shell do not log.
package obs

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once sync.Once
	l    *zap.Logger
)

// L returns the process-wide logger, built once on first use with a
// production zap config (JSON encoding, info level).
func L() *zap.Logger {
	once.Do(func() {
		logger, err := zap.NewProduction()
		if err != nil {
			logger = zap.NewNop()
		}
		l = logger
	})
	return l
}

// SetForTesting installs a logger built around a test-friendly core
// (e.g. zaptest or an observer) and returns a function that restores the
// previous logger — for package tests that want to assert on log output
// without depending on global call order.
func SetForTesting(logger *zap.Logger) (restore func()) {
	once.Do(func() {}) // ensure once is spent so L() never overwrites logger
	previous := l
	l = logger
	return func() { l = previous }
}

// Sync flushes any buffered log entries; call from main before exit.
func Sync() {
	if l != nil {
		_ = l.Sync()
	}
}
