// Copyright 2020 IOTA Stiftung
// SPDX-License-Identifier: Apache-2.0

package testlogger

import (
	"io"
	"time"

	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

type TestingT interface { // Interface so there's no need to pass the concrete type
	Name() string
}

// NewLogger produces a debug-level logger named after the running test.
func NewLogger(t TestingT, opts ...options.Option[log.Options]) log.Logger {
	return newLogger("debug", append([]options.Option[log.Options]{
		log.WithName(t.Name()),
	}, opts...)...)
}

// NewSilentLogger produces a logger that discards all output, for tests
// where the log stream is irrelevant.
func NewSilentLogger(name string) log.Logger {
	return newLogger("info", log.WithName(name), log.WithOutput(io.Discard))
}

func newLogger(level string, opts ...options.Option[log.Options]) log.Logger {
	loggerLevel, err := log.LevelFromString(level)
	if err != nil {
		panic(err)
	}
	return log.NewLogger(append([]options.Option[log.Options]{
		log.WithLevel(loggerLevel),
		log.WithTimeFormat(time.RFC3339),
	}, opts...)...)
}
