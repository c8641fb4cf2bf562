// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"log"
)

// Logger receives the informational messages printed with --verbose.
type Logger interface {
	Infof(format string, args ...interface{})
}

// DefaultLogger logs to the Go stdlib logs.
type DefaultLogger struct{}

// Infof implements the Logger.Infof interface.
func (DefaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// writerLogger logs to a command's error stream. It is used when no logger
// was configured, so that verbose output follows cobra's output settings.
type writerLogger struct {
	l *log.Logger
}

func newWriterLogger(w io.Writer) writerLogger {
	return writerLogger{l: log.New(w, "", 0)}
}

// Infof implements the Logger.Infof interface.
func (w writerLogger) Infof(format string, args ...interface{}) {
	_ = w.l.Output(2, fmt.Sprintf(format, args...))
}
