// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements the commands of the daterange tool: a small front
// end for inspecting and combining date ranges from the command line.
package tool

import (
	"github.com/spf13/cobra"
)

// T is the container for all of the date range commands.
type T struct {
	Commands []*cobra.Command
	ranges   *rangesT
}

// Option configures a T.
type Option func(*T)

// WithLogger sets the logger used for verbose output. By default verbose
// output goes to the command's error stream.
func WithLogger(l Logger) Option {
	return func(t *T) {
		t.ranges.logger = l
	}
}

// New creates a new date range tool.
func New(opts ...Option) *T {
	t := &T{ranges: newRanges()}
	for _, opt := range opts {
		opt(t)
	}
	t.Commands = t.ranges.Commands
	return t
}
