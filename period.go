// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package daterange

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Period returns the dates start, start+step, start+2*step, ... that are
// before end+1 day. The sequence is lazy and can be iterated any number of
// times. Each date is obtained by applying step to the previous one.
//
// Period panics if step does not advance.
func (r Range) Period(step Step) iter.Seq[Date] {
	if step.IsZero() {
		panic(errors.AssertionFailedf("daterange: period step must advance"))
	}
	return func(yield func(Date) bool) {
		if r.IsEmpty() {
			return
		}
		bound := r.End().AddDays(1)
		for d := r.start; d < bound; {
			if !yield(d) {
				return
			}
			next, ok := step.Apply(d)
			if !ok || next <= d {
				// Past MaxDate, or a step with negative components.
				return
			}
			d = next
		}
	}
}

// Days returns all the dates of the range, one day apart.
func (r Range) Days() iter.Seq[Date] {
	return r.Period(DefaultStep)
}
