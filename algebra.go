// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package daterange

// Intersect returns the dates common to a and b. The second return value is
// false if a and b have no date in common.
//
// Intersect is commutative.
func Intersect(a, b Range) (Range, bool) {
	if !a.Overlaps(b) {
		return Range{}, false
	}
	return makeUnchecked(max(a.start, b.start), min(a.End(), b.End())), true
}

// Join returns the single range covering both a and b, if there is one. Two
// ranges can be joined when they overlap or when they are adjacent, i.e. the
// second starts the day after the first ends.
//
// Join is commutative.
func Join(a, b Range) (Range, bool) {
	if a.IsEmpty() || b.IsEmpty() {
		return Range{}, false
	}
	if a.start > b.start {
		a, b = b, a
	}
	switch {
	case a.End().AddDays(1) >= b.start && a.End() <= b.End():
		// Overlapping or touching; b extends past a.
		return makeUnchecked(a.start, b.End()), true
	case a.End() >= b.start && a.End() >= b.End():
		// b is contained in a.
		return a, true
	default:
		return Range{}, false
	}
}

// Subtract returns the dates of m that are not in s, as zero, one or two
// ranges in ascending order.
//
// The result is empty both when s covers all of m and when m and s do not
// overlap at all: Subtract only describes what remains of m after an
// overlapping s is cut out of it. Use Difference when the disjoint case must
// return m unchanged.
func Subtract(m, s Range) []Range {
	if !m.Overlaps(s) || s.ContainsRange(m) {
		return nil
	}
	mEnd, sEnd := m.End(), s.End()
	switch {
	case s.start > m.start && sEnd >= mEnd:
		// s cuts off the tail of m.
		return []Range{makeUnchecked(m.start, s.start.AddDays(-1))}
	case s.start <= m.start:
		// s cuts off the head of m; sEnd < mEnd since m is not contained in s.
		return []Range{makeUnchecked(sEnd.AddDays(1), mEnd)}
	default:
		// s is strictly inside m and punches a hole in it.
		return []Range{
			makeUnchecked(m.start, s.start.AddDays(-1)),
			makeUnchecked(sEnd.AddDays(1), mEnd),
		}
	}
}

// Difference returns the dates of m that are not in s. Unlike Subtract, it
// returns m itself when m and s do not overlap.
func Difference(m, s Range) []Range {
	if m.IsEmpty() {
		return nil
	}
	if !m.Overlaps(s) {
		return []Range{m}
	}
	return Subtract(m, s)
}
