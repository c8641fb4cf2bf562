// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package daterange

import (
	"slices"

	"github.com/RaduBerinde/axisds"
	"github.com/RaduBerinde/axisds/regiontree"
)

// CleanupSort returns the non-empty ranges of the input sorted by start date,
// then by end date. The input slice is not modified.
func CleanupSort(ranges []Range) []Range {
	res := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			res = append(res, r)
		}
	}
	slices.SortFunc(res, Range.Compare)
	return res
}

// JoinRanges merges all the ranges that overlap or are adjacent. The result
// is sorted, its ranges are pairwise disjoint, and no two of them can be
// joined. It covers exactly the dates covered by the input. The input slice
// is not modified.
func JoinRanges(ranges []Range) []Range {
	sorted := CleanupSort(ranges)
	if len(sorted) == 0 {
		return sorted
	}
	// After sorting, a range that cannot be joined with the last output range
	// cannot be joined with any earlier output range either.
	res := sorted[:1]
	for _, r := range sorted[1:] {
		last := &res[len(res)-1]
		if j, ok := Join(*last, r); ok {
			*last = j
		} else {
			res = append(res, r)
		}
	}
	return slices.Clip(res)
}

// IntersectRanges returns the dates covered both by a range in left and by a
// range in right, as a sorted list of disjoint ranges.
func IntersectRanges(left, right []Range) []Range {
	var c coverage
	c.init()
	c.add(left, inLeft)
	c.add(right, inRight)
	return c.collect(func(s sides) bool { return s == inLeft|inRight })
}

// SubtractRanges returns the dates covered by left that are not covered by
// right, as a sorted list of disjoint ranges.
func SubtractRanges(left, right []Range) []Range {
	var c coverage
	c.init()
	c.add(left, inLeft)
	c.add(right, inRight)
	return c.collect(func(s sides) bool { return s == inLeft })
}

// CountRangeDays returns the number of distinct dates covered by the ranges.
func CountRangeDays(ranges []Range) int {
	var c coverage
	c.init()
	c.add(ranges, inLeft)
	n := 0
	c.rt.EnumerateAll(func(start, end Date, _ sides) bool {
		n += int(end - start)
		return true
	})
	return n
}

// sides records which of the two operands of a collection operation cover a
// date.
type sides uint8

const (
	inLeft sides = 1 << iota
	inRight
)

// coverage maps every date to the operands that cover it. Neighboring dates
// with the same sides are merged into a single region, so the regions of a
// given kind are never adjacent.
type coverage struct {
	// rt works on half-open intervals: the range [start, end] is stored as
	// [start, end+1). MaxDate+1 still fits in a Date.
	rt regiontree.T[Date, sides]
}

func (c *coverage) init() {
	c.rt = regiontree.Make(axisds.CompareFn[Date](Date.Compare), func(a, b sides) bool { return a == b })
}

func (c *coverage) add(ranges []Range, s sides) {
	for _, r := range ranges {
		if r.IsEmpty() {
			continue
		}
		c.rt.Update(r.start, r.End()+1, func(p sides) sides { return p | s })
	}
}

// collect returns the regions whose sides satisfy fn, in ascending order.
func (c *coverage) collect(fn func(s sides) bool) []Range {
	var res []Range
	c.rt.EnumerateAll(func(start, end Date, s sides) bool {
		if fn(s) {
			res = append(res, makeUnchecked(start, end-1))
		}
		return true
	})
	return res
}
