// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package daterange implements an algebra of closed date intervals.
//
// A [Range] is an interval [start, end] of calendar [Date]s where both ends
// are included; a range of a single day has start == end. Ranges are values:
// they are never modified, and every operation returns new ranges.
//
// # Pairwise operations
//
// [Intersect] returns the dates common to two ranges. [Join] merges two
// ranges that overlap or touch (the second starts the day after the first
// ends). [Subtract] cuts one range out of another, leaving zero, one or two
// ranges; [Difference] is the variant that also handles disjoint inputs.
//
// # Collections
//
// [JoinRanges] normalizes a list of ranges into a sorted list of disjoint,
// non-adjacent ranges covering the same dates. [IntersectRanges] and
// [SubtractRanges] combine two lists. [CleanupSort] only drops empty entries
// and sorts.
//
// [ExtractRanges] turns a list of individual dates into the ranges formed by
// their runs of consecutive days.
//
// # Textual forms
//
// A range prints as "2020-01-01|2020-01-10" and [Parse] accepts that form
// back. Dates print as YYYY-MM-DD.
package daterange
