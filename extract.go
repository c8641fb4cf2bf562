// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package daterange

// ExtractRanges parses the given ISO dates and groups them into runs of
// consecutive days; see ExtractDateRanges.
func ExtractRanges(dates []string) ([]Range, error) {
	parsed := make([]Date, len(dates))
	for i, s := range dates {
		d, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		parsed[i] = d
	}
	return ExtractDateRanges(parsed), nil
}

// ExtractDateRanges returns one range for each maximal run of consecutive
// days in dates. A date that is not exactly one day after its predecessor
// starts a new run.
//
// The dates are expected in ascending order without duplicates. Input in any
// other order is not rejected: it is grouped as given, so an out of order or
// repeated date simply starts a new run.
func ExtractDateRanges(dates []Date) []Range {
	if len(dates) == 0 {
		return nil
	}
	var res []Range
	runStart, prev := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d != prev.AddDays(1) {
			res = append(res, makeUnchecked(runStart, prev))
			runStart = d
		}
		prev = d
	}
	return append(res, makeUnchecked(runStart, prev))
}
