// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package daterange

import "github.com/cockroachdb/errors"

// ErrInvalidRange is the marker of errors returned when a range is
// constructed with a start date after its end date. Use errors.Is to test
// for it.
var ErrInvalidRange = errors.New("daterange: invalid range")

func invalidRangeErrorf(start, end Date) error {
	return errors.Mark(
		errors.Newf("daterange: start %s is after end %s", start, end),
		ErrInvalidRange,
	)
}

// ErrDateOutOfRange is the marker of errors returned when a date falls
// outside [MinDate, MaxDate].
var ErrDateOutOfRange = errors.New("daterange: date out of range")

// outOfRangeError reports a date given as a number of days since the epoch.
func outOfRangeError(days int64) error {
	return errors.Mark(
		errors.Newf("daterange: day %d is outside [%s, %s]", days, MinDate, MaxDate),
		ErrDateOutOfRange,
	)
}
