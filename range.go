// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package daterange

import (
	"cmp"
	"strings"
	"time"

	"github.com/cockroachdb/daterange/internal/invariants"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Range is a closed interval of calendar dates [start, end]; both ends are
// included. A Range returned by a constructor always has start <= end, and
// it cannot be modified afterwards.
//
// The zero Range is empty: it contains no dates and is not a valid interval.
// It stands for "no range" inside collections and is dropped by CleanupSort.
type Range struct {
	start Date
	// days is the number of dates in the range; 0 for the empty range.
	days int32
}

// Input is the set of types accepted as range endpoints by New:
//   - int64: seconds since the Unix epoch, taken in UTC;
//   - string: an ISO calendar date, optionally with a time of day;
//   - Date;
//   - time.Time: the calendar date in the time's location.
type Input interface {
	int64 | string | Date | time.Time
}

// ToDate converts an endpoint input to a Date.
func ToDate[T Input](v T) (Date, error) {
	switch x := any(v).(type) {
	case int64:
		return DateFromUnix(x)
	case string:
		return ParseDate(x)
	case Date:
		if !x.IsValid() {
			return 0, outOfRangeError(int64(x))
		}
		return x, nil
	case time.Time:
		return DateFromTime(x)
	default:
		return 0, errors.AssertionFailedf("daterange: unsupported input type %T", v)
	}
}

// New constructs the range [start, end]. Each endpoint is independently
// converted with ToDate; conversion errors are returned as is. If start is
// after end the error is marked with ErrInvalidRange.
func New[S, E Input](start S, end E) (Range, error) {
	s, err := ToDate(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ToDate(end)
	if err != nil {
		return Range{}, err
	}
	return Make(s, e)
}

// Make constructs the range [start, end], or returns an error marked with
// ErrInvalidRange if start is after end. Dates outside [MinDate, MaxDate] are
// rejected with an error marked with ErrDateOutOfRange.
func Make(start, end Date) (Range, error) {
	for _, d := range [2]Date{start, end} {
		if !d.IsValid() {
			return Range{}, outOfRangeError(int64(d))
		}
	}
	if start > end {
		return Range{}, invalidRangeErrorf(start, end)
	}
	return makeUnchecked(start, end), nil
}

// MustMake is like Make but panics on error.
func MustMake(start, end Date) Range {
	r, err := Make(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// makeUnchecked is used by operations that already know that start <= end
// and that both are valid dates.
func makeUnchecked(start, end Date) Range {
	if invariants.Enabled && (start > end || !start.IsValid() || !end.IsValid()) {
		panic(errors.AssertionFailedf("daterange: invalid range [%d, %d]", start, end))
	}
	// The span is at most MaxDate-MinDate+1 days, which fits in an int32.
	return Range{start: start, days: int32(int64(end) - int64(start) + 1)}
}

// Parse parses the textual form produced by String: "<start>|<end>".
func Parse(s string) (Range, error) {
	startStr, endStr, ok := strings.Cut(s, "|")
	if !ok {
		return Range{}, errors.Newf("daterange: cannot parse range %q: missing '|'", s)
	}
	return New(strings.TrimSpace(startStr), strings.TrimSpace(endStr))
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Start returns the first date of the range.
func (r Range) Start() Date {
	return r.start
}

// End returns the last date of the range.
func (r Range) End() Date {
	return r.start + Date(r.days) - 1
}

// IsEmpty returns true for the zero Range.
func (r Range) IsEmpty() bool {
	return r.days == 0
}

// IsoStart returns the start date as YYYY-MM-DD.
func (r Range) IsoStart() string {
	return r.Start().String()
}

// IsoEnd returns the end date as YYYY-MM-DD.
func (r Range) IsoEnd() string {
	return r.End().String()
}

// IsoStartTime returns the first second of the range, "YYYY-MM-DD 00:00:00".
func (r Range) IsoStartTime() string {
	return r.IsoStart() + " 00:00:00"
}

// IsoEndTime returns the last second of the range, "YYYY-MM-DD 23:59:59".
func (r Range) IsoEndTime() string {
	return r.IsoEnd() + " 23:59:59"
}

// CountDays returns the number of dates in the range, including both ends.
func (r Range) CountDays() int {
	return int(r.days)
}

// Contains returns true if start <= d <= end.
func (r Range) Contains(d Date) bool {
	return !r.IsEmpty() && r.start <= d && d <= r.End()
}

// ContainsRange returns true if every date of other is in r.
func (r Range) ContainsRange(other Range) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.start <= other.start && other.End() <= r.End()
}

// Overlaps returns true if r and other have at least one date in common.
func (r Range) Overlaps(other Range) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	// There is no overlap iff one range starts after the other ends.
	return r.start <= other.End() && other.start <= r.End()
}

// Equal returns true if both ranges have the same start and end.
func (r Range) Equal(other Range) bool {
	return r == other
}

// Compare orders ranges by start, then by end.
func (r Range) Compare(other Range) int {
	if c := r.start.Compare(other.start); c != 0 {
		return c
	}
	return cmp.Compare(r.days, other.days)
}

// String returns "<start>|<end>", e.g. "2020-01-01|2020-01-10".
func (r Range) String() string {
	return redact.StringWithoutMarkers(r)
}

// SafeFormat implements redact.SafeFormatter.
func (r Range) SafeFormat(w redact.SafePrinter, _ rune) {
	if r.IsEmpty() {
		w.SafeString("<empty>")
		return
	}
	w.Printf("%s|%s", r.Start(), r.End())
}
