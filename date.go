// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package daterange

import (
	"cmp"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// IsoDateFormat is the layout of a calendar date in textual form.
const IsoDateFormat = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar date at day resolution. It is stored as the number of
// days since 1970-01-01 in the proleptic Gregorian calendar. Dates carry no
// time zone; conversions to and from time.Time happen in UTC.
//
// Date is a plain value: copies never share state.
//
// Only dates between MinDate and MaxDate are valid; the constructors reject
// anything else, so day arithmetic on valid dates never overflows.
type Date int32

const (
	// MinDate is 0001-01-01.
	MinDate Date = -719162
	// MaxDate is 9999-12-31.
	MaxDate Date = 2932896
)

// MakeDate returns the Date for the given year, month and day. Out of range
// months and days are normalized the way time.Date normalizes them.
//
// MakeDate panics if the resulting date is before MinDate or after MaxDate.
func MakeDate(year int, month time.Month, day int) Date {
	d, err := DateFromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromTime returns the calendar date of t, as observed in t's location.
// The error is marked with ErrDateOutOfRange if that date is before MinDate
// or after MaxDate.
func DateFromTime(t time.Time) (Date, error) {
	return checkDays(daysFromTime(t))
}

// DateFromUnix returns the UTC calendar date containing the given number of
// seconds since the Unix epoch. The error is marked with ErrDateOutOfRange if
// that date is before MinDate or after MaxDate.
func DateFromUnix(sec int64) (Date, error) {
	days := sec / secondsPerDay
	if sec%secondsPerDay < 0 {
		days--
	}
	return checkDays(days)
}

func daysFromTime(t time.Time) int64 {
	y, m, d := t.Date()
	u := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	// u is a multiple of secondsPerDay, so the division is exact.
	return u / secondsPerDay
}

func checkDays(days int64) (Date, error) {
	if days < int64(MinDate) || days > int64(MaxDate) {
		return 0, outOfRangeError(days)
	}
	return Date(days), nil
}

// IsValid returns true if MinDate <= d <= MaxDate.
func (d Date) IsValid() bool {
	return MinDate <= d && d <= MaxDate
}

// dateLayouts are tried in order by ParseDate. Any time-of-day component is
// discarded.
var dateLayouts = []string{
	IsoDateFormat,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD), optionally followed by
// a time of day. The time of day, and the offset if any, do not affect the
// resulting date.
func ParseDate(s string) (Date, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d, err := DateFromTime(t)
			if err != nil {
				return 0, errors.Wrapf(err, "daterange: cannot parse date %q", s)
			}
			return d, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return 0, errors.Wrapf(firstErr, "daterange: cannot parse date %q", s)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// Unix returns the number of seconds since the Unix epoch at midnight UTC of
// the date.
func (d Date) Unix() int64 {
	return int64(d) * secondsPerDay
}

// AddDays returns the date n days after d (before d if n is negative). The
// result is not checked against MinDate and MaxDate.
func (d Date) AddDays(n int) Date {
	return d + Date(n)
}

// DaysUntil returns the number of days from d to other; it is negative if
// other is before d.
func (d Date) DaysUntil(other Date) int {
	return int(other) - int(d)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	return cmp.Compare(d, other)
}

// Before returns true if d is strictly before other.
func (d Date) Before(other Date) bool { return d < other }

// After returns true if d is strictly after other.
func (d Date) After(other Date) bool { return d > other }

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(IsoDateFormat)
}

// SafeFormat implements redact.SafeFormatter.
func (d Date) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(d.String()))
}
