// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package daterange

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	d := MakeDate(2020, time.February, 28)
	require.Equal(t, "2020-02-28", d.String())
	require.Equal(t, "2020-02-29", d.AddDays(1).String())
	require.Equal(t, "2020-03-01", d.AddDays(2).String())
	require.Equal(t, "2019-12-31", MakeDate(2020, time.January, 1).AddDays(-1).String())
	require.Equal(t, 366, MakeDate(2020, time.January, 1).DaysUntil(MakeDate(2021, time.January, 1)))
	require.Equal(t, -1, d.DaysUntil(d.AddDays(-1)))

	require.Equal(t, Date(0), MakeDate(1970, time.January, 1))
	require.Equal(t, MakeDate(2020, time.March, 1), MakeDate(2020, time.February, 30))
	require.Equal(t, int64(1577836800), MakeDate(2020, time.January, 1).Unix())
	require.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), MakeDate(2020, time.January, 1).Time())

	require.Equal(t, -1, d.Compare(d.AddDays(1)))
	require.Equal(t, 0, d.Compare(d))
	require.Equal(t, +1, d.Compare(d.AddDays(-1)))
	require.True(t, d.Before(d.AddDays(1)))
	require.True(t, d.After(d.AddDays(-1)))

	t.Run("FromUnix", func(t *testing.T) {
		fromUnix := func(sec int64) string {
			d, err := DateFromUnix(sec)
			require.NoError(t, err)
			return d.String()
		}
		require.Equal(t, "2020-01-01", fromUnix(1577836800))
		require.Equal(t, "2020-01-01", fromUnix(1577836800+86399))
		require.Equal(t, "2019-12-31", fromUnix(1577836799))
		require.Equal(t, "1969-12-31", fromUnix(-1))
		require.Equal(t, "1969-12-31", fromUnix(-86400))
		require.Equal(t, "1969-12-30", fromUnix(-86401))
	})

	t.Run("FromTime", func(t *testing.T) {
		loc := time.FixedZone("UTC+10", 10*60*60)
		// 2020-01-01 20:00 UTC is already 2020-01-02 in UTC+10.
		tm := time.Date(2020, 1, 1, 20, 0, 0, 0, time.UTC)
		d, err := DateFromTime(tm)
		require.NoError(t, err)
		require.Equal(t, "2020-01-01", d.String())
		d, err = DateFromTime(tm.In(loc))
		require.NoError(t, err)
		require.Equal(t, "2020-01-02", d.String())
	})

	t.Run("Parse", func(t *testing.T) {
		for _, s := range []string{
			"2020-01-01",
			"2020-01-01T00:00:00",
			"2020-01-01T23:59:59",
			"2020-01-01 12:00:00",
			"2020-01-01T12:00:00Z",
			"2020-01-01T12:00:00.123456789+09:00",
		} {
			d, err := ParseDate(s)
			require.NoError(t, err, s)
			require.Equal(t, "2020-01-01", d.String(), s)
		}
		for _, s := range []string{"", "2020", "2020-1-1", "01/01/2020", "2020-02-30", "tomorrow"} {
			_, err := ParseDate(s)
			require.Error(t, err, s)
			require.False(t, errors.Is(err, ErrInvalidRange))
		}
		require.Panics(t, func() { MustParseDate("nope") })
	})

	t.Run("SafeFormat", func(t *testing.T) {
		require.Equal(t, redact.RedactableString("2020-01-01"), redact.Sprint(MakeDate(2020, time.January, 1)))
	})
}

func TestRangeConstruction(t *testing.T) {
	start := MustParseDate("2020-01-01")
	end := MustParseDate("2020-01-10")

	r, err := Make(start, end)
	require.NoError(t, err)
	require.Equal(t, start, r.Start())
	require.Equal(t, end, r.End())
	require.False(t, r.IsEmpty())

	_, err = Make(end, start)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidRange))
	require.Equal(t, "daterange: start 2020-01-10 is after end 2020-01-01", err.Error())
	require.Panics(t, func() { MustMake(end, start) })

	single, err := Make(start, start)
	require.NoError(t, err)
	require.Equal(t, 1, single.CountDays())

	t.Run("MixedInputs", func(t *testing.T) {
		want := MustMake(start, end)
		for _, fn := range []func() (Range, error){
			func() (Range, error) { return New("2020-01-01", "2020-01-10") },
			func() (Range, error) { return New(int64(1577836800), "2020-01-10") },
			func() (Range, error) { return New("2020-01-01T06:00:00", int64(1578700799)) },
			func() (Range, error) { return New(start, "2020-01-10 18:00:00") },
			func() (Range, error) { return New(time.Date(2020, 1, 1, 23, 0, 0, 0, time.UTC), end) },
		} {
			r, err := fn()
			require.NoError(t, err)
			require.Equal(t, want, r)
		}

		_, err := New("2020-01-10", int64(1577836800))
		require.True(t, errors.Is(err, ErrInvalidRange))

		// Parse errors propagate without the ErrInvalidRange mark.
		_, err = New("2020-01-01", "2020-01-99")
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrInvalidRange))
		_, err = New("garbage", "2020-01-01")
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrInvalidRange))
	})

	t.Run("Parse", func(t *testing.T) {
		r := MustParse("2020-01-01|2020-01-10")
		require.Equal(t, MustMake(start, end), r)
		require.Equal(t, r, MustParse(r.String()))
		require.Equal(t, r, MustParse(" 2020-01-01 | 2020-01-10 "))

		_, err := Parse("2020-01-01")
		require.Error(t, err)
		_, err = Parse("2020-01-10|2020-01-01")
		require.True(t, errors.Is(err, ErrInvalidRange))
		require.Panics(t, func() { MustParse("x|y") })
	})
}

func TestRangeAccessors(t *testing.T) {
	r := MustParse("2020-01-01|2020-01-10")
	require.Equal(t, "2020-01-01", r.IsoStart())
	require.Equal(t, "2020-01-10", r.IsoEnd())
	require.Equal(t, "2020-01-01 00:00:00", r.IsoStartTime())
	require.Equal(t, "2020-01-10 23:59:59", r.IsoEndTime())
	require.Equal(t, "2020-01-01|2020-01-10", r.String())
	require.Equal(t, redact.RedactableString("2020-01-01|2020-01-10"), redact.Sprint(r))
	require.Equal(t, "<empty>", Range{}.String())
	require.Equal(t, 10, r.CountDays())

	require.True(t, r.Contains(MustParseDate("2020-01-01")))
	require.True(t, r.Contains(MustParseDate("2020-01-05")))
	require.True(t, r.Contains(MustParseDate("2020-01-10")))
	require.False(t, r.Contains(MustParseDate("2019-12-31")))
	require.False(t, r.Contains(MustParseDate("2020-01-11")))
	require.False(t, Range{}.Contains(0))

	require.True(t, r.Equal(MustParse("2020-01-01|2020-01-10")))
	require.False(t, r.Equal(MustParse("2020-01-01|2020-01-09")))
	require.False(t, r.Equal(MustParse("2020-01-02|2020-01-10")))

	require.True(t, r.ContainsRange(r))
	require.True(t, r.ContainsRange(MustParse("2020-01-03|2020-01-04")))
	require.False(t, r.ContainsRange(MustParse("2020-01-03|2020-01-11")))
	require.False(t, r.ContainsRange(Range{}))

	require.True(t, r.Overlaps(MustParse("2020-01-10|2020-01-11")))
	require.False(t, r.Overlaps(MustParse("2020-01-11|2020-01-12")))
	require.False(t, r.Overlaps(Range{}))

	// Accessors hand out values: changing them cannot affect the range.
	s := r.Start()
	s = s.AddDays(5)
	require.Equal(t, "2020-01-06", s.String())
	require.Equal(t, "2020-01-01", r.IsoStart())
}

func TestRangeCountDays(t *testing.T) {
	base := MustParseDate("2019-12-25")
	for i := 0; i < 400; i += 7 {
		for j := i; j < i+40; j += 3 {
			r := MustMake(base.AddDays(i), base.AddDays(j))
			require.Equal(t, r.Start().DaysUntil(r.End())+1, r.CountDays())
			require.GreaterOrEqual(t, r.CountDays(), 1)
		}
	}
}

func TestRangePeriod(t *testing.T) {
	r := MustParse("2020-02-27|2020-03-02")
	var days []string
	for d := range r.Days() {
		days = append(days, d.String())
	}
	require.Equal(t, []string{"2020-02-27", "2020-02-28", "2020-02-29", "2020-03-01", "2020-03-02"}, days)

	// The sequence can be iterated again and stopped early.
	seq := r.Period(DefaultStep)
	require.Equal(t, r.CountDays(), len(slices.Collect(seq)))
	require.Equal(t, r.CountDays(), len(slices.Collect(seq)))
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)

	require.Empty(t, slices.Collect(Range{}.Days()))
	require.Panics(t, func() { r.Period(Step{}) })
	// A step that moves backwards ends the sequence.
	require.Len(t, slices.Collect(r.Period(Step{Months: 1, Days: -40})), 1)
}

func TestStep(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Step
		str  string
	}{
		{"P1D", Step{Days: 1}, "P1D"},
		{"p3d", Step{Days: 3}, "P3D"},
		{"P2W", Step{Days: 14}, "P14D"},
		{"P1M", Step{Months: 1}, "P1M"},
		{"P1Y2M3W4D", Step{Years: 1, Months: 2, Days: 25}, "P1Y2M25D"},
		{"P0Y1D", Step{Days: 1}, "P1D"},
	} {
		st, err := ParseStep(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, st, tc.in)
		require.Equal(t, tc.str, st.String(), tc.in)
	}
	for _, in := range []string{"", "P", "1D", "PD", "P1", "P1D1M", "P1D1D", "PT1H", "P1H", "P-1D", "P0D", "P1.5D"} {
		_, err := ParseStep(in)
		require.Error(t, err, in)
	}
	require.Equal(t, "P0D", Step{}.String())
	require.Panics(t, func() { MustParseStep("P") })

	apply := func(st Step, d Date) string {
		next, ok := st.Apply(d)
		require.True(t, ok)
		return next.String()
	}
	d := MustParseDate("2020-01-31")
	require.Equal(t, "2020-02-01", apply(DefaultStep, d))
	require.Equal(t, "2020-03-02", apply(MustParseStep("P1M"), d))
	require.Equal(t, "2021-01-31", apply(MustParseStep("P1Y"), d))

	// Steps that leave the representable dates are reported.
	_, ok := DefaultStep.Apply(MaxDate)
	require.False(t, ok)
	_, ok = MustParseStep("P1Y").Apply(MustParseDate("9999-06-01"))
	require.False(t, ok)
	_, ok = Step{Days: -1}.Apply(MinDate)
	require.False(t, ok)

	for _, in := range []string{"P10000000D", "P99999999999Y", "-P1D"} {
		_, err := ParseStep(in)
		require.Error(t, err, in)
	}
}

func TestDateBounds(t *testing.T) {
	require.Equal(t, "0001-01-01", MinDate.String())
	require.Equal(t, "9999-12-31", MaxDate.String())
	require.Equal(t, MinDate, MakeDate(1, time.January, 1))
	require.Equal(t, MaxDate, MakeDate(9999, time.December, 31))
	require.True(t, MinDate.IsValid())
	require.True(t, MaxDate.IsValid())
	require.False(t, (MinDate - 1).IsValid())
	require.False(t, (MaxDate + 1).IsValid())
	require.Panics(t, func() { MakeDate(10000, time.January, 1) })

	// The widest range still counts its days.
	r, err := Make(MinDate, MaxDate)
	require.NoError(t, err)
	require.Equal(t, int(MaxDate-MinDate)+1, r.CountDays())
	require.Equal(t, MaxDate, r.End())

	// Endpoints outside the representable dates are rejected instead of
	// wrapping around.
	for _, tc := range []struct{ start, end Date }{
		{Date(math.MinInt32), Date(math.MaxInt32)},
		{MinDate - 1, MaxDate},
		{MinDate, MaxDate + 1},
		{Date(math.MaxInt32), Date(math.MaxInt32)},
	} {
		r, err := Make(tc.start, tc.end)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrDateOutOfRange), "%v", err)
		require.False(t, errors.Is(err, ErrInvalidRange))
		require.True(t, r.IsEmpty())
	}

	_, err = DateFromUnix(2e14)
	require.True(t, errors.Is(err, ErrDateOutOfRange))
	_, err = DateFromUnix(math.MinInt64)
	require.True(t, errors.Is(err, ErrDateOutOfRange))
	d, err := DateFromUnix(MaxDate.Unix() + secondsPerDay - 1)
	require.NoError(t, err)
	require.Equal(t, MaxDate, d)
	_, err = DateFromUnix(MaxDate.Unix() + secondsPerDay)
	require.True(t, errors.Is(err, ErrDateOutOfRange))

	_, err = DateFromTime(time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, errors.Is(err, ErrDateOutOfRange))
	_, err = ParseDate("0000-12-31")
	require.True(t, errors.Is(err, ErrDateOutOfRange))

	// Large epoch values are an input error, not an inverted range.
	_, err = New(int64(0), int64(2e14))
	require.True(t, errors.Is(err, ErrDateOutOfRange))
	require.False(t, errors.Is(err, ErrInvalidRange))
	_, err = New(Date(math.MaxInt32), "2020-01-01")
	require.True(t, errors.Is(err, ErrDateOutOfRange))

	// Operations at the edges do not wrap.
	last := MustMake(MaxDate, MaxDate)
	first := MustMake(MinDate, MinDate)
	j, ok := Join(MustMake(MinDate, MaxDate-1), last)
	require.True(t, ok)
	require.Equal(t, MustMake(MinDate, MaxDate), j)
	_, ok = Join(first, last)
	require.False(t, ok)
	require.Equal(t, []Range{MustMake(MinDate+1, MaxDate)},
		Difference(MustMake(MinDate, MaxDate), first))
	require.Equal(t, []Range{first, last}, JoinRanges([]Range{last, first}))
	require.Equal(t, 2, CountRangeDays([]Range{first, last, last}))
	require.Equal(t, []Range{MustMake(MinDate+1, MaxDate-1)},
		SubtractRanges([]Range{MustMake(MinDate, MaxDate)}, []Range{first, last}))
	require.Equal(t, []Range{last}, IntersectRanges([]Range{MustMake(MinDate, MaxDate)}, []Range{last}))
	require.Equal(t, []Date{MaxDate - 1, MaxDate}, slices.Collect(MustMake(MaxDate-1, MaxDate).Days()))
	require.Equal(t, []Date{MaxDate - 1}, slices.Collect(MustMake(MaxDate-1, MaxDate).Period(MustParseStep("P1Y"))))
}
