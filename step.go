// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package daterange

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sosodev/duration"
)

// Step is a calendar step used to walk through a range. It is expressed as
// an ISO-8601 duration with date components only, e.g. "P1D", "P2W" or
// "P1Y6M".
type Step struct {
	Years, Months, Days int
}

// DefaultStep advances one day at a time.
var DefaultStep = Step{Days: 1}

// maxStepComponent bounds each component of a parsed step. A larger step
// cannot land inside [MinDate, MaxDate] twice.
const maxStepComponent = int(MaxDate - MinDate)

// ParseStep parses an ISO-8601 duration of the form PnYnMnWnD. Components
// must be whole numbers and appear in that order, and the resulting step must
// advance. Time components (PT...) are rejected.
func ParseStep(s string) (Step, error) {
	upper := strings.ToUpper(s)
	// duration.Parse also accepts "-P..." and silently drops a trailing number
	// without a designator.
	if !strings.HasPrefix(upper, "P") || strings.ContainsAny(upper[len(upper)-1:], "0123456789") {
		return Step{}, errors.Newf("daterange: invalid step %q", s)
	}
	d, err := duration.Parse(upper)
	if err != nil {
		return Step{}, errors.Wrapf(err, "daterange: invalid step %q", s)
	}
	if strings.ContainsRune(upper, 'T') {
		return Step{}, errors.Newf("daterange: invalid step %q: time components are not supported", s)
	}
	// duration.Parse does not enforce the order of the designators, and a
	// repeated designator overwrites the previous value.
	const order = "YMWD"
	last := -1
	for _, c := range upper[1:] {
		if ('0' <= c && c <= '9') || c == '.' {
			continue
		}
		pos := strings.IndexRune(order, c)
		if pos <= last {
			return Step{}, errors.Newf("daterange: invalid step %q: unexpected %q", s, c)
		}
		last = pos
	}
	for _, v := range []float64{d.Years, d.Months, d.Weeks, d.Days} {
		if v != math.Trunc(v) || v > float64(maxStepComponent) {
			return Step{}, errors.Newf("daterange: invalid step %q: component %v out of range", s, v)
		}
	}
	st := Step{
		Years:  int(d.Years),
		Months: int(d.Months),
		Days:   7*int(d.Weeks) + int(d.Days),
	}
	if st.IsZero() {
		return Step{}, errors.Newf("daterange: step %q does not advance", s)
	}
	return st, nil
}

// MustParseStep is like ParseStep but panics on error.
func MustParseStep(s string) Step {
	st, err := ParseStep(s)
	if err != nil {
		panic(err)
	}
	return st
}

// IsZero returns true if the step does not advance.
func (s Step) IsZero() bool {
	return s.Years == 0 && s.Months == 0 && s.Days == 0
}

// Apply returns d advanced by the step. Month and year steps that land past
// the end of a month are normalized the way time.AddDate does. The second
// return value is false if the result is before MinDate or after MaxDate.
func (s Step) Apply(d Date) (Date, bool) {
	var days int64
	if s.Years == 0 && s.Months == 0 {
		days = int64(d) + int64(s.Days)
	} else {
		days = daysFromTime(d.Time().AddDate(s.Years, s.Months, s.Days))
	}
	res, err := checkDays(days)
	return res, err == nil
}

// String returns the step as an ISO-8601 duration, e.g. "P1M2D".
func (s Step) String() string {
	if s.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteString("P")
	if s.Years != 0 {
		fmt.Fprintf(&b, "%dY", s.Years)
	}
	if s.Months != 0 {
		fmt.Fprintf(&b, "%dM", s.Months)
	}
	if s.Days != 0 {
		fmt.Fprintf(&b, "%dD", s.Days)
	}
	return b.String()
}
