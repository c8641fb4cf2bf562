// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/daterange"
	"github.com/cockroachdb/daterange/internal/strparse"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// rangesT implements the range commands.
type rangesT struct {
	Commands []*cobra.Command

	Join      *cobra.Command
	Sort      *cobra.Command
	Intersect *cobra.Command
	Subtract  *cobra.Command
	Extract   *cobra.Command
	Period    *cobra.Command
	Count     *cobra.Command

	logger Logger

	// Configuration.
	table   bool
	times   bool
	verbose bool
	other   []string
	step    string
}

func newRanges() *rangesT {
	r := &rangesT{}

	r.Join = &cobra.Command{
		Use:   "join [<range>...]",
		Short: "merge overlapping and adjacent ranges",
		Long: `
Merge all the overlapping and adjacent ranges, printing the resulting
disjoint ranges in ascending order. Ranges are given as "start|end" or
"[start, end]"; without arguments they are read from stdin.
`,
		RunE: r.runJoin,
	}
	r.Sort = &cobra.Command{
		Use:   "sort [<range>...]",
		Short: "sort ranges by start and end date",
		RunE:  r.runSort,
	}
	r.Intersect = &cobra.Command{
		Use:   "intersect [<range>...] --other <range>...",
		Short: "print the dates covered by both sets of ranges",
		RunE:  r.runIntersect,
	}
	r.Subtract = &cobra.Command{
		Use:   "subtract [<range>...] --other <range>...",
		Short: "remove the dates of the other ranges",
		RunE:  r.runSubtract,
	}
	r.Extract = &cobra.Command{
		Use:   "extract [<date>...]",
		Short: "group ascending dates into ranges of consecutive days",
		Long: `
Group a list of dates into ranges of consecutive days. The dates must be in
ascending order without duplicates; without arguments they are read from
stdin, whitespace separated.
`,
		RunE: r.runExtract,
	}
	r.Period = &cobra.Command{
		Use:   "period <range>",
		Short: "list the dates of a range",
		RunE:  r.runPeriod,
	}
	r.Count = &cobra.Command{
		Use:   "count [<range>...]",
		Short: "print the number of distinct dates covered by the ranges",
		RunE:  r.runCount,
	}

	r.Commands = []*cobra.Command{r.Join, r.Sort, r.Intersect, r.Subtract, r.Extract, r.Period, r.Count}
	for _, cmd := range r.Commands {
		cmd.SilenceUsage = true
		cmd.Flags().BoolVarP(
			&r.verbose, "verbose", "v", false, "verbose output")
	}
	for _, cmd := range []*cobra.Command{r.Join, r.Sort, r.Intersect, r.Subtract, r.Extract} {
		cmd.Flags().BoolVar(
			&r.table, "table", false, "print ranges as a table")
		cmd.Flags().BoolVar(
			&r.times, "times", false, "print the first and last second of each range")
	}
	for _, cmd := range []*cobra.Command{r.Intersect, r.Subtract} {
		cmd.Flags().StringArrayVar(
			&r.other, "other", nil, "a range of the other set (repeatable)")
	}
	r.Period.Flags().StringVar(
		&r.step, "step", daterange.DefaultStep.String(), "ISO-8601 step between dates, e.g. P1D, P2W, P1M")
	return r
}

func (r *rangesT) infof(cmd *cobra.Command, format string, args ...interface{}) {
	if !r.verbose {
		return
	}
	l := r.logger
	if l == nil {
		l = newWriterLogger(cmd.ErrOrStderr())
	}
	l.Infof(format, args...)
}

func (r *rangesT) runJoin(cmd *cobra.Command, args []string) error {
	rs, err := r.readRanges(cmd, args)
	if err != nil {
		return err
	}
	res := daterange.JoinRanges(rs)
	r.infof(cmd, "joined %d ranges into %d", len(rs), len(res))
	r.printRanges(cmd.OutOrStdout(), res)
	return nil
}

func (r *rangesT) runSort(cmd *cobra.Command, args []string) error {
	rs, err := r.readRanges(cmd, args)
	if err != nil {
		return err
	}
	r.printRanges(cmd.OutOrStdout(), daterange.CleanupSort(rs))
	return nil
}

func (r *rangesT) runIntersect(cmd *cobra.Command, args []string) error {
	left, right, err := r.readSets(cmd, args)
	if err != nil {
		return err
	}
	r.printRanges(cmd.OutOrStdout(), daterange.IntersectRanges(left, right))
	return nil
}

func (r *rangesT) runSubtract(cmd *cobra.Command, args []string) error {
	left, right, err := r.readSets(cmd, args)
	if err != nil {
		return err
	}
	r.printRanges(cmd.OutOrStdout(), daterange.SubtractRanges(left, right))
	return nil
}

func (r *rangesT) runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		in, err := readInput(cmd)
		if err != nil {
			return err
		}
		args = strings.Fields(in)
	}
	res, err := daterange.ExtractRanges(args)
	if err != nil {
		return err
	}
	r.infof(cmd, "extracted %d ranges from %d dates", len(res), len(args))
	r.printRanges(cmd.OutOrStdout(), res)
	return nil
}

func (r *rangesT) runPeriod(cmd *cobra.Command, args []string) error {
	step, err := daterange.ParseStep(r.step)
	if err != nil {
		return err
	}
	rs, err := r.readRanges(cmd, args)
	if err != nil {
		return err
	}
	if len(rs) != 1 {
		return errors.Newf("expected a single range, got %d", len(rs))
	}
	stdout := cmd.OutOrStdout()
	n := 0
	for d := range rs[0].Period(step) {
		fmt.Fprintf(stdout, "%s\n", d)
		n++
	}
	r.infof(cmd, "%d dates in %s with step %s", n, rs[0], step)
	return nil
}

func (r *rangesT) runCount(cmd *cobra.Command, args []string) error {
	rs, err := r.readRanges(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", daterange.CountRangeDays(rs))
	return nil
}

// readSets returns the ranges given as arguments (or on stdin) and the ranges
// given with --other.
func (r *rangesT) readSets(cmd *cobra.Command, args []string) (left, right []daterange.Range, _ error) {
	if len(r.other) == 0 {
		return nil, nil, errors.New("--other is required")
	}
	left, err := r.readRanges(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	right, err = parseRanges(strings.Join(r.other, " "))
	if err != nil {
		return nil, nil, err
	}
	r.infof(cmd, "read %d ranges and %d other ranges", len(left), len(right))
	return left, right, nil
}

// readRanges parses the ranges given as arguments, or read from stdin when
// there are no arguments.
func (r *rangesT) readRanges(cmd *cobra.Command, args []string) ([]daterange.Range, error) {
	in := strings.Join(args, " ")
	if len(args) == 0 {
		var err error
		if in, err = readInput(cmd); err != nil {
			return nil, err
		}
	}
	rs, err := parseRanges(in)
	if err != nil {
		return nil, err
	}
	r.infof(cmd, "read %d ranges", len(rs))
	return rs, nil
}

// readInput reads stdin, skipping blank lines and lines starting with '#'.
func readInput(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	var buf strings.Builder
	for line := range crstrings.LinesSeq(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		buf.WriteString(line)
		buf.WriteString(" ")
	}
	return buf.String(), nil
}

// parseRanges parses a whitespace separated list of ranges, each in the
// "start|end" or "[start, end]" form.
func parseRanges(s string) ([]daterange.Range, error) {
	var res []daterange.Range
	err := strparse.Catch(func() {
		p := strparse.MakeParser(strparse.RangeSeparators, s)
		for !p.Done() {
			start, end := p.Range()
			r, err := daterange.New(start, end)
			if err != nil {
				p.Errf("%v", err)
			}
			res = append(res, r)
		}
	})
	return res, err
}

func (r *rangesT) printRanges(w io.Writer, rs []daterange.Range) {
	format := func(rg daterange.Range) (start, end string) {
		if r.times {
			return rg.IsoStartTime(), rg.IsoEndTime()
		}
		return rg.IsoStart(), rg.IsoEnd()
	}
	if r.table {
		tw := tablewriter.NewWriter(w)
		tw.SetHeader([]string{"start", "end", "days"})
		for _, rg := range rs {
			start, end := format(rg)
			tw.Append([]string{start, end, strconv.Itoa(rg.CountDays())})
		}
		tw.Render()
		return
	}
	for _, rg := range rs {
		start, end := format(rg)
		fmt.Fprintf(w, "%s|%s\n", start, end)
	}
}
