// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package daterange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractUnordered(t *testing.T) {
	dates := []Date{
		MustParseDate("2020-01-03"),
		MustParseDate("2020-01-04"),
		MustParseDate("2020-01-01"),
		MustParseDate("2020-01-01"),
		MustParseDate("2020-01-02"),
	}
	// Out of order dates and duplicates start new runs; nothing is reordered.
	require.Equal(t, []Range{
		MustParse("2020-01-03|2020-01-04"),
		MustParse("2020-01-01|2020-01-01"),
		MustParse("2020-01-01|2020-01-02"),
	}, ExtractDateRanges(dates))
}

func TestExtractEmpty(t *testing.T) {
	res, err := ExtractRanges(nil)
	require.NoError(t, err)
	require.Empty(t, res)
	require.Empty(t, ExtractDateRanges([]Date{}))

	res, err = ExtractRanges([]string{"2020-01-05"})
	require.NoError(t, err)
	require.Equal(t, []Range{MustParse("2020-01-05|2020-01-05")}, res)
}
