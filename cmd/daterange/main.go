// Copyright 2018 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/daterange/tool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "daterange [command] (flags)",
	Short: "date range inspection tool",
	Long: `
Combine and inspect closed date ranges. Ranges are written "start|end" or
"[start, end]" with ISO dates (YYYY-MM-DD); both ends are included.
`,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	t := tool.New(tool.WithLogger(tool.DefaultLogger{}))
	rootCmd.AddCommand(t.Commands...)

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
