// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [family-prefix]",
	Short: "List fonts",
	Long:  "List every indexed font, optionally only families starting with a prefix.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	idx := loadIndex()

	out := cmd.OutOrStdout()
	count := 0
	for f := range idx.All() {
		if !strings.HasPrefix(f.Family, prefix) {
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", f.Family, f.Style, f.Path)
		count++
	}

	if count == 0 {
		fmt.Fprintln(out, "(no fonts)")
	}

	return nil
}
