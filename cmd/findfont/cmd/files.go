// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bpowers/findfont"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List cache files",
	Long:  "List the fontconfig cache files that would be loaded, in precedence order.",
	Args:  cobra.NoArgs,
	RunE:  runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	files, warnings := findfont.FindCacheFiles(cacheDirs(), viper.GetString("marker"))
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
