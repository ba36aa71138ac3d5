// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bpowers/findfont"
)

var errNotFound = errors.New("no matching font")

var findCmd = &cobra.Command{
	Use:   "find <family>",
	Short: "Print the file of a font",
	Long:  "Print the file of a family and style.  With --vague, family and style are prefixes.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

var firstCmd = &cobra.Command{
	Use:   "first [family[:style]...]",
	Short: "Print the first installed font of a list",
	Long: "Print the file of the first candidate that resolves, preceded by its position.\n" +
		"--ui and --monospace append the built-in fallback chains.",
	RunE: runFirst,
}

func init() {
	findCmd.Flags().String("style", "", "style name (default: "+findfont.DefaultStyle+")")
	findCmd.Flags().Bool("vague", false, "match family and style by prefix")
	rootCmd.AddCommand(findCmd)

	firstCmd.Flags().Bool("vague", false, "match family and style by prefix")
	firstCmd.Flags().Bool("ui", false, "try common UI fonts")
	firstCmd.Flags().Bool("monospace", false, "try common monospace fonts")
	rootCmd.AddCommand(firstCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	style, _ := cmd.Flags().GetString("style")
	vague, _ := cmd.Flags().GetBool("vague")

	idx := loadIndex()

	var path string
	var ok bool
	if vague {
		path, ok = idx.FindPrefix(args[0], style)
	} else {
		path, ok = idx.FindExact(args[0], style)
	}
	if !ok {
		return fmt.Errorf("%w: %q", errNotFound, args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// parseCandidate splits "Family:Style"; the style is optional.
func parseCandidate(arg string) findfont.Candidate {
	family, style, _ := strings.Cut(arg, ":")
	return findfont.Candidate{Family: family, Style: style}
}

func runFirst(cmd *cobra.Command, args []string) error {
	vague, _ := cmd.Flags().GetBool("vague")
	ui, _ := cmd.Flags().GetBool("ui")
	monospace, _ := cmd.Flags().GetBool("monospace")

	var candidates []findfont.Candidate
	for _, arg := range args {
		candidates = append(candidates, parseCandidate(arg))
	}
	if ui {
		candidates = append(candidates, findfont.UIFonts...)
	}
	if monospace {
		candidates = append(candidates, findfont.MonospaceFonts...)
	}
	if len(candidates) == 0 {
		return errors.New("no candidates given")
	}

	idx := loadIndex()

	path, i, ok := idx.FindFirstOf(candidates, !vague)
	if !ok {
		return errNotFound
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, path)
	return nil
}
