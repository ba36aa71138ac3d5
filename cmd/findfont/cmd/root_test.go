// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/bpowers/findfont/internal/fctest"
)

func resetFlag(f *pflag.Flag) {
	if sv, ok := f.Value.(pflag.SliceValue); ok {
		_ = sv.Replace(nil)
	} else {
		_ = f.Value.Set(f.DefValue)
	}
	f.Changed = false
}

// execute runs the command line args with flags from earlier runs cleared
// and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	rootCmd.PersistentFlags().VisitAll(resetFlag)
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(resetFlag)
	}

	var out, stderr bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFixture(t *testing.T, dir string) string {
	path := filepath.Join(dir, "fonts.cache-9")
	require.NoError(t, fctest.WriteFile(path,
		fctest.Font{Family: "DejaVu Sans", Style: "Book", Path: "/d/DejaVuSans.ttf"},
		fctest.Font{Family: "Hack", Style: "Regular", Path: "/c/Hack.ttf"},
		fctest.Font{Family: "Hack", Style: "Bold", Path: "/c/Hack-Bold.ttf"},
	))
	return path
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	cache := writeFixture(t, dir)

	for _, testcase := range []struct {
		args     []string
		expected string
	}{
		{[]string{"find", "Hack"}, "/c/Hack.ttf\n"},
		{[]string{"find", "--style", "Bold", "Hack"}, "/c/Hack-Bold.ttf\n"},
		{[]string{"find", "--vague", "--style", "Bo", "Ha"}, "/c/Hack-Bold.ttf\n"},
		{[]string{"first", "--monospace"}, "1\t/c/Hack.ttf\n"},
		{[]string{"first", "Nope", "DejaVu Sans:Book"}, "1\t/d/DejaVuSans.ttf\n"},
		{[]string{"first", "--vague", "Nope", "Deja:Bo"}, "1\t/d/DejaVuSans.ttf\n"},
		{[]string{"list", "Ha"}, "Hack\tRegular\t/c/Hack.ttf\nHack\tBold\t/c/Hack-Bold.ttf\n"},
		{[]string{"list", "Nope"}, "(no fonts)\n"},
		{[]string{"files"}, cache + "\n"},
	} {
		t.Run(strings.Join(testcase.args, " "), func(t *testing.T) {
			out, err := execute(t, append(testcase.args, "--cache-dir", dir)...)
			require.NoError(t, err)
			require.Equal(t, testcase.expected, out)
		})
	}

	_, err := execute(t, "find", "--cache-dir", dir, "Hack", "--style", "Italic")
	require.True(t, errors.Is(err, errNotFound))

	_, err = execute(t, "first", "--cache-dir", dir, "Nope")
	require.True(t, errors.Is(err, errNotFound))

	_, err = execute(t, "first", "--cache-dir", dir)
	require.Error(t, err)
}

func TestCacheDirsFromEnv(t *testing.T) {
	spaced := filepath.Join(t.TempDir(), "font caches")
	require.NoError(t, os.Mkdir(spaced, 0755))
	first := writeFixture(t, spaced)
	second := writeFixture(t, t.TempDir())

	t.Setenv("FINDFONT_CACHE_DIRS", spaced+string(filepath.ListSeparator)+filepath.Dir(second))

	out, err := execute(t, "files")
	require.NoError(t, err)
	require.Equal(t, first+"\n"+second+"\n", out)

	out, err = execute(t, "find", "Hack")
	require.NoError(t, err)
	require.Equal(t, "/c/Hack.ttf\n", out)
}
