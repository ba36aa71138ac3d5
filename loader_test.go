// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package findfont

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/bpowers/findfont/internal/fccache"
	"github.com/bpowers/findfont/internal/fctest"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func writeCache(t testing.TB, dir, name string, fonts ...fctest.Font) string {
	path := filepath.Join(dir, name)
	require.NoError(t, fctest.WriteFile(path, fonts...))
	return path
}

func userAndSystem(t testing.TB) []string {
	dir := t.TempDir()
	user := writeCache(t, dir, "user.cache",
		fctest.Font{Family: "Arial", Style: "Regular", Path: "/a/Arial.ttf"})
	system := writeCache(t, dir, "system.cache",
		fctest.Font{Family: "Arial", Style: "Regular", Path: "/b/Arial.ttf"},
		fctest.Font{Family: "Hack", Style: "Regular", Path: "/c/Hack.ttf"})
	return []string{user, system}
}

func TestLoadIndex_FirstFileWins(t *testing.T) {
	paths := userAndSystem(t)

	for _, mmap := range []bool{true, false} {
		idx, warnings := LoadIndex(paths, WithLogger(quietLogger()), WithMmap(mmap))

		path, ok := idx.FindExact("Arial", "Regular")
		require.True(t, ok)
		require.Equal(t, "/a/Arial.ttf", path)

		path, ok = idx.FindExact("Hack", "Regular")
		require.True(t, ok)
		require.Equal(t, "/c/Hack.ttf", path)

		require.Len(t, warnings, 1)
		require.Equal(t, paths[1], warnings[0].Path)
		require.True(t, errors.Is(warnings[0], ErrDuplicateConflict))

		var conflict *ConflictError
		require.True(t, errors.As(warnings[0], &conflict))
		require.Equal(t, &ConflictError{
			Family:   "Arial",
			Style:    "Regular",
			Path:     "/a/Arial.ttf",
			Rejected: "/b/Arial.ttf",
		}, conflict)

		require.Equal(t, 2, idx.Len())
		require.Equal(t, 2, idx.FontCount())
	}
}

func TestLoadIndex_Concurrent(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	// every file claims the same font at a different path, plus one of its own
	for _, name := range []string{"a.cache", "b.cache", "c.cache", "d.cache", "e.cache", "f.cache"} {
		paths = append(paths, writeCache(t, dir, name,
			fctest.Font{Family: "Shared", Style: "Regular", Path: "/" + name + "/Shared.ttf"},
			fctest.Font{Family: name, Style: "Regular", Path: "/" + name + "/Own.ttf"}))
	}

	for _, n := range []int{1, 2, 4, 16} {
		idx, warnings := LoadIndex(paths, WithLogger(quietLogger()), WithConcurrency(n))
		path, ok := idx.FindExact("Shared", "")
		require.True(t, ok)
		require.Equal(t, "/a.cache/Shared.ttf", path)
		require.Len(t, warnings, len(paths)-1)
		for i, w := range warnings {
			require.Equal(t, paths[i+1], w.Path)
		}

		var families []string
		for f := range idx.Families() {
			families = append(families, f)
		}
		require.Equal(t, []string{"Shared", "a.cache", "b.cache", "c.cache", "d.cache", "e.cache", "f.cache"}, families)
	}
}

func TestLoadIndex_SamePathNoConflict(t *testing.T) {
	dir := t.TempDir()
	font := fctest.Font{Family: "Hack", Style: "Regular", Path: "/c/Hack.ttf"}
	a := writeCache(t, dir, "a.cache", font)
	b := writeCache(t, dir, "b.cache", font, fctest.Font{Family: "Hack", Style: "Bold", Path: "/c/Hack-Bold.ttf"})

	idx, warnings := LoadIndex([]string{a, b}, WithLogger(quietLogger()))
	require.Empty(t, warnings)
	require.Equal(t, 1, idx.Len())
	require.Equal(t, 2, idx.FontCount())
}

func TestLoadIndex_DuplicateContent(t *testing.T) {
	dir := t.TempDir()
	font := fctest.Font{Family: "Hack", Style: "Regular", Path: "/c/Hack.ttf"}
	a := writeCache(t, dir, "a.cache", font)
	b := writeCache(t, dir, "b.cache", font)

	idx, warnings := LoadIndex([]string{a, b, a}, WithLogger(quietLogger()))
	require.Empty(t, warnings)
	require.Equal(t, 1, idx.FontCount())
}

func TestLoadIndex_UnsupportedVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.cache")
	buf := fctest.EncodePatterns(fctest.Options{Version: 7},
		fctest.Font{Family: "Hack", Style: "Regular", Path: "/c/Hack.ttf"}.Pattern())
	require.NoError(t, os.WriteFile(path, buf, 0644))

	idx, warnings := LoadIndex([]string{path}, WithLogger(quietLogger()))
	require.Empty(t, warnings)
	require.Zero(t, idx.Len())
	require.Zero(t, idx.FontCount())
}

func TestLoadIndex_Malformed(t *testing.T) {
	dir := t.TempDir()

	truncated := filepath.Join(dir, "truncated.cache")
	buf := fctest.Encode(fctest.Font{Family: "Broken", Style: "Regular", Path: "/x/Broken.ttf"})
	require.NoError(t, os.WriteFile(truncated, buf[:fccache.HeaderSize-8], 0644))

	corrupt := filepath.Join(dir, "corrupt.cache")
	buf = fctest.Encode(
		fctest.Font{Family: "Partial", Style: "Regular", Path: "/x/Partial.ttf"},
		fctest.Font{Family: "Partial", Style: "Bold", Path: "/x/Partial-Bold.ttf"})
	binary.LittleEndian.PutUint32(buf[fctest.FontSetOffset:], 1<<20)
	require.NoError(t, os.WriteFile(corrupt, buf, 0644))

	missing := filepath.Join(dir, "missing.cache")
	good := writeCache(t, dir, "good.cache", fctest.Font{Family: "Hack", Style: "Regular", Path: "/c/Hack.ttf"})

	idx, warnings := LoadIndex([]string{truncated, corrupt, missing, good}, WithLogger(quietLogger()))
	require.Len(t, warnings, 3)

	require.Equal(t, truncated, warnings[0].Path)
	require.True(t, errors.Is(warnings[0], ErrMalformedCache))
	require.True(t, errors.Is(warnings[0], fccache.ErrMalformed))
	require.Equal(t, truncated+": malformed font cache: file too short: 56 < 64", warnings[0].Error())

	require.Equal(t, corrupt, warnings[1].Path)
	require.True(t, errors.Is(warnings[1], ErrMalformedCache))

	require.Equal(t, missing, warnings[2].Path)
	require.True(t, errors.Is(warnings[2], ErrIOUnavailable))
	require.True(t, errors.Is(warnings[2], os.ErrNotExist))

	// nothing from a malformed file is merged
	_, ok := idx.FindExact("Partial", "Regular")
	require.False(t, ok)

	path, ok := idx.FindExact("Hack", "Regular")
	require.True(t, ok)
	require.Equal(t, "/c/Hack.ttf", path)
	require.Equal(t, 1, idx.Len())
}

func TestLoadIndex_NothingLoads(t *testing.T) {
	dir := t.TempDir()
	idx, warnings := LoadIndex([]string{filepath.Join(dir, "nope.cache")}, WithLogger(quietLogger()))
	require.Len(t, warnings, 1)
	require.NotNil(t, idx)
	require.Zero(t, idx.Len())

	_, ok := idx.FindExact("Hack", "Regular")
	require.False(t, ok)

	idx, warnings = LoadIndex(nil, WithLogger(quietLogger()))
	require.Empty(t, warnings)
	require.Zero(t, idx.Len())
}

func TestLoad_CacheDirs(t *testing.T) {
	user, system := t.TempDir(), t.TempDir()
	writeCache(t, user, "abc-le64.cache-9",
		fctest.Font{Family: "Arial", Style: "Regular", Path: "/a/Arial.ttf"})
	writeCache(t, system, "def-le64.cache-9",
		fctest.Font{Family: "Arial", Style: "Regular", Path: "/b/Arial.ttf"},
		fctest.Font{Family: "Hack", Style: "Regular", Path: "/c/Hack.ttf"})
	writeCache(t, system, "CACHEDIR.TAG")

	idx, warnings := Load(WithLogger(quietLogger()), WithCacheDirs(user, system))
	require.Len(t, warnings, 1)
	require.True(t, errors.Is(warnings[0], ErrDuplicateConflict))

	path, ok := idx.FindExact("Arial", "")
	require.True(t, ok)
	require.Equal(t, "/a/Arial.ttf", path)
	require.Equal(t, 2, idx.Len())
}

func TestLoad_NoCacheFiles(t *testing.T) {
	idx, warnings := Load(WithLogger(quietLogger()), WithCacheDirs(t.TempDir()))
	require.Len(t, warnings, 1)
	require.True(t, errors.Is(warnings[0], ErrIOUnavailable))
	require.Zero(t, idx.Len())
}

func TestMalformed_WrapsOnce(t *testing.T) {
	w := malformed("/x.cache", errors.New("short read"))
	require.True(t, errors.Is(w, ErrMalformedCache))
	require.Equal(t, "/x.cache: malformed font cache: short read", w.Error())
}

func TestLoadIndex_MergeSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fonts.cache-9")
	buf := fctest.EncodePatterns(fctest.Options{},
		fctest.Font{Family: "Hack", Style: "Regular", Path: "/c/Hack.ttf"}.Pattern(),
		fctest.Pattern{},
		fctest.Font{Family: "Hack", Style: "Bold", Path: "/c/Hack-Bold.ttf"}.Pattern())
	require.NoError(t, os.WriteFile(path, buf, 0644))

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	_, warnings := LoadIndex([]string{path}, WithLogger(logger), WithMmap(false))
	require.Empty(t, warnings)

	var merged *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Message == "merged font cache" {
			merged = entry
		}
	}
	require.NotNil(t, merged)
	require.Equal(t, path, merged.Data["path"])
	require.Equal(t, int64(3), merged.Data["patterns"])
	require.Equal(t, 2, merged.Data["fonts"])
	require.Equal(t, 1, merged.Data["incomplete"])
	require.Equal(t, false, merged.Data["mapped"])
}
