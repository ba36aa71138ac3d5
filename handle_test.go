// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package findfont

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpowers/findfont/internal/fctest"
)

func TestHandle_Reload(t *testing.T) {
	dir := t.TempDir()
	writeCache(t, dir, "fonts.cache-9", fctest.Font{Family: "Hack", Style: "Regular", Path: "/c/Hack.ttf"})

	h, warnings := NewHandle(WithLogger(quietLogger()), WithCacheDirs(dir))
	require.Empty(t, warnings)
	first := h.Index()
	_, ok := first.FindExact("Hack", "")
	require.True(t, ok)

	writeCache(t, dir, "fonts.cache-9", fctest.Font{Family: "Inconsolata", Style: "Regular", Path: "/i/Inconsolata.ttf"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				idx := h.Index()
				assert.Equal(t, 1, idx.Len())
			}
		}()
	}
	require.Empty(t, h.Reload())
	wg.Wait()

	path, _, ok := h.Index().FindFirstOf(MonospaceFonts, true)
	require.True(t, ok)
	require.Equal(t, "/i/Inconsolata.ttf", path)

	// indexes handed out earlier are unaffected
	_, ok = first.FindExact("Hack", "")
	require.True(t, ok)
}

func TestHandle_FromPaths(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "missing.cache")}
	h, warnings := NewHandleFromPaths(paths, WithLogger(quietLogger()))
	require.Len(t, warnings, 1)
	require.Zero(t, h.Index().Len())

	writeCache(t, dir, "missing.cache", fctest.Font{Family: "Hack", Style: "Regular", Path: "/c/Hack.ttf"})
	require.Empty(t, h.Reload())
	require.Equal(t, 1, h.Index().Len())
}
