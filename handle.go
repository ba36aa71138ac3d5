// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package findfont

import (
	"sync"
	"sync/atomic"
)

// Handle holds the current Index of a long-running process.  Readers call
// Index for every query (or batch of queries) and never see a partially
// built index; Reload builds a replacement and swaps it in.
type Handle struct {
	load func() (*Index, []Warning)

	mu  sync.Mutex // serializes reloads
	cur atomic.Pointer[Index]
}

// NewHandle loads an index with Load(opts...) and returns a Handle holding
// it, along with the warnings from that first load.
func NewHandle(opts ...Option) (*Handle, []Warning) {
	return newHandle(func() (*Index, []Warning) { return Load(opts...) })
}

// NewHandleFromPaths is like NewHandle, but always loads the given files.
func NewHandleFromPaths(paths []string, opts ...Option) (*Handle, []Warning) {
	paths = append([]string(nil), paths...)
	return newHandle(func() (*Index, []Warning) { return LoadIndex(paths, opts...) })
}

func newHandle(load func() (*Index, []Warning)) (*Handle, []Warning) {
	h := &Handle{load: load}
	warnings := h.Reload()
	return h, warnings
}

// Index returns the current index.
func (h *Handle) Index() *Index {
	return h.cur.Load()
}

// Reload rebuilds the index from scratch and replaces the current one.
func (h *Handle) Reload() []Warning {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx, warnings := h.load()
	h.cur.Store(idx)
	return warnings
}
