// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package findfont finds installed fonts by reading fontconfig's binary
// caches, without linking against fontconfig.
//
// Basic usage:
//
//	idx, warnings := findfont.Load()
//	for _, w := range warnings {
//	    log.Print(w)
//	}
//
//	// exact family and style; "" means "Regular"
//	path, ok := idx.FindExact("DejaVu Sans", "Bold")
//
//	// first installed font of a fallback chain
//	path, i, ok := idx.FindFirstOf(findfont.MonospaceFonts, true)
//
//	for f := range idx.All() {
//	    fmt.Println(f.Family, f.Style, f.Path)
//	}
//
// An Index is immutable once built and safe for concurrent use.  Use a
// Handle to reload it while other goroutines are querying.
package findfont

import (
	"iter"

	"github.com/bpowers/findfont/internal/index"
)

// Font is one (family, style, file) entry of an Index.
type Font struct {
	Family string
	Style  string
	Path   string
}

type style struct {
	name string
	path string
}

type family struct {
	name   string
	styles []style
}

func (f *family) find(name string) *style {
	for i := range f.styles {
		if f.styles[i].name == name {
			return &f.styles[i]
		}
	}
	return nil
}

// Index maps family names to their styles and font files.  The zero value
// and a nil *Index are empty indexes.
type Index struct {
	families []family
	table    *index.Table
	fonts    int
}

// lookup returns the family named name, or nil.
func (x *Index) lookup(name string) *family {
	if x == nil || len(x.families) == 0 || x.table == nil {
		return nil
	}
	i := int(x.table.MaybeLookup(name))
	if i >= len(x.families) {
		return nil
	}
	f := &x.families[i]
	if f.name != name {
		// this is expected: if we look up a family that doesn't
		// exist the table still hands back some slot
		return nil
	}
	return f
}

// Len returns the number of families.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.families)
}

// FontCount returns the number of (family, style) entries.
func (x *Index) FontCount() int {
	if x == nil {
		return 0
	}
	return x.fonts
}

// All returns every font in the index.  Families come in the order they were
// first seen while loading, styles likewise within a family.  Each call
// starts a new pass.
func (x *Index) All() iter.Seq[Font] {
	return func(yield func(Font) bool) {
		if x == nil {
			return
		}
		for i := range x.families {
			f := &x.families[i]
			for _, st := range f.styles {
				if !yield(Font{Family: f.name, Style: st.name, Path: st.path}) {
					return
				}
			}
		}
	}
}

// Families returns the family names in index order.
func (x *Index) Families() iter.Seq[string] {
	return func(yield func(string) bool) {
		if x == nil {
			return
		}
		for i := range x.families {
			if !yield(x.families[i].name) {
				return
			}
		}
	}
}

// Styles returns the styles of family and their files.
func (x *Index) Styles(familyName string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		f := x.lookup(familyName)
		if f == nil {
			return
		}
		for _, st := range f.styles {
			if !yield(st.name, st.path) {
				return
			}
		}
	}
}
