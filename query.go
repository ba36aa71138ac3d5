// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package findfont

import "strings"

// DefaultStyle is looked up when a query leaves the style empty.
const DefaultStyle = "Regular"

// Candidate is one entry of a fallback chain.  An empty Style means
// DefaultStyle.
type Candidate struct {
	Family string
	Style  string
}

func styleOrDefault(s string) string {
	if s == "" {
		return DefaultStyle
	}
	return s
}

// FindExact returns the file of the given family and style.  Both names
// must match exactly, including case.
func (x *Index) FindExact(familyName, styleName string) (string, bool) {
	f := x.lookup(familyName)
	if f == nil {
		return "", false
	}
	st := f.find(styleOrDefault(styleName))
	if st == nil {
		return "", false
	}
	return st.path, true
}

// FindPrefix returns the file of the first family whose name starts with
// familyPrefix, and within it the first style starting with stylePrefix.
// Only the first matching family is considered.
//
// If several families or styles match, which one is returned depends only on
// index order; use FindExact to pick a specific font.
func (x *Index) FindPrefix(familyPrefix, stylePrefix string) (string, bool) {
	if x == nil {
		return "", false
	}
	stylePrefix = styleOrDefault(stylePrefix)

	for i := range x.families {
		f := &x.families[i]
		if !strings.HasPrefix(f.name, familyPrefix) {
			continue
		}
		for _, st := range f.styles {
			if strings.HasPrefix(st.name, stylePrefix) {
				return st.path, true
			}
		}
		return "", false
	}
	return "", false
}

// FindFirstOf returns the file of the first candidate that resolves, along
// with that candidate's position.  exact selects FindExact over FindPrefix.
// If nothing resolves, the position is -1.
func (x *Index) FindFirstOf(candidates []Candidate, exact bool) (string, int, bool) {
	for i, c := range candidates {
		var path string
		var ok bool
		if exact {
			path, ok = x.FindExact(c.Family, c.Style)
		} else {
			path, ok = x.FindPrefix(c.Family, c.Style)
		}
		if ok {
			return path, i, true
		}
	}
	return "", -1, false
}
