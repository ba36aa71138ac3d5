// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package findfont

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bpowers/findfont/internal/fccache"
	"github.com/bpowers/findfont/internal/index"
)

// Builder accumulates fonts into an Index.  The first path recorded for a
// family and style wins; later, different paths are reported as conflicts.
type Builder struct {
	log      logrus.FieldLogger
	families []family
	byName   map[string]int
	fonts    int
}

// NewBuilder returns an empty Builder.  Only WithLogger is relevant here.
func NewBuilder(opts ...Option) *Builder {
	return newBuilder(newOptions(opts))
}

func newBuilder(o *options) *Builder {
	return &Builder{
		log:    o.log,
		byName: make(map[string]int),
	}
}

// Add records that style of family lives at path.  It returns a
// *ConflictError if the style is already mapped to another path, in which
// case the index is left unchanged.
func (b *Builder) Add(familyName, styleName, path string) error {
	return b.add([]byte(familyName), []byte(styleName), []byte(path))
}

func (b *Builder) addFace(face fccache.Face) error {
	return b.add(face.Family, face.Style, face.Path)
}

// add takes slices that may alias a cache buffer; anything stored is copied.
func (b *Builder) add(familyName, styleName, path []byte) error {
	if b.byName == nil {
		panic("findfont: Builder used after Finalize")
	}

	i, ok := b.byName[string(familyName)]
	if !ok {
		i = len(b.families)
		name := string(familyName)
		b.families = append(b.families, family{name: name})
		b.byName[name] = i
	}
	f := &b.families[i]

	if st := f.find(string(styleName)); st != nil {
		if st.path == string(path) {
			return nil
		}
		err := &ConflictError{
			Family:   f.name,
			Style:    st.name,
			Path:     st.path,
			Rejected: string(path),
		}
		b.log.WithFields(logrus.Fields{
			"family":   err.Family,
			"style":    err.Style,
			"path":     err.Path,
			"rejected": err.Rejected,
		}).Warn("path mismatch for font")
		return err
	}

	f.styles = append(f.styles, style{name: string(styleName), path: string(path)})
	b.fonts++
	return nil
}

// Finalize freezes everything added so far into an Index.  The Builder
// must not be used afterwards.
func (b *Builder) Finalize() *Index {
	names := make([]string, len(b.families))
	for i := range b.families {
		names[i] = b.families[i].name
	}
	// we're done with this -- nil it so it can be GC'd earlier
	b.byName = nil

	table, err := index.Build(names)
	if err != nil {
		// family names are unique by construction
		panic(fmt.Errorf("invariant broken: %w", err))
	}

	x := &Index{
		families: b.families,
		table:    table,
		fonts:    b.fonts,
	}
	b.families = nil
	return x
}
