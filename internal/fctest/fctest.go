// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package fctest builds synthetic fontconfig cache files for tests.  The
// layout matches what fontconfig 2.13+ writes on 64-bit little-endian hosts,
// restricted to the records findfont reads.
package fctest

import (
	"encoding/binary"
	"os"
	"sort"
)

const (
	MagicMmap  = uint32(0xFC02FC04)
	MagicAlloc = uint32(0xFC02FC05)
	Version    = 9

	ObjectFamily = 1
	ObjectStyle  = 3
	ObjectSlant  = 7
	ObjectFile   = 21

	TypeInteger = 1
	TypeString  = 3

	// HeaderFontSetOffset is where the header stores the tagged font set
	// offset, for tests that corrupt it.
	HeaderFontSetOffset = 40
	// FontSetOffset is where Encode places the font set.
	FontSetOffset = 64
)

// Value is one entry of a value list.
type Value struct {
	Type int32
	Str  string
	Int  int64
}

// String returns a string value.
func String(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// Integer returns an integer value.
func Integer(n int64) Value {
	return Value{Type: TypeInteger, Int: n}
}

// Elt is one attribute of a pattern.  An Elt with no values is written with
// a zero value list offset.
type Elt struct {
	Object int32
	Values []Value
}

// Pattern is one font.  Elts are sorted by object id when encoded.
type Pattern struct {
	Elts []Elt
}

// Font is a convenience for the common case of a complete pattern.
type Font struct {
	Family string
	Style  string
	Path   string
}

// Pattern returns the pattern fontconfig would write for f, including an
// integer attribute the decoder has to step over.
func (f Font) Pattern() Pattern {
	return Pattern{Elts: []Elt{
		{Object: ObjectFamily, Values: []Value{String(f.Family)}},
		{Object: ObjectStyle, Values: []Value{String(f.Style)}},
		{Object: ObjectSlant, Values: []Value{Integer(0)}},
		{Object: ObjectFile, Values: []Value{String(f.Path)}},
	}}
}

// Options controls the header of an encoded cache.
type Options struct {
	Magic   uint32
	Version int32
}

// Encode builds a cache containing fonts.
func Encode(fonts ...Font) []byte {
	patterns := make([]Pattern, 0, len(fonts))
	for _, f := range fonts {
		patterns = append(patterns, f.Pattern())
	}
	return EncodePatterns(Options{}, patterns...)
}

// EncodePatterns builds a cache containing patterns.  Zero fields in opts
// take the values of a current fontconfig allocated cache.
func EncodePatterns(opts Options, patterns ...Pattern) []byte {
	if opts.Magic == 0 {
		opts.Magic = MagicAlloc
	}
	if opts.Version == 0 {
		opts.Version = Version
	}

	w := &writer{}
	header := w.alloc(64)
	w.putU32(header+0, opts.Magic)
	w.putU32(header+4, uint32(opts.Version))

	fs := w.alloc(16)
	w.putOffset(header+HeaderFontSetOffset, header, fs)
	w.putU32(fs+0, uint32(len(patterns)))
	w.putU32(fs+4, uint32(len(patterns)))

	slots := w.alloc(8 * len(patterns))
	w.putOffset(fs+8, fs, slots)
	for i, p := range patterns {
		off := w.pattern(p)
		w.putOffset(slots+int64(8*i), fs, off)
	}

	w.putU64(header+8, uint64(len(w.buf)))
	return w.buf
}

// WriteFile encodes fonts into a cache file at path.
func WriteFile(path string, fonts ...Font) error {
	return os.WriteFile(path, Encode(fonts...), 0644)
}

type writer struct {
	buf []byte
}

// alloc appends n zeroed, 8-byte aligned bytes and returns their offset.
func (w *writer) alloc(n int) int64 {
	for len(w.buf)%8 != 0 {
		w.buf = append(w.buf, 0)
	}
	off := int64(len(w.buf))
	w.buf = append(w.buf, make([]byte, n)...)
	return off
}

func (w *writer) putU32(at int64, v uint32) {
	binary.LittleEndian.PutUint32(w.buf[at:at+4], v)
}

func (w *writer) putU64(at int64, v uint64) {
	binary.LittleEndian.PutUint64(w.buf[at:at+8], v)
}

// putOffset stores at `at` the tagged offset of target relative to base.
func (w *writer) putOffset(at, base, target int64) {
	w.putU64(at, uint64(target-base)|1)
}

func (w *writer) cstring(s string) int64 {
	off := w.alloc(len(s) + 1)
	copy(w.buf[off:], s)
	return off
}

func (w *writer) pattern(p Pattern) int64 {
	elts := append([]Elt(nil), p.Elts...)
	sort.SliceStable(elts, func(i, j int) bool { return elts[i].Object < elts[j].Object })

	off := w.alloc(24)
	w.putU32(off+0, uint32(len(elts)))
	w.putU32(off+4, uint32(len(elts)))
	w.putU32(off+16, ^uint32(0))
	if len(elts) == 0 {
		return off
	}

	arr := w.alloc(16 * len(elts))
	w.putOffset(off+8, off, arr)
	for i, e := range elts {
		at := arr + int64(16*i)
		w.putU32(at, uint32(e.Object))
		if len(e.Values) == 0 {
			continue
		}
		nodes := make([]int64, len(e.Values))
		for j := range e.Values {
			nodes[j] = w.alloc(32)
		}
		w.putOffset(at+8, at, nodes[0])
		for j, v := range e.Values {
			node := nodes[j]
			if j+1 < len(nodes) {
				w.putOffset(node, node, nodes[j+1])
			}
			w.putU32(node+8, uint32(v.Type))
			switch v.Type {
			case TypeString:
				s := w.cstring(v.Str)
				w.putOffset(node+16, node+8, s)
			default:
				w.putU64(node+16, uint64(v.Int))
			}
		}
	}
	return off
}
