// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package fccache

// Face is one font described by a cache file.  All three slices alias the
// buffer the File was parsed from and must be copied before it is released.
type Face struct {
	Family []byte
	Style  []byte
	Path   []byte
}

// File is a parsed cache file.
type File struct {
	Header
	v view
}

// Parse validates the header in buf and returns a File ready to be iterated.
// buf is not copied and must outlive the File.
func Parse(buf []byte) (*File, error) {
	f := &File{v: view(buf)}
	if err := f.Header.UnmarshalBytes(buf); err != nil {
		return nil, err
	}
	return f, nil
}

// Faces returns an iterator over the complete faces of f.  Patterns missing
// a family, style or file are skipped.  Files with an unsupported version
// produce no faces.
func (f *File) Faces() *Iter {
	return &Iter{f: f}
}

// Iter walks the pattern table of a File.
type Iter struct {
	f *File

	started  bool
	done     bool
	err      error
	fontSet  int64
	patterns int64
	count    int64
	i        int64
	skipped  int
	w        *walk
}

// walk remembers what has already been read from a file during one pass.
// Patterns, value lists and strings may be shared between slots, so each
// value list node is followed and each string scanned at most once; the
// totals are capped by what a file of this size can hold.
type walk struct {
	values  map[int64][]byte // value list node -> first string from there on, or nil
	strings map[int64][]byte // string address -> string
	trail   []int64

	nodes   int64 // value list nodes visited
	scanned int64 // string bytes scanned, terminators included
}

func newWalk() *walk {
	return &walk{
		values:  make(map[int64][]byte),
		strings: make(map[int64][]byte),
	}
}

func (it *Iter) fail(err error) (Face, bool) {
	it.err = err
	it.done = true
	return Face{}, false
}

func (it *Iter) start() error {
	it.started = true
	it.w = newWalk()
	if !it.f.Supported() {
		it.done = true
		return nil
	}

	v := it.f.v
	it.fontSet = resolve(0, it.f.FontSetOffset)
	if err := v.check(it.fontSet, fontSetSize); err != nil {
		return err
	}
	count, err := v.i32(it.fontSet + fontSetCountOff)
	if err != nil {
		return err
	}
	if count <= 0 {
		it.done = true
		return nil
	}
	tagged, err := v.word(it.fontSet + fontSetPatternsOff)
	if err != nil {
		return err
	}
	it.patterns = resolve(it.fontSet, tagged)
	if err := v.check(it.patterns, int64(count)*WordSize); err != nil {
		return malformedf("pattern table of %d entries at %d beyond bounds (%d)", count, it.patterns, len(v))
	}
	it.count = int64(count)
	return nil
}

// Next returns the next complete face.  It returns false once the pattern
// table is exhausted or an error occurred; check Err afterwards.
func (it *Iter) Next() (Face, bool) {
	if !it.started {
		if err := it.start(); err != nil {
			return it.fail(err)
		}
	}

	for !it.done && it.i < it.count {
		i := it.i
		it.i++

		face, ok, err := it.f.pattern(it.w, it.fontSet, it.patterns+i*WordSize)
		if err != nil {
			return it.fail(err)
		}
		if !ok {
			it.skipped++
			continue
		}
		return face, true
	}

	it.done = true
	return Face{}, false
}

// Err returns the error that stopped iteration, if any.
func (it *Iter) Err() error {
	return it.err
}

// Skipped returns the number of patterns passed over so far because they
// lacked one of the attributes we read.
func (it *Iter) Skipped() int {
	return it.skipped
}

// Len returns the number of patterns in the font set, complete or not.
func (it *Iter) Len() int64 {
	if !it.started {
		if err := it.start(); err != nil {
			it.err = err
			it.done = true
		}
	}
	return it.count
}

// pattern decodes the pattern whose tagged offset is stored at slot.
func (f *File) pattern(w *walk, fontSet, slot int64) (face Face, ok bool, err error) {
	tagged, err := f.v.word(slot)
	if err != nil {
		return Face{}, false, err
	}
	p := resolve(fontSet, tagged)
	if err := f.v.check(p, patternSize); err != nil {
		return Face{}, false, err
	}

	count, err := f.v.i32(p + patternCountOff)
	if err != nil {
		return Face{}, false, err
	}
	if count <= 0 {
		return Face{}, false, nil
	}
	eltsTagged, err := f.v.word(p + patternEltsOff)
	if err != nil {
		return Face{}, false, err
	}
	elts := resolve(p, eltsTagged)
	if err := f.v.check(elts, int64(count)*eltSize); err != nil {
		return Face{}, false, malformedf("elt array of %d entries at %d beyond bounds (%d)", count, elts, len(f.v))
	}

	if face.Family, err = f.stringObject(w, elts, int64(count), ObjectFamily); err != nil || face.Family == nil {
		return Face{}, false, err
	}
	if face.Style, err = f.stringObject(w, elts, int64(count), ObjectStyle); err != nil || face.Style == nil {
		return Face{}, false, err
	}
	if face.Path, err = f.stringObject(w, elts, int64(count), ObjectFile); err != nil || face.Path == nil {
		return Face{}, false, err
	}

	return face, true, nil
}

// findElt binary searches the sorted elt array for object, returning the
// address of the matching elt or -1.
func (f *File) findElt(elts, count int64, object int32) (int64, error) {
	low, high := int64(0), count-1
	for low <= high {
		mid := int64(uint64(low+high) >> 1)
		addr := elts + mid*eltSize
		id, err := f.v.i32(addr + eltObjectOff)
		if err != nil {
			return -1, err
		}
		switch {
		case id == object:
			return addr, nil
		case id < object:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1, nil
}

// stringObject returns the first string value of object in the elt array,
// or nil if the pattern has no such string.
func (f *File) stringObject(w *walk, elts, count int64, object int32) ([]byte, error) {
	elt, err := f.findElt(elts, count, object)
	if err != nil || elt < 0 {
		return nil, err
	}

	tagged, err := f.v.word(elt + eltValuesOff)
	if err != nil {
		return nil, err
	}
	if tagged == 0 {
		return nil, nil
	}

	// a well-formed file never has more nodes than fit in it; going past
	// that means the lists loop or overlap
	maxNodes := int64(len(f.v)/valueListSize + 1)
	start := resolve(elt, tagged)
	w.trail = w.trail[:0]

	var s []byte
	for node := start; ; {
		if known, ok := w.values[node]; ok {
			s = known
			break
		}
		if w.nodes >= maxNodes {
			return nil, malformedf("value list at %d does not terminate", start)
		}
		w.nodes++
		if err := f.v.check(node, valueListSize); err != nil {
			return nil, err
		}
		w.trail = append(w.trail, node)

		value := node + valueListValueOff
		typ, err := f.v.i32(value + valueTypeOff)
		if err != nil {
			return nil, err
		}
		if ValueType(typ) == TypeString {
			payload, err := f.v.word(value + valuePayloadOff)
			if err != nil {
				return nil, err
			}
			if s, err = f.cstring(w, resolve(value, payload)); err != nil {
				return nil, err
			}
			break
		}

		next, err := f.v.word(node + valueListNextOff)
		if err != nil {
			return nil, err
		}
		if next == 0 {
			break
		}
		node = resolve(node, next)
	}

	for _, node := range w.trail {
		w.values[node] = s
	}
	return s, nil
}

// cstring returns the string at addr, scanning for its terminator only the
// first time addr is seen.
func (f *File) cstring(w *walk, addr int64) ([]byte, error) {
	if s, ok := w.strings[addr]; ok {
		return s, nil
	}
	s, err := f.v.cstring(addr)
	if err != nil {
		return nil, err
	}
	w.scanned += int64(len(s)) + 1
	if w.scanned > int64(len(f.v)) {
		return nil, malformedf("string at %d overlaps strings already read", addr)
	}
	w.strings[addr] = s
	return s, nil
}
