// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package fccache

import (
	"bytes"
	"encoding/binary"
)

// view is a read-only window onto a cache file.  Addresses are byte offsets
// from the start of the file; nothing is ever dereferenced without first
// checking it lies inside the buffer.
type view []byte

func (v view) check(addr, n int64) error {
	if addr < 0 || n < 0 || addr > int64(len(v))-n {
		return malformedf("read of %d bytes at %d beyond bounds (%d)", n, addr, len(v))
	}
	return nil
}

func (v view) u32(addr int64) (uint32, error) {
	if err := v.check(addr, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(v[addr : addr+4]), nil
}

func (v view) i32(addr int64) (int32, error) {
	n, err := v.u32(addr)
	return int32(n), err
}

func (v view) i64(addr int64) (int64, error) {
	if err := v.check(addr, 8); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(v[addr : addr+8])), nil
}

// word reads a pointer-sized field.
func (v view) word(addr int64) (int64, error) {
	return v.i64(addr)
}

// cstring returns the NUL-terminated string starting at addr, without the
// terminator.  The result aliases the buffer.
func (v view) cstring(addr int64) ([]byte, error) {
	if err := v.check(addr, 1); err != nil {
		return nil, err
	}
	rest := v[addr:]
	n := bytes.IndexByte(rest, 0)
	if n < 0 {
		return nil, malformedf("unterminated string at %d", addr)
	}
	return rest[:n:n], nil
}

// resolve turns a tagged offset stored in the record at base into an
// absolute address.  The low bit only distinguishes offsets from pointers,
// so it is cleared; the result may still be out of bounds and is validated
// on the read that follows.
func resolve(base, tagged int64) int64 {
	return base + (tagged &^ 1)
}
