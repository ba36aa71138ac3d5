// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package fccache

import (
	"errors"
	"fmt"
)

const (
	MagicMmap  = uint32(0xFC02FC04)
	MagicAlloc = uint32(0xFC02FC05)

	// Version is the only cache format version decoded. Caches of versions
	// 7 and 8 are commonly left around by older fontconfig installs.
	Version = 9

	// WordSize is the width of a tagged offset.
	WordSize = 8
)

// Object ids of the pattern elements we read (see fontconfig's fcobjs.h).
const (
	ObjectFamily = 1
	ObjectStyle  = 3
	ObjectFile   = 21
)

// ValueType is the discriminator of a value list entry.
type ValueType int32

const (
	TypeUnknown ValueType = iota - 1
	TypeVoid
	TypeInteger
	TypeDouble
	TypeString
	TypeBool
	TypeMatrix
	TypeCharSet
	TypeFTFace
	TypeLangSet
	TypeRange
)

// record sizes and field offsets, laid out with C alignment on a 64-bit host
const (
	headerSize           = 64
	headerMagicOff       = 0
	headerVersionOff     = 4
	headerFileSizeOff    = 8
	headerDirNameOff     = 16
	headerSubdirOff      = 24
	headerSubdirCountOff = 32
	headerFontSetOff     = 40
	headerChecksumOff    = 48
	headerChecksumNsOff  = 56

	fontSetSize        = 16
	fontSetCountOff    = 0
	fontSetPatternsOff = 8

	patternSize     = 24
	patternCountOff = 0
	patternEltsOff  = 8

	eltSize      = 16
	eltObjectOff = 0
	eltValuesOff = 8

	valueListSize     = 32
	valueListNextOff  = 0
	valueListValueOff = 8
	valueTypeOff      = 0
	valuePayloadOff   = 8
)

// HeaderSize is the minimum length of a cache file.
const HeaderSize = headerSize

// ErrMalformed is returned for files that are truncated, carry an unknown
// magic number or contain an offset pointing outside the file.
var ErrMalformed = errors.New("malformed font cache")

func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
