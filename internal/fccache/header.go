// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package fccache

import (
	"encoding/binary"
)

// Header is the record at the start of every cache file.  Only Magic,
// Version and FontSetOffset matter for decoding; the rest is exposed for
// diagnostics.
type Header struct {
	Magic         uint32
	Version       int32
	FileSize      int64
	DirNameOffset int64
	SubdirOffset  int64
	SubdirCount   int32
	FontSetOffset int64
	Checksum      int32
	ChecksumNanos int64
}

// UnmarshalBytes decodes and validates the header at the start of b.  An
// unsupported version is not an error; see Supported.
func (h *Header) UnmarshalBytes(b []byte) error {
	if len(b) < headerSize {
		return malformedf("file too short: %d < %d", len(b), headerSize)
	}

	b = b[:headerSize]

	h.Magic = binary.LittleEndian.Uint32(b[headerMagicOff:])
	if h.Magic != MagicMmap && h.Magic != MagicAlloc {
		return malformedf("bad magic number (%x) -- not a fontconfig cache or corrupted", h.Magic)
	}

	h.Version = int32(binary.LittleEndian.Uint32(b[headerVersionOff:]))
	h.FileSize = int64(binary.LittleEndian.Uint64(b[headerFileSizeOff:]))
	h.DirNameOffset = int64(binary.LittleEndian.Uint64(b[headerDirNameOff:]))
	h.SubdirOffset = int64(binary.LittleEndian.Uint64(b[headerSubdirOff:]))
	h.SubdirCount = int32(binary.LittleEndian.Uint32(b[headerSubdirCountOff:]))
	h.FontSetOffset = int64(binary.LittleEndian.Uint64(b[headerFontSetOff:]))
	h.Checksum = int32(binary.LittleEndian.Uint32(b[headerChecksumOff:]))
	h.ChecksumNanos = int64(binary.LittleEndian.Uint64(b[headerChecksumNsOff:]))

	return nil
}

// Supported reports whether the header's format version can be decoded.
func (h *Header) Supported() bool {
	return h.Version == Version
}
