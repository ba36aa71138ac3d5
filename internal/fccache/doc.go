// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package fccache decodes the binary cache files written by fontconfig
// (named like fe547fea3a41b43a38975d292a2b19c7-le64.cache-9) far enough to
// extract the family name, style name and file path of every font in them.
//
// A cache file is a tree of fixed-layout records:
//
//	┌──────────────┐
//	│ header       │ fontset_offset ──┐
//	├──────────────┤                  │
//	│ ...          │                  │
//	├──────────────┤ <────────────────┘
//	│ font set     │ patterns_offset ──> [tagged offset; pattern_count]
//	├──────────────┤                          │ (relative to the font set)
//	│ pattern      │ <────────────────────────┘
//	│  elts_offset │ ──> [elt; elt_count], sorted by object id
//	├──────────────┤           │
//	│ value list   │ <─────────┘ next_offset ──> value list ...
//	└──────────────┘
//
// Every offset is "tagged": the low bit marks it as an offset rather than a
// pointer, and once cleared the offset is relative to the address of the
// record holding it. Offsets are as wide as the pointers of the process that
// wrote the cache; only 64-bit little-endian caches are decodable here.
//
// Cache files are writable by users, so every read is bounds checked and
// any violation is reported as ErrMalformed instead of trusting the file.
package fccache
