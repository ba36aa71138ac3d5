// Copyright 2026 The findfont Authors and Caleb Spare. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package index compiles a fixed set of strings into a minimal perfect hash
// table, mapping each string to its position in the input.
package index

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"

	"github.com/dgryski/go-farm"

	"github.com/bpowers/findfont/internal/bitset"
	"github.com/bpowers/findfont/internal/unsafestring"
)

const (
	maxEntries = (1 << 31) - 1
	maxUint32  = ^uint32(0)
)

var ErrDuplicateKey = errors.New("duplicate keys aren't supported")

// nextPow2 returns the next highest power of two above a given number.
func nextPow2(n int64) int64 {
	return 1 << (64 - bits.LeadingZeros64(uint64(n)))
}

// Table is an immutable hash table that provides constant-time lookups of key
// indices using a minimal perfect hash.
//
// Lookups of keys that were not in the input return an arbitrary index; the
// caller has to compare the key stored at that index.
type Table struct {
	level0     []uint32 // power of 2 size
	level0Mask uint64   // len(level0) - 1
	level1     []uint32 // power of 2 size >= len(keys)
	level1Mask uint64   // len(level1) - 1
}

type bucket struct {
	n    int64
	vals []uint32
}

// bySize is used to sort our buckets from most full to least full
type bySize []bucket

func (s bySize) Len() int           { return len(s) }
func (s bySize) Less(i, j int) bool { return len(s[i].vals) > len(s[j].vals) }
func (s bySize) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Build builds a Table from keys using the "Hash, displace, and compress"
// algorithm described in http://cmph.sourceforge.net/papers/esa09.pdf.
func Build(keys []string) (*Table, error) {
	if len(keys) > maxEntries {
		return nil, fmt.Errorf("too many keys -- we only support %d (%d asked for)", maxEntries, len(keys))
	}

	seen := make(stringSet, len(keys))
	for _, k := range keys {
		if seen.Contains(k) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}
		seen.Add(k)
	}

	var (
		level0Len  = nextPow2(int64(len(keys)) / 4)
		level1Len  = nextPow2(int64(len(keys)))
		level0Mask = uint64(level0Len - 1)
		level1Mask = uint64(level1Len - 1)

		level0        = make([]uint32, level0Len)
		level1        = make([]uint32, level1Len)
		sparseBuckets = make([][]uint32, level0Len)
	)

	for i, k := range keys {
		n := farm.Hash64WithSeed(unsafestring.ToBytes(k), 0) & level0Mask
		sparseBuckets[n] = append(sparseBuckets[n], uint32(i))
	}

	var buckets []bucket
	for n, vals := range sparseBuckets {
		if len(vals) > 0 {
			buckets = append(buckets, bucket{n: int64(n), vals: vals})
		}
	}
	sort.Sort(bySize(buckets))

	occ := bitset.New(level1Len)
	var tmpOcc []uint32
	for _, b := range buckets {
		seed := uint64(1)
	trySeed:
		if seed >= uint64(maxUint32) {
			return nil, errors.New("couldn't find 32-bit seed")
		}
		tmpOcc = tmpOcc[:0]
		for _, i := range b.vals {
			n := uint32(farm.Hash64WithSeed(unsafestring.ToBytes(keys[i]), seed) & level1Mask)
			if occ.IsSet(int64(n)) {
				for _, n := range tmpOcc {
					occ.Clear(int64(n))
					level1[n] = 0
				}
				seed++
				goto trySeed
			}
			tmpOcc = append(tmpOcc, n)
			occ.Set(int64(n))
			level1[n] = i
		}
		level0[b.n] = uint32(seed)
	}

	return &Table{
		level0:     level0,
		level0Mask: level0Mask,
		level1:     level1,
		level1Mask: level1Mask,
	}, nil
}

// MaybeLookup searches for s in t and returns its potential index.
func (t *Table) MaybeLookup(s string) uint32 {
	b := unsafestring.ToBytes(s)
	// first we hash the key with a fixed seed, giving us the offset
	// of a seed that perfectly hashes into our second-level table
	seed := uint64(t.level0[farm.Hash64WithSeed(b, 0)&t.level0Mask])
	// next, we use that more-specific seed to re-hash the key, giving
	// us the index of the key in the original input
	return t.level1[farm.Hash64WithSeed(b, seed)&t.level1Mask]
}

type stringSet map[string]struct{}

func (set stringSet) Contains(s string) bool {
	_, ok := set[s]
	return ok
}

func (set stringSet) Add(s string) {
	set[s] = struct{}{}
}
