// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build unix

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open memory-maps the file at path for reading.  Empty files can't be
// mapped and are returned as an empty, unmapped File.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("mmap: %s is not a regular file", path)
	}

	size := fi.Size()
	if size == 0 {
		return &File{data: []byte{}}, nil
	}
	if size < 0 || size != int64(int(size)) {
		return nil, fmt.Errorf("mmap: file %q is too large", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("unix.Mmap: %w", err)
	}
	// cache traversal chases offsets all over the file
	_ = unix.Madvise(data, unix.MADV_RANDOM)

	return &File{data: data, mapped: true}, nil
}

// Close releases the mapping.
func (r *File) Close() error {
	if r.data == nil {
		return nil
	}
	data := r.data
	r.data = nil
	if !r.mapped {
		return nil
	}
	r.mapped = false
	return unix.Munmap(data)
}
