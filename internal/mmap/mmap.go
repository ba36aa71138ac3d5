// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package mmap provides read-only access to whole files, memory-mapped where
// the platform allows it.
package mmap

import (
	"os"
)

// File is a read-only view of a file's contents.  Close must be called
// once the data is no longer referenced; after Close, any slice obtained from
// Data is invalid.
type File struct {
	data   []byte
	mapped bool
}

// Data returns the file contents.  The slice must not be written to.
func (r *File) Data() []byte {
	return r.data
}

// Mapped reports whether the contents are backed by a memory mapping rather
// than a heap copy.
func (r *File) Mapped() bool {
	return r.mapped
}

// ReadFile reads the whole file at path onto the heap.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{data: data}, nil
}
