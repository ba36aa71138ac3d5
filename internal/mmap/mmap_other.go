// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build !unix

package mmap

// Open reads the file at path onto the heap; this platform has no mapping
// support wired up.
func Open(path string) (*File, error) {
	return ReadFile(path)
}

// Close releases the file contents.
func (r *File) Close() error {
	r.data = nil
	return nil
}
