// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package findfont

import (
	"errors"
	"fmt"

	"github.com/bpowers/findfont/internal/fccache"
)

var (
	// ErrIOUnavailable marks a cache directory or file that could not be read.
	ErrIOUnavailable = errors.New("font cache unavailable")
	// ErrMalformedCache marks a cache file that was truncated, had a bad
	// magic number or pointed outside itself.  It is the decoder's own
	// sentinel.
	ErrMalformedCache = fccache.ErrMalformed
	// ErrDuplicateConflict marks two caches disagreeing on the file of a
	// family and style.
	ErrDuplicateConflict = errors.New("conflicting font paths")
)

// Warning is a non-fatal problem encountered while loading an index.
type Warning struct {
	// Path is the cache file or directory the problem relates to.
	Path string
	Err  error
}

func (w Warning) Error() string {
	if w.Path == "" {
		return w.Err.Error()
	}
	return fmt.Sprintf("%s: %s", w.Path, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}

// ConflictError reports a style that was already mapped to a different file.
// The index keeps Path; Rejected is the path that lost.
type ConflictError struct {
	Family   string
	Style    string
	Path     string
	Rejected string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: family %q style %q: keeping %q, ignoring %q",
		ErrDuplicateConflict, e.Family, e.Style, e.Path, e.Rejected)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrDuplicateConflict
}

func ioUnavailable(path string, err error) Warning {
	return Warning{Path: path, Err: fmt.Errorf("%w: %w", ErrIOUnavailable, err)}
}

func malformed(path string, err error) Warning {
	if !errors.Is(err, ErrMalformedCache) {
		err = fmt.Errorf("%w: %w", ErrMalformedCache, err)
	}
	return Warning{Path: path, Err: err}
}
