// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package findfont

import (
	"github.com/sirupsen/logrus"
)

// DefaultMarker is the substring a file name must contain to be treated as
// a cache file.
const DefaultMarker = ".cache"

// DefaultCacheDirs returns the directories searched by Load, user cache
// first.  Entries may reference environment variables.
func DefaultCacheDirs() []string {
	return []string{
		"$HOME/.cache/fontconfig",
		"/var/cache/fontconfig",
	}
}

type options struct {
	log         logrus.FieldLogger
	mmap        bool
	concurrency int
	cacheDirs   []string
	marker      string
}

// Option configures loading.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		log:         logrus.StandardLogger(),
		mmap:        true,
		concurrency: 1,
		cacheDirs:   DefaultCacheDirs(),
		marker:      DefaultMarker,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets where diagnostics go.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMmap chooses between memory-mapping cache files (the default) and
// reading them onto the heap.
func WithMmap(enabled bool) Option {
	return func(o *options) { o.mmap = enabled }
}

// WithConcurrency sets how many cache files may be read and decoded at
// once.  Results are merged in order regardless.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithCacheDirs replaces the directories Load searches.
func WithCacheDirs(dirs ...string) Option {
	return func(o *options) { o.cacheDirs = append([]string(nil), dirs...) }
}

// WithMarker replaces the file name substring Load filters on.
func WithMarker(marker string) Option {
	return func(o *options) { o.marker = marker }
}
