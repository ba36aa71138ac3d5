// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package findfont

import (
	"github.com/dgryski/go-farm"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/stream"

	"github.com/bpowers/findfont/internal/fccache"
	"github.com/bpowers/findfont/internal/mmap"
)

// Load searches the configured cache directories (DefaultCacheDirs unless
// WithCacheDirs is given) for cache files and loads them with LoadIndex.
func Load(opts ...Option) (*Index, []Warning) {
	o := newOptions(opts)
	paths, warnings := FindCacheFiles(o.cacheDirs, o.marker)
	if len(paths) == 0 {
		o.log.WithField("dirs", o.cacheDirs).Warn("no fontconfig cache files found")
	}
	idx, more := loadIndex(o, paths)
	return idx, append(warnings, more...)
}

// LoadIndex builds an Index from the cache files at paths.  Files earlier in
// paths take precedence when two caches disagree.
//
// LoadIndex does not fail: unreadable or malformed files, and conflicts
// between files, are returned as warnings alongside whatever could be
// loaded, which may be an empty Index.
func LoadIndex(paths []string, opts ...Option) (*Index, []Warning) {
	return loadIndex(newOptions(opts), paths)
}

// decoded is the result of reading and decoding one cache file.  faces alias
// the file's buffer until release is called.
type decoded struct {
	path        string
	r           *mmap.File
	fingerprint uint64
	faces       []fccache.Face
	patterns    int64
	skipped     int
	mapped      bool
	unsupported bool
	version     int32
	warning     *Warning
}

func (d *decoded) release(log logrus.FieldLogger) {
	if d.r == nil {
		return
	}
	if err := d.r.Close(); err != nil {
		log.WithError(err).WithField("path", d.path).Warn("couldn't release cache file")
	}
	d.r = nil
	d.faces = nil
}

func loadIndex(o *options, paths []string) (*Index, []Warning) {
	b := newBuilder(o)
	var warnings []Warning
	seen := make(map[uint64]string)

	s := stream.New().WithMaxGoroutines(o.concurrency)
	for _, path := range paths {
		s.Go(func() stream.Callback {
			d := decodeFile(o, path)
			// callbacks run one at a time, in the order files were
			// submitted, so merging here keeps first-seen precedence
			return func() {
				defer d.release(o.log)
				warnings = append(warnings, merge(o, b, seen, d)...)
			}
		})
	}
	s.Wait()

	idx := b.Finalize()
	o.log.WithFields(logrus.Fields{
		"files":    len(paths),
		"families": idx.Len(),
		"fonts":    idx.FontCount(),
		"warnings": len(warnings),
	}).Debug("loaded font index")
	return idx, warnings
}

// decodeFile reads path and decodes all of its faces.  Nothing is merged if
// any part of the file is malformed.
func decodeFile(o *options, path string) *decoded {
	d := &decoded{path: path}

	var err error
	if o.mmap {
		d.r, err = mmap.Open(path)
	} else {
		d.r, err = mmap.ReadFile(path)
	}
	if err != nil {
		w := ioUnavailable(path, err)
		d.warning = &w
		return d
	}

	d.mapped = d.r.Mapped()
	data := d.r.Data()
	f, err := fccache.Parse(data)
	if err != nil {
		w := malformed(path, err)
		d.warning = &w
		return d
	}
	d.fingerprint = farm.Fingerprint64(data)

	if !f.Supported() {
		d.unsupported = true
		d.version = f.Version
		return d
	}

	it := f.Faces()
	d.patterns = it.Len()
	for face, ok := it.Next(); ok; face, ok = it.Next() {
		d.faces = append(d.faces, face)
	}
	if err := it.Err(); err != nil {
		w := malformed(path, err)
		d.warning = &w
		d.faces = nil
		return d
	}
	d.skipped = it.Skipped()
	return d
}

func merge(o *options, b *Builder, seen map[uint64]string, d *decoded) []Warning {
	log := o.log.WithField("path", d.path)

	if d.warning != nil {
		log.WithError(d.warning.Err).Warn("skipping font cache")
		return []Warning{*d.warning}
	}
	if d.unsupported {
		log.WithField("version", d.version).Debug("skipping font cache with unsupported version")
		return nil
	}
	if first, ok := seen[d.fingerprint]; ok {
		log.WithField("same_as", first).Debug("skipping duplicate font cache")
		return nil
	}
	seen[d.fingerprint] = d.path

	var warnings []Warning
	for _, face := range d.faces {
		if err := b.addFace(face); err != nil {
			warnings = append(warnings, Warning{Path: d.path, Err: err})
		}
	}
	log.WithFields(logrus.Fields{
		"patterns":   d.patterns,
		"fonts":      len(d.faces),
		"incomplete": d.skipped,
		"mapped":     d.mapped,
		"conflicts":  len(warnings),
	}).Debug("merged font cache")
	return warnings
}
