// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package findfont

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var errNoCacheFiles = errors.New("no cache files found")

// FindCacheFiles lists the files in dirs whose names contain marker, in
// directory order and then name order.  $VAR and ${VAR} references in dirs
// are expanded; a directory referencing an unset variable is skipped, as is
// one that doesn't exist.  Directories that exist but can't be read are
// reported as warnings.
func FindCacheFiles(dirs []string, marker string) ([]string, []Warning) {
	var (
		files    []string
		warnings []Warning
		seen     = make(map[string]struct{})
	)

	for _, raw := range dirs {
		dir, ok := expandEnv(raw)
		if !ok || dir == "" {
			continue
		}
		dir = filepath.Clean(dir)

		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			warnings = append(warnings, ioUnavailable(dir, err))
			continue
		}

		for _, ent := range entries {
			if ent.IsDir() || !strings.Contains(ent.Name(), marker) {
				continue
			}
			path := filepath.Join(dir, ent.Name())
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	if len(files) == 0 {
		warnings = append(warnings, Warning{
			Path: strings.Join(dirs, string(filepath.ListSeparator)),
			Err:  fmt.Errorf("%w: %w", ErrIOUnavailable, errNoCacheFiles),
		})
	}

	return files, warnings
}

// expandEnv expands environment variables in s, reporting false if any of
// them is unset.
func expandEnv(s string) (string, bool) {
	ok := true
	expanded := os.Expand(s, func(name string) string {
		v, set := os.LookupEnv(name)
		if !set {
			ok = false
		}
		return v
	})
	return expanded, ok
}
