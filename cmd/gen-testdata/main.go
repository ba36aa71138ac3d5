// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command gen-testdata writes a synthetic fontconfig cache file.  Fonts are
// read from stdin as "family:style:path" lines, or generated at random with
// --random.
package main

import (
	"bufio"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bpowers/findfont/internal/fctest"
)

var styles = []string{"Regular", "Bold", "Italic", "Bold Italic", "Light", "Medium", "Condensed"}

func newRand() *rand.Rand {
	var seedBytes [8]byte
	crand.Read(seedBytes[:])
	seed := int64(binary.LittleEndian.Uint64(seedBytes[:]))
	return rand.New(rand.NewSource(seed))
}

func randomFonts(n int) []fctest.Font {
	rng := newRand()
	fonts := make([]fctest.Font, 0, n)
	for len(fonts) < n {
		var buf [4]byte
		if _, err := rng.Read(buf[:]); err != nil {
			panic(err)
		}
		family := fmt.Sprintf("Family %x", buf)
		for _, style := range styles[:1+rng.Intn(len(styles))] {
			if len(fonts) == n {
				break
			}
			path := fmt.Sprintf("/usr/share/fonts/%x-%s.ttf", buf, strings.ReplaceAll(style, " ", ""))
			fonts = append(fonts, fctest.Font{Family: family, Style: style, Path: path})
		}
	}
	return fonts
}

func readFonts(r io.Reader) ([]fctest.Font, error) {
	var fonts []fctest.Font
	s := bufio.NewScanner(bufio.NewReaderSize(r, 16*1024))
	for line := 1; s.Scan(); line++ {
		text := s.Text()
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		family, rest, ok1 := strings.Cut(text, ":")
		style, path, ok2 := strings.Cut(rest, ":")
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("line %d: expected family:style:path, got %q", line, text)
		}
		fonts = append(fonts, fctest.Font{Family: family, Style: style, Path: path})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return fonts, nil
}

func main() {
	out := pflag.StringP("output", "o", "testdata.cache-9", "file to write")
	n := pflag.Int("random", 0, "generate this many random fonts instead of reading stdin")
	pflag.Parse()

	var fonts []fctest.Font
	if *n > 0 {
		fonts = randomFonts(*n)
	} else {
		var err error
		if fonts, err = readFonts(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "gen-testdata: %s\n", err)
			os.Exit(1)
		}
	}

	if err := fctest.WriteFile(*out, fonts...); err != nil {
		fmt.Fprintf(os.Stderr, "gen-testdata: %s\n", err)
		os.Exit(1)
	}
}
