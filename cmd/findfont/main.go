// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command findfont queries the fonts recorded in fontconfig's caches.
package main

import "github.com/bpowers/findfont/cmd/findfont/cmd"

func main() {
	cmd.Execute()
}
