// Copyright 2026 The findfont Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package findfont

// Fallback chains for FindFirstOf, most preferred first.
var (
	UIFonts = []Candidate{
		{Family: "Segoe UI"},
		{Family: "Cantarell"},
		{Family: "Roboto"},
		{Family: "Deja Vu Sans"},
		{Family: "Arial"},
	}

	MonospaceFonts = []Candidate{
		{Family: "Iosevka SS02"},
		{Family: "Hack"},
		{Family: "Inconsolata"},
		{Family: "Fira Code"},
		{Family: "Consolas"},
		{Family: "Courier New"},
		{Family: "monospace"},
	}
)
