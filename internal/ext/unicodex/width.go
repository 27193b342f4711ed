// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package unicodex contains extensions to Go's package unicode.
package unicodex

import (
	"io"
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// Width tracks the terminal column reached by writing text, taking grapheme
// widths and tabstops into account.
type Width struct {
	// The column at which the text is being rendered. This is necessary for
	// tabstop calculations.
	Column int

	// The width of a tabstop in columns. If set to zero, a default value will
	// be selected.
	Tabstop int

	// If non-nil, text will be output to this writer, converting tabs to
	// spaces.
	Out io.StringWriter
}

// WriteString advances w.Column past text, and writes it to w.Out if set.
//
// Returns the number of bytes written to w.Out.
func (w *Width) WriteString(text string) (int, error) {
	// We can't just use StringWidth, because that doesn't respect tabstops
	// correctly.
	n := 0
	write := func(s string) error {
		if w.Out != nil {
			m, err := w.Out.WriteString(s)
			n += m
			return err
		}
		return nil
	}

	tabstop := w.Tabstop
	if tabstop <= 0 {
		tabstop = TabstopWidth
	}

	for i, next := range strings.Split(text, "\t") {
		if i > 0 {
			tab := tabstop - (w.Column % tabstop)
			w.Column += tab

			if err := write(strings.Repeat(" ", tab)); err != nil {
				return n, err
			}
		}

		w.Column += uniseg.StringWidth(next)
		if err := write(next); err != nil {
			return n, err
		}
	}

	return n, nil
}

// StringWidth returns the number of terminal columns text occupies when
// rendered starting at column zero.
func StringWidth(text string) int {
	w := Width{}
	_, _ = w.WriteString(text)
	return w.Column
}
