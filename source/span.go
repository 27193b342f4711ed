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

package source

import "fmt"

// Span is a byte range of some source text: Start is inclusive, End is
// exclusive.
//
// A Span does not know which text it refers to; pair it with a string or a
// [File] to recover the text it covers. Valid spans satisfy
// 0 <= Start <= End <= len(text).
type Span struct {
	Start, End int
}

// Len returns the number of bytes this span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns whether this span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Text slices text with this span.
func (s Span) Text(text string) string {
	return text[s.Start:s.End]
}

// In returns the text this span covers in f.
func (s Span) In(f *File) string {
	return s.Text(f.Text())
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// Location is a user-displayable location within a source code file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// The units of measurement for column depend on the [Unit] used when
	// constructing it.
	//
	// Because these are 1-indexed, a zero Line can be used as a sentinel.
	Line, Column int
}

// IsZero returns whether this is the zero Location.
func (l Location) IsZero() bool {
	return l.Line == 0
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Unit is a unit of length for columns in a [Location].
type Unit int

const (
	// Columns count Unicode scalar values.
	Runes Unit = iota
	// Columns count bytes.
	Bytes
	// Columns count UTF-16 code units, as many editors and LSP clients do.
	UTF16
	// Columns count terminal cells, expanding tabs and accounting for wide
	// characters.
	TermWidth
)
