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

package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/bufbuild/crawfish/internal/ext/unicodex"
	"github.com/bufbuild/crawfish/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool
}

// Render renders a diagnostic report.
//
// Returns the number of errors written. The error return is an error writing
// to out.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount int, err error) {
	for _, diagnostic := range report.Diagnostics {
		if _, err = fmt.Fprintln(out, r.Diagnostic(diagnostic)); err != nil {
			return errorCount, err
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return errorCount, err
			}
		}
		errorCount++
	}
	if r.Compact || errorCount == 0 {
		return errorCount, nil
	}

	c := r.colors()
	summary := "encountered 1 error"
	if errorCount != 1 {
		summary = fmt.Sprint("encountered ", errorCount, " errors")
	}
	_, err = fmt.Fprintln(out, c.bError+summary+c.reset)
	return errorCount, err
}

// RenderString is a helper for calling [Renderer.Render] with a
// [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount int) {
	var buf strings.Builder
	n, _ := r.Render(report, &buf)
	return buf.String(), n
}

// Diagnostic renders a single diagnostic to a string, without a trailing
// newline.
func (r Renderer) Diagnostic(d Diagnostic) string {
	c := r.colors()

	primary, hasPrimary := d.Primary()

	// For the compact style, we imitate the Go compiler.
	if r.Compact {
		switch {
		case d.File == nil:
			return fmt.Sprintf("%serror: %s%s", c.nError, d.Message, c.reset)
		case !hasPrimary:
			return fmt.Sprintf("%serror: %s: %s%s", c.nError, d.Path(), d.Message, c.reset)
		default:
			loc := d.File.Location(primary.Span.Start, source.Runes)
			return fmt.Sprintf("%serror: %s:%v: %s%s", c.nError, d.Path(), loc, d.Message, c.reset)
		}
	}

	// Otherwise, we imitate the Rust compiler.
	var out strings.Builder
	fmt.Fprint(&out, c.bError, "error: ", d.Message, c.reset)

	annotations := slices.Clone(d.Annotations)
	slices.SortStableFunc(annotations, func(a, b Annotation) int {
		return a.Span.Start - b.Span.Start
	})

	// The line bar must be wide enough for the largest line number we print.
	var greatestLine int
	if d.File != nil && len(annotations) > 0 {
		greatestLine = d.File.Location(annotations[len(annotations)-1].Span.Start, source.Bytes).Line
	}
	barWidth := max(2, len(strconv.Itoa(greatestLine)))

	switch {
	case d.File != nil && hasPrimary:
		loc := d.File.Location(primary.Span.Start, source.Runes)
		out.WriteByte('\n')
		fmt.Fprintf(&out, "%s%s--> %s:%v%s", c.nAccent, pad(barWidth), d.Path(), loc, c.reset)
		out.WriteByte('\n')
		fmt.Fprintf(&out, "%s%s |%s", c.nAccent, pad(barWidth), c.reset)

		var prevLine int
		for _, a := range annotations {
			prevLine = renderAnnotation(&out, d.File, a, prevLine, barWidth, &c)
		}

	case d.File != nil:
		out.WriteByte('\n')
		fmt.Fprintf(&out, "%s%s--> %s%s", c.nAccent, pad(barWidth), d.Path(), c.reset)
	}

	// Render the footers. For simplicity we collect them into an array first.
	footers := make([][2]string, 0, len(d.Notes)+len(d.Help))
	for _, note := range d.Notes {
		footers = append(footers, [2]string{"note", note})
	}
	for _, help := range d.Help {
		footers = append(footers, [2]string{"help", help})
	}
	for _, footer := range footers {
		out.WriteByte('\n')
		fmt.Fprint(&out, c.nAccent, pad(barWidth), " = ", c.bFooter, footer[0], ": ", c.reset)
		for i, line := range strings.Split(footer[1], "\n") {
			if i > 0 {
				out.WriteByte('\n')
				out.WriteString(pad(barWidth + 3 + len(footer[0]) + 2))
			}
			out.WriteString(line)
		}
	}

	return out.String()
}

// renderAnnotation writes a source line followed by an underline beneath a's
// span. If the line was already written for a previous annotation, only the
// underline is written.
//
// Spans that cross a line boundary are underlined up to the end of their first
// line.
//
// Returns the line the annotation starts on.
func renderAnnotation(
	out *strings.Builder,
	file *source.File,
	a Annotation,
	prevLine, barWidth int,
	c *stylesheet,
) int {
	line := file.Location(a.Span.Start, source.Bytes).Line
	lineStart, _ := file.LineOffsets(line)
	text := sanitize(file.Line(line))

	if line != prevLine {
		out.WriteByte('\n')
		fmt.Fprintf(out, "%s%*d |%s", c.nAccent, barWidth, line, c.reset)
		if text != "" {
			out.WriteByte(' ')
			w := unicodex.Width{Out: out}
			_, _ = w.WriteString(text)
		}
	}

	start := min(a.Span.Start-lineStart, len(text))
	end := min(a.Span.End-lineStart, len(text))

	w := unicodex.Width{}
	_, _ = w.WriteString(text[:start])
	startCol := w.Column
	_, _ = w.WriteString(text[start:end])
	carets := max(1, w.Column-startCol)

	color, mark := c.nAccent, "-"
	if a.Primary {
		color, mark = c.bError, "^"
	}

	out.WriteByte('\n')
	fmt.Fprint(out, c.nAccent, pad(barWidth), " | ", c.reset, pad(startCol), color, strings.Repeat(mark, carets))
	if a.Message != "" {
		out.WriteString(" ")
		out.WriteString(a.Message)
	}
	out.WriteString(c.reset)
	return line
}

// sanitize replaces characters that would corrupt a terminal line with
// spaces.
func sanitize(line string) string {
	return strings.ReplaceAll(line, "\r", " ")
}

func pad(n int) string {
	return strings.Repeat(" ", max(0, n))
}

func (r Renderer) colors() stylesheet {
	if !r.Colorize {
		return stylesheet{}
	}

	return stylesheet{
		reset: "\033[0m",
		// Red.
		nError: "\033[0;31m",
		bError: "\033[1;31m",

		// Cyan. Used for the labels of notes and help messages.
		bFooter: "\033[1;36m",

		// Blue. Used for "accents" such as non-primary span underlines, line
		// numbers, and other rendering details to clearly separate them from
		// the source code.
		nAccent: "\033[0;34m",
	}
}

// stylesheet is the colors used for pretty-rendering diagnostics.
type stylesheet struct {
	reset string
	// Normal colors.
	nError, nAccent string
	// Bold colors.
	bError, bFooter string
}
