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

	"github.com/bufbuild/crawfish/source"
)

// Diagnoser is an error that can be rendered as a diagnostic.
type Diagnoser interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	Diagnose(*Diagnostic)
}

// Diagnostic is an error prepared for display to a user.
type Diagnostic struct {
	// The error that prompted this diagnostic.
	Err error

	// The main message. Defaults to Err.Error().
	Message string

	// The file this diagnostic occurs in, which all of its annotations point
	// into. May be nil for diagnostics not about a particular file.
	File *source.File

	// A list of annotated source code spans in the diagnostic.
	Annotations []Annotation

	// Notes and help messages to include at the end of the diagnostic, after
	// the annotations.
	Notes, Help []string
}

// Annotation is an annotated span of source code within a [Diagnostic].
type Annotation struct {
	Span source.Span

	// A message to show under the underlined span. May be empty.
	Message string

	// Whether this is the diagnostic's primary span. The primary span is used
	// as the diagnostic's position and is underlined in the error color.
	Primary bool
}

// Primary returns this diagnostic's primary annotation, if it has one.
func (d *Diagnostic) Primary() (Annotation, bool) {
	for _, a := range d.Annotations {
		if a.Primary {
			return a, true
		}
	}
	return Annotation{}, false
}

// Path returns the path of the file this diagnostic is in, or "".
func (d *Diagnostic) Path() string {
	if d.File == nil {
		return ""
	}
	return d.File.Path()
}

// With applies the given options to this diagnostic.
//
// Nil options are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option(d)
		}
	}
	return d
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// Message returns a DiagnosticOption that replaces the main diagnostic
// message.
func Message(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) { d.Message = fmt.Sprintf(format, args...) }
}

// InFile returns a DiagnosticOption that sets the file a diagnostic's spans
// point into.
func InFile(file *source.File) DiagnosticOption {
	return func(d *Diagnostic) { d.File = file }
}

// Snippet returns a DiagnosticOption that underlines span.
//
// The first annotation added is the "primary" annotation, and will be
// rendered differently from the others.
func Snippet(span source.Span) DiagnosticOption {
	return Snippetf(span, "")
}

// Snippetf is like [Snippet], but attaches a message to the underline.
func Snippetf(span source.Span, format string, args ...any) DiagnosticOption {
	annotation := Annotation{Span: span}
	if format != "" {
		annotation.Message = fmt.Sprintf(format, args...)
	}
	return func(d *Diagnostic) {
		annotation.Primary = len(d.Annotations) == 0
		d.Annotations = append(d.Annotations, annotation)
	}
}

// Note returns a DiagnosticOption that provides the user with context about
// the diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Help = append(d.Help, fmt.Sprintf(format, args...))
	}
}
