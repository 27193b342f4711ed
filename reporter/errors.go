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

package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/crawfish/report"
	"github.com/bufbuild/crawfish/source"
)

// ErrInvalidSource is a sentinel error that is returned by compilation when
// errors were reported but the reporter chose to continue.
var ErrInvalidSource = errors.New("lexing failed: invalid crawfish source")

// ErrorWithPos is an error about a crawfish source file that includes
// information about the location in the file that caused the error.
//
// The value of Error() will contain both the position and the underlying
// error. The value of Unwrap() will only be the underlying error.
type ErrorWithPos interface {
	error
	// File returns the file the error is in.
	File() *source.File
	// Span returns the byte range of the text that caused the error.
	Span() source.Span
	// GetPosition returns the 1-indexed line and column of the start of Span,
	// with columns counted in runes.
	GetPosition() source.Location
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and location.
//
// If err is a [report.Diagnoser], the returned error delegates to it when
// rendered as a diagnostic.
func Error(file *source.File, span source.Span, err error) ErrorWithPos {
	return errorWithSpan{file: file, span: span, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(file *source.File, span source.Span, format string, args ...any) ErrorWithPos {
	return errorWithSpan{file: file, span: span, underlying: fmt.Errorf(format, args...)}
}

// errorWithSpan is the ErrorWithPos returned by [Error] and [Errorf].
type errorWithSpan struct {
	underlying error
	file       *source.File
	span       source.Span
}

var (
	_ ErrorWithPos     = errorWithSpan{}
	_ report.Diagnoser = errorWithSpan{}
)

func (e errorWithSpan) Error() string {
	return fmt.Sprintf("%s:%v: %v", e.file.Path(), e.GetPosition(), e.underlying)
}

func (e errorWithSpan) File() *source.File {
	return e.file
}

func (e errorWithSpan) Span() source.Span {
	return e.span
}

func (e errorWithSpan) GetPosition() source.Location {
	return e.file.Location(e.span.Start, source.Runes)
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSpan) Unwrap() error {
	return e.underlying
}

// Diagnose implements [report.Diagnoser].
func (e errorWithSpan) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Message("%v", e.underlying),
		report.InFile(e.file),
	)

	var inner report.Diagnoser
	if errors.As(e.underlying, &inner) {
		inner.Diagnose(d)
		return
	}
	d.With(report.Snippet(e.span))
}
