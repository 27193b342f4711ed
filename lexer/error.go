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

package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/bufbuild/crawfish/report"
	"github.com/bufbuild/crawfish/source"
)

// Error is returned by [Tokenizer.Next] when the text at the cursor cannot be
// lexed.
type Error struct {
	Kind ErrorKind

	// The offending character, for [UnrecognizedCharacter],
	// [InvalidEscapeSequenceChar] and [DisallowedCarriageReturn].
	Char rune

	// The text that was rejected.
	Span source.Span
}

var _ report.Diagnoser = (*Error)(nil)

// Error implements [error].
func (e *Error) Error() string {
	switch e.Kind {
	case UnrecognizedCharacter:
		return fmt.Sprintf("unrecognized character %q", e.Char)
	case InvalidEscapeSequenceChar:
		return fmt.Sprintf("invalid escape sequence `\\%c` in character literal", e.Char)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns e's [ErrorKind].
func (e *Error) Unwrap() error {
	return e.Kind
}

// Diagnose implements [report.Diagnoser].
func (e *Error) Diagnose(d *report.Diagnostic) {
	switch e.Kind {
	case UnrecognizedCharacter:
		d.With(report.Snippetf(e.Span, "not a valid token"))
		if e.Char == utf8.RuneError && e.Span.Len() == 1 {
			d.With(report.Note("the file is not valid UTF-8"))
		}

	case EmptyChar:
		d.With(
			report.Snippetf(e.Span, "expected a character between the quotes"),
			report.Help("to write a single quote, use '\\''"),
		)

	case UnterminatedChar:
		d.With(
			report.Snippetf(e.Span, "expected a closing '"),
			report.Note("a character literal holds exactly one character"),
		)

	case InvalidEscapeSequenceChar:
		d.With(
			report.Snippetf(e.Span, "unknown escape"),
			report.Help(`the valid escapes are \n \r \t \0 \\ \' and \"`),
		)

	case DisallowedCarriageReturn:
		d.With(
			report.Snippetf(e.Span, "carriage return not followed by a line feed"),
			report.Help("use \\n or \\r\\n line endings"),
		)
	}
}
