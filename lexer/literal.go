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

import "github.com/bufbuild/crawfish/token"

// lexNumber lexes an integer or float literal. The cursor must be at an ASCII
// digit.
func (t *Tokenizer) lexNumber() token.Token {
	start := t.cursor
	t.takeWhile(isDigit)

	// A dot only continues the number if a digit follows it; otherwise 1..2 and
	// 1.x would swallow the dot.
	save := t.cursor
	if t.eat('.') && t.takeWhile(isDigit) != "" {
		return t.token(token.Float, start)
	}
	t.cursor = save
	return t.token(token.Int, start)
}

// lexChar lexes a character literal. The cursor must be at the opening quote.
func (t *Tokenizer) lexChar() (token.Token, error) {
	start := t.cursor
	t.cursor++

	r, n := t.peek()
	t.cursor += n
	switch {
	case n == 0:
		return token.Token{}, &Error{Kind: UnterminatedChar, Span: t.spanFrom(start)}

	case r == '\'':
		return token.Token{}, &Error{Kind: EmptyChar, Span: t.spanFrom(start)}

	case r == '\\':
		esc, n := t.peek()
		t.cursor += n
		if n == 0 {
			return token.Token{}, &Error{Kind: UnterminatedChar, Span: t.spanFrom(start)}
		}
		if !isEscape(esc) {
			return token.Token{}, &Error{
				Kind: InvalidEscapeSequenceChar,
				Char: esc,
				Span: t.spanFrom(t.cursor - n - 1),
			}
		}
	}

	r, n = t.peek()
	t.cursor += n
	if r != '\'' || n == 0 {
		return token.Token{}, &Error{Kind: UnterminatedChar, Span: t.spanFrom(start)}
	}
	return t.token(token.Char, start), nil
}

// isEscape returns whether r may follow a backslash in a character literal.
func isEscape(r rune) bool {
	switch r {
	case 'n', 'r', 't', '0', '\\', '\'', '"':
		return true
	default:
		return false
	}
}
