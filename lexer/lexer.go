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
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/crawfish/internal/ext/unicodex"
	"github.com/bufbuild/crawfish/source"
	"github.com/bufbuild/crawfish/token"
)

const bom = "\uFEFF"

// Tokenizer produces tokens from a string, one at a time.
//
// A Tokenizer is not safe for concurrent use. Tokenizers over different
// strings are independent of each other.
type Tokenizer struct {
	text   string
	cursor int
}

// New returns a tokenizer positioned at the start of text.
//
// A leading byte order mark is skipped, and is not included in the span of
// any token.
func New(text string) *Tokenizer {
	t := &Tokenizer{text: text}
	if strings.HasPrefix(text, bom) {
		t.cursor = len(bom)
	}
	return t
}

// Text returns the text this tokenizer was constructed with.
func (t *Tokenizer) Text() string {
	return t.text
}

// Offset returns the byte offset of the next character the tokenizer will
// examine.
func (t *Tokenizer) Offset() int {
	return t.cursor
}

// Next lexes the next token.
//
// Once the text is exhausted, Next returns a [token.EOF] token whose span is
// the empty span at the end of the text, and keeps returning it on every
// subsequent call.
//
// If the next token is malformed, Next returns the zero token and an [*Error].
// The tokenizer never backs up over text it has rejected, so calling Next
// again resumes after the bad text.
func (t *Tokenizer) Next() (token.Token, error) {
	mp := t.mustProgress()
	for {
		mp.check()
		t.skipSpace()

		start := t.cursor
		r, n := t.peek()
		switch {
		case n == 0:
			return token.Token{Kind: token.EOF, Span: source.Span{Start: len(t.text), End: len(t.text)}}, nil

		case strings.HasPrefix(t.rest(), "//"):
			t.skipComment()
			continue

		case r == '\'':
			return t.lexChar()

		case r == '\r':
			// skipSpace only stops at a carriage return without a line feed.
			t.cursor += n
			return token.Token{}, &Error{Kind: DisallowedCarriageReturn, Char: r, Span: t.spanFrom(start)}

		case unicodex.IsIdentStart(r):
			word := t.takeWhile(unicodex.IsIdentContinue)
			return t.token(token.Keyword(word), start), nil

		case isDigit(r):
			return t.lexNumber(), nil
		}

		if k, ok := token.Punctuation(t.rest()); ok {
			t.cursor += len(k.Spelling())
			return t.token(k, start), nil
		}

		t.cursor += n
		return token.Token{}, &Error{Kind: UnrecognizedCharacter, Char: r, Span: t.spanFrom(start)}
	}
}

// skipSpace consumes whitespace up to the next token or comment.
func (t *Tokenizer) skipSpace() {
	for {
		r, n := t.peek()
		if n == 0 {
			return
		}
		if r == '\r' {
			if !strings.HasPrefix(t.rest()[n:], "\n") {
				return
			}
		} else if !unicodex.IsSpace(r) {
			return
		}
		t.cursor += n
	}
}

// skipComment consumes a line comment, excluding its terminating newline.
func (t *Tokenizer) skipComment() {
	if i := strings.IndexByte(t.rest(), '\n'); i >= 0 {
		t.cursor += i
		return
	}
	t.cursor = len(t.text)
}

// rest returns the text not yet consumed.
func (t *Tokenizer) rest() string {
	return t.text[t.cursor:]
}

// peek decodes the next character without consuming it.
//
// Returns a size of zero at the end of the text. Invalid UTF-8 decodes as
// [utf8.RuneError] with a size of one.
func (t *Tokenizer) peek() (rune, int) {
	return utf8.DecodeRuneInString(t.rest())
}

// eat consumes b if it is the next byte.
func (t *Tokenizer) eat(b byte) bool {
	if t.cursor < len(t.text) && t.text[t.cursor] == b {
		t.cursor++
		return true
	}
	return false
}

// takeWhile consumes characters while they match f, and returns the consumed
// text.
func (t *Tokenizer) takeWhile(f func(rune) bool) string {
	start := t.cursor
	for {
		r, n := t.peek()
		if n == 0 || !f(r) {
			break
		}
		t.cursor += n
	}
	return t.text[start:t.cursor]
}

func (t *Tokenizer) spanFrom(start int) source.Span {
	return source.Span{Start: start, End: t.cursor}
}

func (t *Tokenizer) token(kind token.Kind, start int) token.Token {
	return token.Token{Kind: kind, Span: t.spanFrom(start)}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
