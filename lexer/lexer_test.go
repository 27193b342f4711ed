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

package lexer_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/crawfish/lexer"
	"github.com/bufbuild/crawfish/source"
	"github.com/bufbuild/crawfish/token"
)

// kinds lexes text to completion, failing the test on any error, and returns
// the kinds of the tokens, including the final EOF.
func kinds(t *testing.T, text string) []token.Kind {
	t.Helper()

	var out []token.Kind
	tz := lexer.New(text)
	for {
		tok, err := tz.Next()
		require.NoError(t, err, "at offset %d", tz.Offset())
		out = append(out, tok.Kind)
		if tok.IsEOF() {
			return out
		}
	}
}

// lexemes lexes text to completion and returns the text of each token,
// excluding EOF.
func lexemes(t *testing.T, text string) []string {
	t.Helper()

	tokens, err := lexer.Tokenize(text)
	require.NoError(t, err)

	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text(text)
	}
	return out
}

// nextError lexes until the first error and returns it, failing the test if
// EOF comes first.
func nextError(t *testing.T, tz *lexer.Tokenizer) error {
	t.Helper()

	for {
		tok, err := tz.Next()
		if err != nil {
			return err
		}
		require.False(t, tok.IsEOF(), "expected an error before EOF")
	}
}

func TestManyComments(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	for i := range 10000 {
		fmt.Fprintf(&buf, "// Comment line %d\n", i)
	}
	buf.WriteString("var x = 42;")

	assert.Equal(t, []token.Kind{
		token.Var, token.Ident, token.Assign, token.Int, token.Semi, token.EOF,
	}, kinds(t, buf.String()))

	buf.Reset()
	for i := range 5000 {
		fmt.Fprintf(&buf, "   // Comment %d\n   ", i)
	}
	buf.WriteString("struct Test;")

	assert.Equal(t, []token.Kind{
		token.Struct, token.Ident, token.Semi, token.EOF,
	}, kinds(t, buf.String()))
}

func TestComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
		want       []token.Kind
	}{
		{
			name: "at eof",
			text: "var x // comment at end",
			want: []token.Kind{token.Var, token.Ident, token.EOF},
		},
		{
			name: "only comments",
			text: "// first comment\n// second comment",
			want: []token.Kind{token.EOF},
		},
		{
			name: "before token",
			text: "// this is a comment\n    var",
			want: []token.Kind{token.Var, token.EOF},
		},
		{
			name: "slash assign is not a comment",
			text: "a /= b / c",
			want: []token.Kind{token.Ident, token.SlashAssign, token.Ident, token.Slash, token.Ident, token.EOF},
		},
		{
			name: "comment after slash",
			text: "a ///b\nc",
			want: []token.Kind{token.Ident, token.Ident, token.EOF},
		},
		{
			name: "interleaved",
			text: `
				var a = 1; // comment 1
				// comment 2
				var b = 2; // comment 3
				// comment 4
				// comment 5
				var c = 3;
			`,
			want: []token.Kind{
				token.Var, token.Ident, token.Assign, token.Int, token.Semi,
				token.Var, token.Ident, token.Assign, token.Int, token.Semi,
				token.Var, token.Ident, token.Assign, token.Int, token.Semi,
				token.EOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, kinds(t, tt.text))
		})
	}
}

func TestBOM(t *testing.T) {
	t.Parallel()

	tz := lexer.New("\uFEFFstruct")
	assert.Equal(t, 3, tz.Offset())
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, token.Token{Kind: token.Struct, Span: source.Span{Start: 3, End: 9}}, tok)

	assert.Equal(t, []token.Kind{
		token.Var, token.Ident, token.Assign, token.Int, token.Semi, token.EOF,
	}, kinds(t, "\uFEFFvar x = 42;"))

	tok, err = lexer.New("\uFEFF").Next()
	require.NoError(t, err)
	assert.Equal(t, token.Token{Kind: token.EOF, Span: source.Span{Start: 3, End: 3}}, tok)

	// Only a leading BOM is special.
	tz = lexer.New("a\uFEFF")
	_, err = tz.Next()
	require.NoError(t, err)
	_, err = tz.Next()
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.UnrecognizedCharacter, lexErr.Kind)
	assert.Equal(t, '\uFEFF', lexErr.Char)
	assert.Equal(t, source.Span{Start: 1, End: 4}, lexErr.Span)
}

func TestChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{`'a'`, `'\n'`, `'\r'`, `'\t'`, `'\0'`, `'\\'`, `'\''`, `'\"'`, `'"'`, `'世'`},
		lexemes(t, `'a' '\n' '\r' '\t' '\0' '\\' '\'' '\"' '"' '世'`),
	)

	// A literal newline is a character like any other.
	assert.Equal(t, []token.Kind{token.Char, token.EOF}, kinds(t, "'\n'"))
}

func TestCharErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		kind   lexer.ErrorKind
		char   rune
		span   source.Span
		offset int
	}{
		{text: `''`, kind: lexer.EmptyChar, span: source.Span{Start: 0, End: 2}, offset: 2},
		{text: `'''`, kind: lexer.EmptyChar, span: source.Span{Start: 0, End: 2}, offset: 2},
		{text: `'\a'`, kind: lexer.InvalidEscapeSequenceChar, char: 'a', span: source.Span{Start: 1, End: 3}, offset: 3},
		{text: `x '\q`, kind: lexer.InvalidEscapeSequenceChar, char: 'q', span: source.Span{Start: 3, End: 5}, offset: 5},
		{text: `'ab'`, kind: lexer.UnterminatedChar, span: source.Span{Start: 0, End: 3}, offset: 3},
		{text: `'a`, kind: lexer.UnterminatedChar, span: source.Span{Start: 0, End: 2}, offset: 2},
		{text: `'`, kind: lexer.UnterminatedChar, span: source.Span{Start: 0, End: 1}, offset: 1},
		{text: `'\`, kind: lexer.UnterminatedChar, span: source.Span{Start: 0, End: 2}, offset: 2},
		{text: `'\n`, kind: lexer.UnterminatedChar, span: source.Span{Start: 0, End: 3}, offset: 3},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			tz := lexer.New(tt.text)
			err := nextError(t, tz)

			assert.ErrorIs(t, err, tt.kind)
			var lexErr *lexer.Error
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.kind, lexErr.Kind)
			assert.Equal(t, tt.char, lexErr.Char)
			assert.Equal(t, tt.span, lexErr.Span)
			assert.Equal(t, tt.offset, tz.Offset())
		})
	}
}

func TestPunctuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []token.Kind
	}{
		{
			text: "(){}[]~;.,",
			want: []token.Kind{
				token.LParen, token.RParen, token.LBrace, token.RBrace, token.LBracket, token.RBracket,
				token.Tilde, token.Semi, token.Dot, token.Comma,
			},
		},
		{
			text: "& &= | |= ^ ^= :: : .. ..= == => -> != + +=",
			want: []token.Kind{
				token.Amp, token.AmpAssign, token.Pipe, token.PipeAssign, token.Caret, token.CaretAssign,
				token.ColonColon, token.Colon, token.Ellipsis, token.EllipsisAssign, token.Eq, token.FatArrow,
				token.Arrow, token.NotEq, token.Plus, token.PlusAssign,
			},
		},
		{
			text: "+ += - -= * *= / /= % %=",
			want: []token.Kind{
				token.Plus, token.PlusAssign, token.Minus, token.MinusAssign, token.Star, token.StarAssign,
				token.Slash, token.SlashAssign, token.Percent, token.PercentAssign,
			},
		},
		{
			text: "< <= << <<= > >= >> >>=",
			want: []token.Kind{
				token.Less, token.LessEq, token.Shl, token.ShlAssign,
				token.Greater, token.GreaterEq, token.Shr, token.ShrAssign,
			},
		},
		{
			text: "= ! !=",
			want: []token.Kind{token.Assign, token.Bang, token.NotEq},
		},
		{
			text: ". .. ... ..= ...=",
			want: []token.Kind{
				token.Dot, token.Ellipsis, token.Ellipsis, token.Dot, token.EllipsisAssign,
				token.Ellipsis, token.Dot, token.Assign,
			},
		},
		{
			text: "==>>>===",
			want: []token.Kind{token.Eq, token.Shr, token.GreaterEq, token.Eq},
		},
		{
			text: ":::",
			want: []token.Kind{token.ColonColon, token.Colon},
		},
		{
			text: "->>",
			want: []token.Kind{token.Arrow, token.Greater},
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, append(tt.want, token.EOF), kinds(t, tt.text))
		})
	}
}

func TestIdents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []token.Kind{
		token.Ident, token.Ident, token.Struct, token.If, token.Else, token.While, token.For, token.EOF,
	}, kinds(t, "foo bar struct if else while for"))

	// Keywords are case-sensitive, and only whole words match.
	assert.Equal(t, []token.Kind{
		token.True, token.Ident, token.Ident, token.Ident, token.Ident, token.Ident, token.EOF,
	}, kinds(t, "true True as package iff var_"))

	for _, text := range []string{
		"café αβγ δεζ _underscore русский",
		"hello世界 test123 _test_测试",
		"_ _foo foo_ _foo_bar_ __double__",
		"x١٢ ǅx ⅷ",
	} {
		assert.Equal(t, strings.Fields(text), lexemes(t, text))
		for _, k := range kinds(t, text) {
			assert.Contains(t, []token.Kind{token.Ident, token.EOF}, k)
		}
	}
}

func TestNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []token.Kind
	}{
		{
			text: "42 3.14 0 10.0 1.",
			want: []token.Kind{token.Int, token.Float, token.Int, token.Float, token.Int, token.Dot},
		},
		{
			text: "0 00 007 0123",
			want: []token.Kind{token.Int, token.Int, token.Int, token.Int},
		},
		{
			text: "0.0 00.00 .5 1.",
			want: []token.Kind{token.Float, token.Float, token.Dot, token.Int, token.Int, token.Dot},
		},
		{
			text: "1..2",
			want: []token.Kind{token.Int, token.Ellipsis, token.Int},
		},
		{
			text: "1.x",
			want: []token.Kind{token.Int, token.Dot, token.Ident},
		},
		{
			text: "1.2.3",
			want: []token.Kind{token.Float, token.Dot, token.Int},
		},
		{
			text: "12abc",
			want: []token.Kind{token.Int, token.Ident},
		},
		{
			text: "1.٣",
			want: []token.Kind{token.Int, token.Dot},
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			tz := lexer.New(tt.text)
			var got []token.Kind
			for tok, err := range tz.All() {
				if err != nil {
					break
				}
				got = append(got, tok.Kind)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, []string{"3.14", "1", ".", "2"}, lexemes(t, "3.14 1 . 2"))
}

func TestUnrecognized(t *testing.T) {
	t.Parallel()

	for _, c := range "@#$?`\\\"\x00" {
		_, err := lexer.New(string(c)).Next()
		assert.Equal(t, &lexer.Error{
			Kind: lexer.UnrecognizedCharacter,
			Char: c,
			Span: source.Span{Start: 0, End: 1},
		}, err, "%q", c)
	}

	// Lexing resumes after the bad character.
	tz := lexer.New("a @ b")
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, token.Ident, tok.Kind)
	tok, err = tz.Next()
	require.Error(t, err)
	assert.Equal(t, token.Token{}, tok)
	assert.Equal(t, 3, tz.Offset())
	tok, err = tz.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", tok.Text(tz.Text()))

	// Invalid UTF-8 is rejected a byte at a time.
	_, err = lexer.New("\xff\xfe").Next()
	assert.Equal(t, &lexer.Error{
		Kind: lexer.UnrecognizedCharacter,
		Char: utf8.RuneError,
		Span: source.Span{Start: 0, End: 1},
	}, err)
}

func TestCarriageReturn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []token.Kind{token.Ident, token.Ident, token.EOF}, kinds(t, "a\r\nb\r\n"))
	assert.Equal(t, []token.Kind{token.EOF}, kinds(t, "   \t\n\r\n  "))
	assert.Equal(t, []token.Kind{token.Var, token.Int, token.EOF}, kinds(t, "  \t var  \n  42  \r\n  "))

	// Comments swallow carriage returns.
	assert.Equal(t, []token.Kind{token.Ident, token.EOF}, kinds(t, "// c\r\nx"))
	assert.Equal(t, []token.Kind{token.EOF}, kinds(t, "// c\rx"))

	tests := []struct {
		text  string
		start int
	}{
		{text: "\r", start: 0},
		{text: "a\rb", start: 1},
		{text: "   \t\n\r  ", start: 5},
		{text: "\r\r\n", start: 0},
	}
	for _, tt := range tests {
		tz := lexer.New(tt.text)
		err := nextError(t, tz)

		assert.Equal(t, &lexer.Error{
			Kind: lexer.DisallowedCarriageReturn,
			Char: '\r',
			Span: source.Span{Start: tt.start, End: tt.start + 1},
		}, err, "%q", tt.text)
		assert.Equal(t, tt.start+1, tz.Offset(), "%q", tt.text)
	}

	// Whitespace-only input with an unpaired carriage return is not empty:
	// the error comes first, then EOF at the end of the text.
	tz := lexer.New("   \t\n\r  ")
	_, err := tz.Next()
	require.ErrorIs(t, err, lexer.DisallowedCarriageReturn)
	for range 2 {
		tok, err := tz.Next()
		require.NoError(t, err)
		assert.Equal(t, token.EOF, tok.Kind)
		assert.Equal(t, source.Span{Start: 8, End: 8}, tok.Span)
	}
}

func TestEOF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []token.Kind{token.EOF}, kinds(t, ""))

	tz := lexer.New("x ")
	_, err := tz.Next()
	require.NoError(t, err)
	for range 3 {
		tok, err := tz.Next()
		require.NoError(t, err)
		assert.Equal(t, token.Token{Kind: token.EOF, Span: source.Span{Start: 2, End: 2}}, tok)
		assert.Equal(t, 2, tz.Offset())
	}
}

func TestSpans(t *testing.T) {
	t.Parallel()

	text := "var x = 'a'; // done\nx += 1.5"
	got, err := lexer.Tokenize(text)
	require.NoError(t, err)

	span := func(start, end int) source.Span { return source.Span{Start: start, End: end} }
	want := []token.Token{
		{Kind: token.Var, Span: span(0, 3)},
		{Kind: token.Ident, Span: span(4, 5)},
		{Kind: token.Assign, Span: span(6, 7)},
		{Kind: token.Char, Span: span(8, 11)},
		{Kind: token.Semi, Span: span(11, 12)},
		{Kind: token.Ident, Span: span(21, 22)},
		{Kind: token.PlusAssign, Span: span(23, 25)},
		{Kind: token.Float, Span: span(26, 29)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}

	// Spans tile the text: only whitespace and comments fall between them.
	prev := 0
	for _, tok := range got {
		gap := strings.TrimSpace(text[prev:tok.Span.Start])
		if gap != "" {
			assert.True(t, strings.HasPrefix(gap, "//"), "%q", gap)
		}
		prev = tok.Span.End
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.Tokenize("a b '' c")
	require.ErrorIs(t, err, lexer.EmptyChar)
	assert.Len(t, tokens, 2)

	tokens, err = lexer.Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	// Breaking out of the iterator early is allowed.
	tz := lexer.New("a b c")
	for range tz.All() {
		break
	}
	assert.Equal(t, 1, tz.Offset())
}

func TestContinueAfterErrors(t *testing.T) {
	t.Parallel()

	tz := lexer.New(`'' @ '\a'`)
	var errs []lexer.ErrorKind
	for {
		tok, err := tz.Next()
		if err != nil {
			var lexErr *lexer.Error
			require.ErrorAs(t, err, &lexErr)
			errs = append(errs, lexErr.Kind)
			continue
		}
		if tok.IsEOF() {
			break
		}
		t.Fatalf("unexpected token %v", tok)
	}

	assert.Equal(t, []lexer.ErrorKind{
		lexer.EmptyChar,
		lexer.UnrecognizedCharacter,
		lexer.InvalidEscapeSequenceChar,
		lexer.UnterminatedChar,
	}, errs)
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *lexer.Error
		want string
	}{
		{
			err:  &lexer.Error{Kind: lexer.UnrecognizedCharacter, Char: '@'},
			want: "unrecognized character '@'",
		},
		{
			err:  &lexer.Error{Kind: lexer.InvalidEscapeSequenceChar, Char: 'q'},
			want: "invalid escape sequence `\\q` in character literal",
		},
		{
			err:  &lexer.Error{Kind: lexer.EmptyChar},
			want: "empty character literal",
		},
		{
			err:  &lexer.Error{Kind: lexer.UnterminatedChar},
			want: "unterminated character literal",
		},
		{
			err:  &lexer.Error{Kind: lexer.DisallowedCarriageReturn, Char: '\r'},
			want: "disallowed carriage return",
		},
	}

	for _, tt := range tests {
		assert.EqualError(t, tt.err, tt.want)
		assert.ErrorIs(t, tt.err, tt.err.Kind)
	}
	assert.NotErrorIs(t, &lexer.Error{Kind: lexer.EmptyChar}, lexer.UnterminatedChar)
	assert.Equal(t, "lexer.EmptyChar", lexer.EmptyChar.GoString())
}

func TestNoAllocs(t *testing.T) {
	text := strings.Repeat("var x = 42 + 3.14; // hi\nif x <<= 'a' { return café }\n", 100)
	tz := lexer.New(text)

	var err error
	allocs := testing.AllocsPerRun(500, func() {
		if err == nil {
			_, err = tz.Next()
		}
	})
	require.NoError(t, err)
	assert.Zero(t, allocs)
}
