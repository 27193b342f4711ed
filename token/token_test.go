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

package token_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/crawfish/source"
	"github.com/bufbuild/crawfish/token"
)

func TestKeyword(t *testing.T) {
	t.Parallel()

	for _, word := range []string{
		"and", "break", "const", "continue", "defer", "else", "enum", "false",
		"for", "func", "if", "implements", "import", "in", "interface", "match",
		"null", "or", "pub", "return", "struct", "this", "true", "var", "while",
	} {
		k := token.Keyword(word)
		assert.True(t, k.IsKeyword(), "%q", word)
		assert.Equal(t, word, k.String())
		assert.Equal(t, word, k.Spelling())
	}

	for _, word := range []string{
		"as", "package", "True", "False", "IF", "x", "_", "whilex", "iff", "",
	} {
		assert.Equal(t, token.Ident, token.Keyword(word), "%q", word)
	}

	// Punctuation spellings are not keywords.
	assert.Equal(t, token.Ident, token.Keyword("=="))
}

func TestPunctuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want token.Kind
		ok   bool
	}{
		{text: "(", want: token.LParen, ok: true},
		{text: "::x", want: token.ColonColon, ok: true},
		{text: ":x", want: token.Colon, ok: true},
		{text: "...=", want: token.Ellipsis, ok: true},
		{text: "..=", want: token.EllipsisAssign, ok: true},
		{text: ".5", want: token.Dot, ok: true},
		{text: "<<=1", want: token.ShlAssign, ok: true},
		{text: "<<1", want: token.Shl, ok: true},
		{text: "<=", want: token.LessEq, ok: true},
		{text: ">>>", want: token.Shr, ok: true},
		{text: "=>", want: token.FatArrow, ok: true},
		{text: "==>", want: token.Eq, ok: true},
		{text: "->", want: token.Arrow, ok: true},
		{text: "-=", want: token.MinusAssign, ok: true},
		{text: "!==", want: token.NotEq, ok: true},
		{text: "~=", want: token.Tilde, ok: true},
		{text: "/", want: token.Slash, ok: true},

		{text: "", ok: false},
		{text: "@", ok: false},
		{text: "a+", ok: false},
		{text: "'", ok: false},
	}

	for _, tt := range tests {
		k, ok := token.Punctuation(tt.text)
		assert.Equal(t, tt.ok, ok, "%q", tt.text)
		if tt.ok {
			assert.Equal(t, tt.want, k, "%q: got %#v", tt.text, k)
		}
	}
}

func TestProperties(t *testing.T) {
	t.Parallel()

	var keywords, punct int
	for i := range token.KindCount {
		k := token.Kind(i)
		if k.IsKeyword() {
			keywords++
			assert.False(t, k.IsPunctuation(), "%#v", k)
		}
		if k.IsPunctuation() {
			punct++
			// Every punctuation kind must be reachable through the trie.
			got, ok := token.Punctuation(k.Spelling())
			assert.True(t, ok, "%#v", k)
			assert.Equal(t, k, got)
		}
		if k.IsAssignment() {
			assert.True(t, k.IsOperator(), "%#v", k)
			assert.Contains(t, k.String(), "=")
		}
		if k.IsLiteral() || k == token.Ident || k == token.EOF {
			assert.Empty(t, k.Spelling(), "%#v", k)
		}
	}
	assert.Equal(t, 25, keywords)
	assert.Equal(t, 44, punct)

	assert.True(t, token.Comma.IsDelimiter())
	assert.False(t, token.Comma.IsOperator())
	assert.True(t, token.Float.IsLiteral())
	assert.False(t, token.Ident.IsLiteral())
	assert.False(t, token.Eq.IsAssignment())
	assert.True(t, token.Assign.IsAssignment())
	assert.False(t, token.Kind(200).IsKeyword())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "end of input", token.EOF.String())
	assert.Equal(t, "..=", token.EllipsisAssign.String())
	assert.Equal(t, "token.EllipsisAssign", token.EllipsisAssign.GoString())
	assert.Equal(t, "Kind(200)", token.Kind(200).String())
	assert.Equal(t, "token.Kind(200)", fmt.Sprintf("%#v", token.Kind(200)))

	tok := token.Token{Kind: token.Ident, Span: source.Span{Start: 4, End: 7}}
	assert.Equal(t, "token.Ident[4:7]", tok.String())
	assert.Equal(t, "foo", tok.Text("var foo = 1"))
	assert.False(t, tok.IsEOF())
	assert.True(t, token.Token{}.IsEOF())
}
