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

package token

import "github.com/bufbuild/crawfish/internal/trie"

type property uint8

const (
	literal property = 1 << iota
	delimiter
	operator
	assignment
	keyword
)

func (k Kind) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// properties is a table of kind properties, stored as bitsets.
var properties = [...]property{
	Int:   literal,
	Float: literal,
	Char:  literal,

	LParen:     delimiter,
	RParen:     delimiter,
	LBrace:     delimiter,
	RBrace:     delimiter,
	LBracket:   delimiter,
	RBracket:   delimiter,
	Colon:      delimiter,
	ColonColon: delimiter,
	Semi:       delimiter,
	Dot:        delimiter,
	Comma:      delimiter,

	Assign:   operator | assignment,
	Eq:       operator,
	FatArrow: operator,
	Bang:     operator,
	NotEq:    operator,
	Arrow:    operator,
	Tilde:    operator,
	Ellipsis: operator,

	Plus:    operator,
	Minus:   operator,
	Star:    operator,
	Slash:   operator,
	Percent: operator,
	Amp:     operator,
	Pipe:    operator,
	Caret:   operator,
	Shl:     operator,
	Shr:     operator,

	Less:      operator,
	LessEq:    operator,
	Greater:   operator,
	GreaterEq: operator,

	PlusAssign:     operator | assignment,
	MinusAssign:    operator | assignment,
	StarAssign:     operator | assignment,
	SlashAssign:    operator | assignment,
	PercentAssign:  operator | assignment,
	AmpAssign:      operator | assignment,
	PipeAssign:     operator | assignment,
	CaretAssign:    operator | assignment,
	ShlAssign:      operator | assignment,
	ShrAssign:      operator | assignment,
	EllipsisAssign: operator | assignment,

	And:        keyword,
	Break:      keyword,
	Const:      keyword,
	Continue:   keyword,
	Defer:      keyword,
	Else:       keyword,
	Enum:       keyword,
	False:      keyword,
	For:        keyword,
	Func:       keyword,
	If:         keyword,
	Implements: keyword,
	Import:     keyword,
	In:         keyword,
	Interface:  keyword,
	Match:      keyword,
	Null:       keyword,
	Or:         keyword,
	Pub:        keyword,
	Return:     keyword,
	Struct:     keyword,
	This:       keyword,
	True:       keyword,
	Var:        keyword,
	While:      keyword,
}

// IsLiteral returns whether this is an integer, float, or character literal.
func (k Kind) IsLiteral() bool {
	return k.properties()&literal != 0
}

// IsDelimiter returns whether this is a bracket or separator.
func (k Kind) IsDelimiter() bool {
	return k.properties()&delimiter != 0
}

// IsOperator returns whether this is an operator, including compound
// assignments.
func (k Kind) IsOperator() bool {
	return k.properties()&operator != 0
}

// IsAssignment returns whether this is = or a compound assignment such as +=.
func (k Kind) IsAssignment() bool {
	return k.properties()&assignment != 0
}

// IsPunctuation returns whether this is a delimiter or an operator.
func (k Kind) IsPunctuation() bool {
	return k.properties()&(delimiter|operator) != 0
}

// IsKeyword returns whether this is a reserved word.
func (k Kind) IsKeyword() bool {
	return k.properties()&keyword != 0
}

// Spelling returns the fixed text of tokens of this kind, or "" if tokens of
// this kind have variable text (identifiers, literals, and EOF).
func (k Kind) Spelling() string {
	if !k.IsPunctuation() && !k.IsKeyword() {
		return ""
	}
	return k.String()
}

var punctTrie = func() *trie.Trie[Kind] {
	t := new(trie.Trie[Kind])
	for i := range KindCount {
		if k := Kind(i); k.IsPunctuation() {
			t.Insert(k.String(), k)
		}
	}
	return t
}()

// Punctuation returns the longest punctuation token that text starts with.
//
// Because the match is longest-first, this implements the greedy
// disambiguation of multi-character operators: "<<=x" yields [ShlAssign] and
// "...=" yields [Ellipsis].
func Punctuation(text string) (Kind, bool) {
	prefix, k := punctTrie.Get(text)
	if prefix == "" {
		return EOF, false
	}
	return k, true
}

// Keyword classifies an identifier-shaped word: it returns the keyword kind
// spelled exactly as word, or [Ident] if word is not reserved. Matching is
// case-sensitive.
func Keyword(word string) Kind {
	if k, ok := Lookup(word); ok && k.IsKeyword() {
		return k
	}
	return Ident
}
