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
	"iter"

	"github.com/bufbuild/crawfish/token"
)

// All returns an iterator over the remaining tokens, excluding the final
// [token.EOF].
//
// If lexing fails, the iterator yields the error alongside a zero token and
// then stops.
func (t *Tokenizer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := t.Next()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.IsEOF() || !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokenize lexes all of text.
//
// On failure, returns the tokens lexed before the first error, along with
// that error.
func Tokenize(text string) ([]token.Token, error) {
	var tokens []token.Token
	for tok, err := range New(text).All() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
