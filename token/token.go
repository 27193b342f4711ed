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

import (
	"fmt"

	"github.com/bufbuild/crawfish/source"
)

// Token is a lexical element of a crawfish file: a classification and the
// byte range of source text it was lexed from.
//
// Tokens are plain values. The lexer keeps no record of the tokens it
// produces.
type Token struct {
	Kind Kind
	Span source.Span
}

// Text returns the lexeme this token was lexed from, given the same text that
// was passed to the lexer.
func (t Token) Text(text string) string {
	return t.Span.Text(text)
}

// IsEOF returns whether this is the end-of-input token.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%#v%v", t.Kind, t.Span)
}
