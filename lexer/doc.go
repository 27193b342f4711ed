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

// Package lexer turns crawfish source text into a stream of tokens.
//
// A [Tokenizer] is constructed over a string and produces one token per call
// to [Tokenizer.Next]. Lexing is on-demand: nothing is read ahead beyond the
// token being produced, and the tokenizer performs no allocation for
// successfully lexed tokens.
//
// The grammar recognized here is small:
//
//   - whitespace is any Unicode White_Space character, except that a carriage
//     return must be immediately followed by a line feed;
//   - line comments run from // to the end of the line;
//   - identifiers begin with an alphabetic character or underscore, and
//     continue with alphanumeric characters or underscores;
//   - integer literals are runs of ASCII digits, and float literals are two
//     such runs joined by a single dot;
//   - character literals hold one character or one of the escapes
//     \n \r \t \0 \\ \' \";
//   - punctuation is matched greedily, longest spelling first.
//
// An unpaired carriage return is an error wherever it appears, so input that
// is otherwise only whitespace, such as "  \n\r ", yields a
// [DisallowedCarriageReturn] error before the EOF token rather than EOF alone.
//
// Errors are reported as [*Error] values; lexing may continue after an error,
// since every failed call consumes at least one character.
package lexer

//go:generate go run github.com/bufbuild/crawfish/internal/enum errorkind.yaml
