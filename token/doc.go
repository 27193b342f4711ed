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

// Package token defines the lexical units of crawfish source code.
//
// A [Token] is nothing more than a [Kind] and a [source.Span]: tokens do not
// copy or retain any text. The lexeme of a token is recovered on demand by
// slicing the original source with the token's span, which keeps tokens
// small and allocation-free.
package token

//go:generate go run github.com/bufbuild/crawfish/internal/enum kind.yaml
