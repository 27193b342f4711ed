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

package crawfish

import (
	"fmt"
	"io"
	"strings"

	"github.com/bufbuild/crawfish/source"
)

// DumpTokens writes a human-readable listing of f's tokens to w, one
// tab-separated line per token: the kind, the byte span, the line and column
// (in runes) of the token's start, and the quoted token text.
func (f *File) DumpTokens(w io.Writer) error {
	for _, tok := range f.Tokens {
		_, err := fmt.Fprintf(w, "%s\t%v\t%v\t%q\n",
			strings.TrimPrefix(tok.Kind.GoString(), "token."),
			tok.Span,
			f.Source.Location(tok.Span.Start, source.Runes),
			tok.Text(f.Source.Text()),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
