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

package unicodex

import "unicode"

// IsAlphabetic reports whether r has the Unicode Alphabetic property.
//
// Go's unicode package has no table for the derived Alphabetic property, so
// it is assembled from its definition: letters, letter numbers, and
// Other_Alphabetic.
func IsAlphabetic(r rune) bool {
	// ASCII fast path.
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	if r < 0x80 {
		return false
	}

	return unicode.In(r,
		unicode.Letter,
		unicode.Nl, // Number, letter.
		unicode.Other_Alphabetic,
	)
}

// IsAlphanumeric reports whether r is [IsAlphabetic] or has a Unicode numeric
// general category.
func IsAlphanumeric(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	return IsAlphabetic(r) || unicode.IsNumber(r)
}

// IsIdentStart reports whether r may begin an identifier.
func IsIdentStart(r rune) bool {
	return r == '_' || IsAlphabetic(r)
}

// IsIdentContinue reports whether r may appear after the first rune of an
// identifier.
func IsIdentContinue(r rune) bool {
	return r == '_' || IsAlphanumeric(r)
}

// IsSpace reports whether r has the Unicode White_Space property.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	if r < 0x80 {
		return false
	}
	return unicode.Is(unicode.White_Space, r)
}
