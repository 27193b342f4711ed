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

package report

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Report is a collection of diagnostics, each of which is an error.
//
// A Report is not safe for concurrent use.
type Report struct {
	Diagnostics []Diagnostic
}

// Error pushes an error diagnostic onto this report.
//
// If err, or any error it wraps, is a [Diagnoser], it is asked to fill in the
// diagnostic.
func (r *Report) Error(err error) *Diagnostic {
	return r.push(err)
}

// Errorf creates a new error diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...))
}

// Sort canonicalizes the order of diagnostics: by file path, then by the
// offset of the primary span. Diagnostics that compare equal keep their
// relative order.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.Path(), b.Path()); c != 0 {
			return c
		}
		ap, _ := a.Primary()
		bp, _ := b.Primary()
		return cmp.Compare(ap.Span.Start, bp.Span.Start)
	})
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(err error) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Err:     err,
		Message: err.Error(),
	})
	d := &r.Diagnostics[len(r.Diagnostics)-1]

	var diagnoser Diagnoser
	if errors.As(err, &diagnoser) {
		diagnoser.Diagnose(d)
	}
	return d
}
