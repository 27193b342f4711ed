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

// Package reporter contains the types used for reporting errors from
// crawfish APIs. The simplest way to control how errors are handled is to
// construct a reporter with [NewReporter].
package reporter

import (
	"sync"

	"github.com/bufbuild/crawfish/report"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, compilation will abort with that error. If the
// reporter returns nil, compilation will continue, allowing further errors
// to be reported.
type ErrorReporter func(err ErrorWithPos) error

// Reporter is a type that handles reporting errors.
type Reporter interface {
	// Error is called when the given error is encountered and needs to be
	// reported to the calling program. It has the same semantics as an
	// [ErrorReporter].
	Error(ErrorWithPos) error
}

// NewReporter creates a new reporter that invokes the given function on
// error. A nil errs aborts on the first error.
func NewReporter(errs ErrorReporter) Reporter {
	return reporterFunc(errs)
}

type reporterFunc ErrorReporter

func (r reporterFunc) Error(err ErrorWithPos) error {
	if r == nil {
		return err
	}
	return r(err)
}

// Collect returns a reporter that records every error as a diagnostic in rep.
// It never aborts, so every error in every file is collected.
func Collect(rep *report.Report) Reporter {
	var mu sync.Mutex
	return NewReporter(func(err ErrorWithPos) error {
		mu.Lock()
		defer mu.Unlock()
		rep.Error(err)
		return nil
	})
}

// Handler is used by compilation to report errors. It wraps a
// [Reporter] and remembers the first error it returned, so that once the
// reporter asks to abort, every later call returns the same error.
//
// A Handler is safe for concurrent use; calls into the wrapped reporter are
// serialized.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a new Handler that reports errors using the given
// reporter. A nil reporter aborts on the first error.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Handler{reporter: rep}
}

// HandleError handles the given error. If it is an [ErrorWithPos], it is
// passed to the reporter; otherwise the handler aborts with it.
//
// If the handler has already aborted, this returns that error without calling
// the reporter.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// Error returns the handler result. If any errors have been reported then this
// returns a non-nil error. If the reporter never returned a non-nil error then
// [ErrInvalidSource] is returned. Otherwise, this returns the error returned
// by the handler's reporter (the same value returned by [Handler.ReporterError]).
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error returned by the handler's reporter. If
// the reporter has either not been invoked or has never returned a
// non-nil error, then this returns nil.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
