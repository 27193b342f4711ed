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
	"context"
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/crawfish/lexer"
	"github.com/bufbuild/crawfish/reporter"
	"github.com/bufbuild/crawfish/source"
	"github.com/bufbuild/crawfish/token"
)

// Compiler handles compilation tasks, to turn crawfish source files into
// token streams.
//
// The compilation process involves two steps for each source file:
//  1. Resolving the path into source text, using the Resolver.
//  2. Lexing the text into tokens, reporting lexical errors to the Reporter.
type Compiler struct {
	// Resolves path/file names into source code. This is how the compiler
	// loads the files to be compiled. This field is the only required field.
	Resolver Resolver
	// The maximum parallelism to use when compiling. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error reporter. If unspecified a default reporter is used. A
	// default reporter fails the compilation after encountering any errors.
	Reporter reporter.Reporter

	// If true, lexing a file resumes after each error so that every error in
	// the file is reported. Otherwise lexing of a file stops at its first
	// error, though other files are still lexed if the reporter allows it.
	ContinueOnError bool
}

// File is the result of compiling a single source file.
type File struct {
	// The source text the tokens were lexed from.
	Source *source.File
	// The tokens of the file, ending with a [token.EOF] token unless lexing
	// stopped at an error.
	Tokens []token.Token
}

// Path returns the path of the file, as it was passed to [Compiler.Compile].
func (f *File) Path() string {
	return f.Source.Path()
}

// Files is a list of compiled files.
type Files []*File

// FindFileByPath returns the file with the given path, or nil if there is no
// such file.
func (f Files) FindFileByPath(path string) *File {
	for _, file := range f {
		if file.Path() == path {
			return file
		}
	}
	return nil
}

// PanicError is an error value that represents a recovered panic. It
// includes the value returned by recover() as well as the stack trace.
//
// This should generally only be seen if a Resolver implementation panics.
type PanicError struct {
	// The file that was being processed when the panic occurred.
	File string
	// The value returned by recover().
	Value any
	// A formatted stack trace.
	Stack string
}

// Error implements the error interface. It does NOT include the stack trace.
// Use a type assertion and query the Stack field directly to access that.
func (p PanicError) Error() string {
	return fmt.Sprintf("panic handling %q: %v", p.File, p.Value)
}

// Compile compiles the given file names into token streams. The compiler's
// resolver is used to locate source code.
//
// The returned files are in the same order as paths; naming a path more than
// once compiles it once. If the reporter aborts, Compile returns nil and the
// reporter's error. If errors were reported but the reporter chose to
// continue, Compile returns the files along with [reporter.ErrInvalidSource].
func (c *Compiler) Compile(ctx context.Context, paths ...string) (Files, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	h := reporter.NewHandler(c.Reporter)

	e := executor{
		c:       c,
		h:       h,
		s:       semaphore.NewWeighted(int64(par)),
		cancel:  cancel,
		results: map[string]*result{},
	}

	results := make([]*result, len(paths))
	for i, path := range paths {
		results[i] = e.compile(ctx, path)
	}

	// Every task finishes promptly once ctx is canceled, so it is safe to wait
	// for all of them.
	files := make(Files, len(paths))
	var firstErr error
	for i, r := range results {
		<-r.ready
		files[i] = r.res

		// A failing task cancels the others; report its error rather than
		// theirs.
		if r.err != nil && (firstErr == nil || errors.Is(firstErr, context.Canceled)) {
			firstErr = r.err
		}
	}

	if err := h.ReporterError(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	// At this point the only possible error is ErrInvalidSource.
	return files, h.Error()
}

type result struct {
	ready chan struct{}
	res   *File
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(f *File) {
	r.res = f
	close(r.ready)
}

type executor struct {
	c      *Compiler
	h      *reporter.Handler
	s      *semaphore.Weighted
	cancel context.CancelFunc

	mu      sync.Mutex
	results map[string]*result
}

// compile starts compiling path in the background, unless it has already been
// started.
func (e *executor) compile(ctx context.Context, path string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.results[path]
	if r != nil {
		return r
	}

	r = &result{ready: make(chan struct{})}
	e.results[path] = r
	go func() {
		defer func() {
			if p := recover(); p != nil {
				r.fail(PanicError{File: path, Value: p, Stack: string(debug.Stack())})
				e.cancel()
			}
		}()
		e.doCompile(ctx, path, r)
	}()
	return r
}

func (e *executor) doCompile(ctx context.Context, path string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	sr, err := e.c.Resolver.FindFileByPath(path)
	if err != nil {
		r.fail(err)
		e.cancel()
		return
	}

	file, err := readSource(path, sr)
	if err != nil {
		r.fail(err)
		e.cancel()
		return
	}

	tokens, err := e.lex(ctx, file)
	if err != nil {
		r.fail(err)
		e.cancel()
		return
	}
	r.complete(&File{Source: file, Tokens: tokens})
}

// lex lexes file, passing each lexical error to the handler.
func (e *executor) lex(ctx context.Context, file *source.File) ([]token.Token, error) {
	var tokens []token.Token
	tz := lexer.New(file.Text())
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		offset := tz.Offset()
		tok, err := tz.Next()
		if err == nil {
			tokens = append(tokens, tok)
			if tok.IsEOF() {
				return tokens, nil
			}
			continue
		}

		var lexErr *lexer.Error
		if !errors.As(err, &lexErr) {
			return nil, err
		}
		if err := e.h.HandleError(reporter.Error(file, lexErr.Span, lexErr)); err != nil {
			return nil, err
		}
		if !e.c.ContinueOnError {
			return tokens, nil
		}
		if tz.Offset() <= offset {
			panic("lexer failed to make progress after an error; this is a bug in crawfish")
		}
	}
}
