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

// Package crawfish is the front end of the crawfish language. It turns
// crawfish source files into token streams, reporting lexical errors with
// precise source locations.
//
// # Phases
//
// Compilation currently consists of a single phase, lexing, implemented by
// package lexer. Given source text, a lexer.Tokenizer produces tokens one at
// a time on demand; this package drives it over whole files and routes its
// errors through a reporter.
//
// This package provides an easy-to-use interface that loads and lexes files
// based on the inputs given. It is also capable of taking advantage of
// multiple CPU cores, so a compilation involving thousands of files can be
// done very quickly by lexing files in parallel.
//
// # Resolvers
//
// A [Resolver] is how the compiler locates the inputs to the compilation.
// A Resolver can answer a query either with a reader of source code, or with
// an already loaded source.File.
//
// [SourceResolver] loads files from the file system, optionally searching a
// list of import paths. For tests and other in-memory uses, its Accessor can
// be replaced using [SourceAccessorFromMap].
//
// # Compiler
//
// A [Compiler] accepts a list of file names and produces the list of lexed
// files. A Compiler has several fields that control how it works but only the
// Resolver field is required. A minimal Compiler, that resolves files by
// loading them from the file system based on the current working directory,
// can be had with the following simple snippet:
//
//	compiler := crawfish.Compiler{
//	    Resolver: &crawfish.SourceResolver{},
//	}
//
// This minimal Compiler will use default parallelism, equal to the number of
// CPU cores detected, and it will fail fast at the first sign of any error.
// Both aspects can be customized by setting other fields.
//
// To collect every error of every file, set ContinueOnError and use a
// reporter that never aborts, such as one built with [reporter.Collect].
package crawfish
