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

// Package report provides a diagnostics framework for crawfish.
//
// Errors that know how to describe themselves implement [Diagnoser]: given a
// [Diagnostic], they attach source snippets, notes and help text to it. A
// [Report] collects diagnostics, and a [Renderer] turns them into text for
// a terminal, either in a compact one-line form or in a form that shows the
// offending source code.
package report
