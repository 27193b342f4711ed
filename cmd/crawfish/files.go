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

package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bufbuild/crawfish/internal/config"
)

const extension = ".crw"

// expand turns command-line patterns into the list of files to lex.
//
// A pattern without glob metacharacters names a single file, which must have
// the crawfish extension. Other patterns are matched against each import
// path, or the working directory if there are none, and silently skip files
// with other extensions. Files matching an exclude glob are dropped.
func expand(cfg config.Config, patterns []string) ([]string, error) {
	roots := cfg.ImportPaths
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var paths []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok || cfg.Excluded(p) {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			if filepath.Ext(pattern) != extension {
				return nil, fmt.Errorf("%s: not a crawfish file; expected the %s extension", pattern, extension)
			}
			add(filepath.Clean(pattern))
			continue
		}

		if filepath.IsAbs(pattern) {
			matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pattern, err)
			}
			for _, match := range matches {
				if filepath.Ext(match) == extension {
					add(match)
				}
			}
			continue
		}

		glob := path.Clean(filepath.ToSlash(pattern))
		for _, root := range roots {
			matches, err := doublestar.Glob(os.DirFS(root), glob, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pattern, err)
			}
			for _, match := range matches {
				if path.Ext(match) == extension {
					add(filepath.FromSlash(match))
				}
			}
		}
	}
	return paths, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[{`)
}
