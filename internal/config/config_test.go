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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/crawfish/internal/config"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
color: never
compact: true
continue: true
jobs: 4
import_paths: [src, /abs]
exclude: ["**/gen/**", "*_test.crw"]
`))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Color:       config.ColorNever,
		Compact:     true,
		Continue:    true,
		Jobs:        4,
		ImportPaths: []string{"src", "/abs"},
		Exclude:     []string{"**/gen/**", "*_test.crw"},
	}, cfg)

	cfg, err = config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Parse([]byte("compact: true\n"))
	require.NoError(t, err)
	assert.Equal(t, config.ColorAuto, cfg.Color)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		yaml, want string
	}{
		{yaml: "colour: never", want: "field colour not found"},
		{yaml: "color: sometimes", want: `invalid color mode "sometimes"`},
		{yaml: "jobs: -1", want: "jobs must not be negative, got -1"},
		{yaml: "exclude: ['a/[b']", want: `invalid exclude pattern "a/[b"`},
		{yaml: "jobs: many", want: "cannot unmarshal"},
	}
	for _, test := range tests {
		_, err := config.Parse([]byte(test.yaml))
		assert.ErrorContains(t, err, test.want, "%q", test.yaml)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("import_paths: [src, /abs]\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "src"), "/abs"}, cfg.ImportPaths)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("jobs: -3\n"), 0o644))
	_, err = config.Load(path)
	assert.ErrorContains(t, err, "failed to parse configuration from")
}

func TestExcluded(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Exclude: []string{"**/gen/**", "*_test.crw"}}
	assert.True(t, cfg.Excluded("a/gen/b.crw"))
	assert.True(t, cfg.Excluded("gen/b.crw"))
	assert.True(t, cfg.Excluded("x_test.crw"))
	assert.False(t, cfg.Excluded("a/x_test.crw"))
	assert.False(t, cfg.Excluded("a/b.crw"))
	assert.False(t, config.Default().Excluded("a/b.crw"))
}
