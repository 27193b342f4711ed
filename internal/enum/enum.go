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

// enum generates the boilerplate for crawfish's byte-sized enums: the
// constant block, name tables and lookup maps.
//
// To generate an enum, add a directive next to its YAML description:
//
//	//go:generate go run github.com/bufbuild/crawfish/internal/enum kind.yaml
//
// The YAML file holds a list of [Enum]. The output is written next to it,
// with the .yaml extension replaced by .go.
//
//nolint:revive // Trailing _ on exported fields keeps them apart from the methods of the same name.
package main

import (
	"bytes"
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Enum describes one enum type.
type Enum struct {
	Name    string   `yaml:"name"`  // Type name.
	Type    string   `yaml:"type"`  // Underlying integer type.
	Docs    string   `yaml:"docs"`  // Type documentation.
	Total   string   `yaml:"total"` // Optional constant holding the number of values.
	Methods []Method `yaml:"methods"`
	Values_ []Value  `yaml:"values"`
}

// Values returns the enum's values, linked back to the enum.
func (e *Enum) Values() []Value {
	for i := range e.Values_ {
		e.Values_[i].Idx = i
	}
	return e.Values_
}

// validate rejects descriptions that would generate code that does not
// compile or that silently drops values.
func (e *Enum) validate() error {
	if e.Name == "" {
		return errors.New("enum without a name")
	}
	if e.Type == "" {
		return fmt.Errorf("%s: missing underlying type", e.Name)
	}
	if len(e.Values_) == 0 {
		return fmt.Errorf("%s: no values", e.Name)
	}

	names := make(map[string]bool, len(e.Values_))
	for _, v := range e.Values_ {
		if names[v.Name] {
			return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
		}
		names[v.Name] = true
	}

	for _, m := range e.Methods {
		if _, err := m.Name(); err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		for _, skip := range m.Skip {
			if !names[skip] {
				return fmt.Errorf("%s: %s skips unknown value %s", e.Name, m.Kind, skip)
			}
		}
		if m.Kind != MethodFromString {
			continue
		}

		seen := make(map[string]string)
		for _, v := range e.Values_ {
			if slices.Contains(m.Skip, v.Name) {
				continue
			}
			if prev, ok := seen[v.String()]; ok {
				return fmt.Errorf("%s: %s and %s both spell %q", e.Name, prev, v.Name, v.String())
			}
			seen[v.String()] = v.Name
		}
	}
	return nil
}

// Value is one constant of an enum.
type Value struct {
	Name    string `yaml:"name"`   // Constant name.
	String_ string `yaml:"string"` // String form; defaults to Name.
	Docs    string `yaml:"docs"`

	Idx int `yaml:"-"`
}

// HasSuffixDocs returns whether this value's docs go at the end of its line
// rather than above it, which is the case for all single-line docs.
func (v Value) HasSuffixDocs() bool {
	return v.Docs != "" && !strings.Contains(v.Docs, "\n")
}

func (v Value) String() string {
	if v.String_ == "" {
		return v.Name
	}
	return v.String_
}

// Method is a method, or function, generated for an enum.
type Method struct {
	Kind  MethodKind `yaml:"kind"`
	Name_ string     `yaml:"name"` // Required for from-string.
	Docs_ string     `yaml:"docs"`
	Skip  []string   `yaml:"skip"` // Values left out of a from-string map.
}

func (m Method) Name() (string, error) {
	if m.Name_ != "" {
		return m.Name_, nil
	}

	switch m.Kind {
	case MethodFromString:
		return "", fmt.Errorf("missing name for %s method", m.Kind)
	case MethodGoString:
		return "GoString", nil
	case MethodString:
		return "String", nil
	case MethodError:
		return "Error", nil
	default:
		return "", fmt.Errorf("unknown method kind %q", m.Kind)
	}
}

func (m Method) Docs() string {
	if m.Docs_ != "" {
		return m.Docs_
	}

	switch m.Kind {
	case MethodGoString:
		return "GoString implements [fmt.GoStringer]."
	case MethodString:
		return "String implements [fmt.Stringer]."
	case MethodError:
		return "Error implements [error]."
	default:
		return ""
	}
}

type MethodKind string

const (
	MethodString     MethodKind = "string"      // A table-driven String method.
	MethodGoString   MethodKind = "go-string"   // GoString, returning the qualified constant name.
	MethodFromString MethodKind = "from-string" // A function from the string form back to the value.
	MethodError      MethodKind = "error"       // Error, returning the string form. Requires a string method.
)

//go:embed enum.go.tmpl
var tmplText string

// makeDocs turns text into a doc comment with the given indentation.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// input is the data the template is executed with.
type input struct {
	Binary, Package, Config string
	YAML                    []Enum
}

// generate renders the Go source for the enums described by yamlText.
func generate(in input, yamlText []byte) ([]byte, error) {
	if err := yaml.Unmarshal(yamlText, &in.YAML); err != nil {
		return nil, err
	}
	for i := range in.YAML {
		e := &in.YAML[i]
		if err := e.validate(); err != nil {
			return nil, err
		}
		hasString := slices.ContainsFunc(e.Methods, func(m Method) bool { return m.Kind == MethodString })
		hasError := slices.ContainsFunc(e.Methods, func(m Method) bool { return m.Kind == MethodError })
		if hasError && !hasString {
			return nil, fmt.Errorf("%s: an error method requires a string method", e.Name)
		}
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"contains": slices.Contains[[]string],
	}).Parse(tmplText)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, in); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func run(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	info, err := buildinfo.ReadFile(os.Args[0])
	if err != nil {
		return err
	}
	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}

	out, err := generate(input{
		Binary:  info.Path,
		Package: os.Getenv("GOPACKAGE"),
		Config:  config,
	}, text)
	if err != nil {
		return err
	}
	return os.WriteFile(strings.TrimSuffix(config, ".yaml")+".go", out, 0o644)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := run(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
