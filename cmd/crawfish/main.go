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

// Command crawfish lexes crawfish source files and reports diagnostics.
//
//	crawfish build [flags] PATTERN...
//	crawfish tokens FILE
//	crawfish version
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/bufbuild/crawfish"
	"github.com/bufbuild/crawfish/internal/config"
	"github.com/bufbuild/crawfish/report"
	"github.com/bufbuild/crawfish/reporter"
)

var log = logrus.New()

// Version is set at link time.
var Version = "development"

// configValue loads the configuration file as soon as the flag is parsed.
type configValue struct {
	cfg  *config.Config
	path string
}

func (v *configValue) Set(s string) error {
	cfg, err := config.Load(s)
	if err != nil {
		return err
	}
	v.path = s
	*v.cfg = cfg
	return nil
}

func (v *configValue) String() string {
	return v.path
}

// options are the command-line flags, which take precedence over the
// configuration file.
type options struct {
	cfg      config.Config
	debug    bool
	cont     bool
	compact  bool
	color    string
	jobs     int
	patterns []string
	file     string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log.Out = stderr

	var opts options
	app := kingpin.New("crawfish", "Tokenizer for the crawfish language.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	exited := false
	app.Terminate(func(int) { exited = true })

	cv := &configValue{cfg: &opts.cfg}
	app.Flag("config", "Configuration file in YAML format. Defaults to ./"+config.FileName+" if present.").
		SetValue(cv)
	app.Flag("debug", "Log debug messages.").Short('d').BoolVar(&opts.debug)

	build := app.Command("build", "Lex every file matching the patterns and report diagnostics.")
	build.Flag("continue", "Keep lexing a file after its first error.").BoolVar(&opts.cont)
	build.Flag("color", "Colorize diagnostics: auto, always or never.").EnumVar(&opts.color,
		config.ColorAuto, config.ColorAlways, config.ColorNever)
	build.Flag("compact", "Print each diagnostic on one line.").BoolVar(&opts.compact)
	build.Flag("jobs", "Number of files lexed in parallel.").Short('j').IntVar(&opts.jobs)
	build.Arg("pattern", "Files or ** globs to lex.").Required().StringsVar(&opts.patterns)

	tokens := app.Command("tokens", "Print the tokens of a file, one per line.")
	tokens.Flag("continue", "Keep lexing after an error.").BoolVar(&opts.cont)
	tokens.Arg("file", "File to lex.").Required().StringVar(&opts.file)

	version := app.Command("version", "Print the version.")

	command, err := app.Parse(args)
	if exited {
		return 0
	}
	if err != nil {
		app.Errorf("%v", err)
		return 2
	}

	log.Level = logrus.InfoLevel
	if opts.debug {
		log.Level = logrus.DebugLevel
	}

	if cv.path == "" {
		if opts.cfg, err = config.Load(""); err != nil {
			log.WithError(err).Error("failed to load configuration")
			return 2
		}
	}
	cfg := opts.merge()
	log.WithFields(logrus.Fields{
		"config":       cv.path,
		"color":        cfg.Color,
		"compact":      cfg.Compact,
		"continue":     cfg.Continue,
		"jobs":         cfg.Jobs,
		"import-paths": cfg.ImportPaths,
		"exclude":      cfg.Exclude,
	}).Debug("configuration")

	switch command {
	case build.FullCommand():
		return runBuild(ctx, cfg, opts.patterns, stderr)
	case tokens.FullCommand():
		return runTokens(ctx, cfg, opts.file, stdout, stderr)
	case version.FullCommand():
		fmt.Fprintln(stdout, "crawfish", Version)
		return 0
	}
	return 2
}

// merge applies the command-line flags on top of the configuration file.
func (o *options) merge() config.Config {
	cfg := o.cfg
	cfg.Continue = cfg.Continue || o.cont
	cfg.Compact = cfg.Compact || o.compact
	if o.color != "" {
		cfg.Color = o.color
	}
	if o.jobs > 0 {
		cfg.Jobs = o.jobs
	}
	return cfg
}

func runBuild(ctx context.Context, cfg config.Config, patterns []string, stderr io.Writer) int {
	paths, err := expand(cfg, patterns)
	if err != nil {
		log.WithError(err).Error("failed to expand file patterns")
		return 2
	}
	if len(paths) == 0 {
		log.WithField("patterns", patterns).Warn("no files to lex")
		return 0
	}
	log.WithFields(logrus.Fields{"files": len(paths)}).Debug("lexing")

	_, code := compile(ctx, cfg, paths, stderr)
	return code
}

func runTokens(ctx context.Context, cfg config.Config, path string, stdout, stderr io.Writer) int {
	files, code := compile(ctx, cfg, []string{path}, stderr)
	if files == nil {
		return code
	}
	if err := files[0].DumpTokens(stdout); err != nil {
		log.WithError(err).Error("failed to write tokens")
		return 2
	}
	return code
}

// compile lexes paths, renders every diagnostic to stderr and returns the
// exit code.
func compile(ctx context.Context, cfg config.Config, paths []string, stderr io.Writer) (crawfish.Files, int) {
	var rep report.Report
	compiler := crawfish.Compiler{
		Resolver:        newResolver(cfg),
		MaxParallelism:  cfg.Jobs,
		Reporter:        reporter.Collect(&rep),
		ContinueOnError: cfg.Continue,
	}

	files, err := compiler.Compile(ctx, paths...)

	rep.Sort()
	renderer := report.Renderer{
		Compact:  cfg.Compact,
		Colorize: colorize(cfg.Color, stderr),
	}
	errs, rerr := renderer.Render(&rep, stderr)
	if rerr != nil {
		log.WithError(rerr).Error("failed to write diagnostics")
	}

	switch {
	case err == nil:
		return files, 0
	case errs > 0 && errors.Is(err, reporter.ErrInvalidSource):
		return files, 1
	default:
		log.WithError(err).Error("lexing failed")
		return nil, 1
	}
}

func newResolver(cfg config.Config) crawfish.Resolver {
	if len(cfg.ImportPaths) == 0 {
		return &crawfish.SourceResolver{}
	}
	// Paths outside the import paths are still found relative to the
	// working directory.
	return crawfish.CompositeResolver{
		&crawfish.SourceResolver{ImportPaths: cfg.ImportPaths},
		&crawfish.SourceResolver{},
	}
}

func colorize(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
