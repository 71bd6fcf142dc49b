// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jsonlint checks JSON files against a strict grammar and reports the
// tokens, syntax tree, or first error of each.
//
// Usage:
//
//	jsonlint [flags] <path> ...
//
// Each path names a file or a directory. For a directory, the files in it
// with a selected extension (by default .json) are checked. The exit status
// is 1 if any file could not be read or parsed.
//
// Settings are read from the file named by --config, or else from the first
// .jsonlint.hujson file found in the current directory or one of its parents.
// Flags given on the command line override the settings from the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/creachadair/strictjson"
	"github.com/creachadair/strictjson/ast"
	"github.com/creachadair/strictjson/ast/cursor"
	"github.com/creachadair/strictjson/internal/config"
	"github.com/creachadair/strictjson/internal/render"
	"github.com/creachadair/strictjson/internal/source"
	"github.com/creachadair/strictjson/jpath"
	"github.com/golang/glog"
)

// Flags without defaults are applied over the config only when set.
type options struct {
	Paths []string `arg:"" name:"path" help:"Files or directories to check."`

	Config    string   `help:"Read settings from this file." placeholder:"FILE"`
	Color     bool     `help:"Colorize output." negatable:""`
	Tokens    bool     `help:"Print the tokens of each file." negatable:""`
	Format    string   `help:"Print parsed values as tree, pretty, json, or none." placeholder:"FORMAT"`
	Recursive bool     `help:"Descend into subdirectories." short:"r" negatable:""`
	MaxDepth  int      `help:"Maximum nesting depth of arrays and objects." placeholder:"N"`
	Ext       []string `help:"File extensions to select from directories." sep:","`
	Path      string   `help:"Print only the value at this JSONPath, for example $.key[0]." placeholder:"EXPR"`
	Select    []string `help:"Print only the value at this step (a key or index); repeatable." placeholder:"STEP" sep:"none"`
	Verbose   int      `help:"Increase log verbosity." short:"v" type:"counter"`
}

func main() { os.Exit(run(os.Args[1:], os.Stdout, os.Stderr)) }

// run executes the program with the given arguments and returns its exit
// status.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser, err := kong.New(&opts,
		kong.Name("jsonlint"),
		kong.Description("Check JSON files against a strict grammar."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "jsonlint: %v\n", err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			perr.Context.PrintUsage(true)
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stderr, "jsonlint: %v\n", err)
		return 2
	}

	setupLogging(opts.Verbose)
	defer glog.Flush()

	cfg, err := loadConfig(kctx, &opts)
	if err != nil {
		glog.Errorf("Loading config: %v", err)
		fmt.Fprintf(stderr, "jsonlint: %v\n", err)
		return 2
	}
	sel, err := selectPath(opts.Path, opts.Select)
	if err != nil {
		fmt.Fprintf(stderr, "jsonlint: invalid path: %v\n", err)
		return 2
	}

	out := render.Printer{W: stdout, Color: cfg.Color}
	errOut := render.Printer{W: stderr, Color: cfg.Color}

	var nfiles, nfail int
	for _, path := range opts.Paths {
		files, err := source.Find(path, source.FindOptions{
			Recursive:  cfg.Recursive,
			Extensions: cfg.Extensions,
		})
		if err != nil {
			glog.Errorf("Finding inputs: %v", err)
			errOut.Error(err)
			nfail++
			continue
		}
		glog.V(1).Infof("Found %d input files in %q", len(files), path)
		for _, file := range files {
			nfiles++
			if !checkFile(out, errOut, file, cfg, sel) {
				nfail++
			}
		}
	}
	glog.V(1).Infof("Checked %d files, %d failed", nfiles, nfail)
	if nfail != 0 {
		return 1
	}
	return 0
}

// checkFile reports on the file at path and reports whether it parsed. A
// file whose report could not be written also counts as a failure.
func checkFile(out, errOut render.Printer, path string, cfg *config.Config, sel []any) (ok bool) {
	var werr error
	check := func(err error) {
		if werr == nil {
			werr = err
		}
	}
	defer func() {
		check(out.Separator())
		if werr != nil {
			glog.Errorf("Writing report for %q: %v", path, werr)
			ok = false
		}
	}()
	check(out.Header(path))

	text, err := source.ReadFile(path)
	if err != nil {
		glog.Errorf("Reading %q: %v", path, err)
		check(errOut.Error(err))
		return false
	}

	start := time.Now()
	toks := strictjson.Tokenize(text)
	if cfg.ShowTokens {
		check(out.Tokens(toks))
	}
	v, err := ast.Options{MaxDepth: cfg.MaxDepth}.Parse(toks)
	glog.V(2).Infof("%s: %d bytes, %d tokens, parsed in %v", path, len(text), len(toks), time.Since(start))
	if err != nil {
		glog.V(1).Infof("%s: %v", path, err)
		check(out.Failed())
		check(errOut.Error(err))
		return false
	}

	if len(sel) != 0 {
		c := cursor.New(v).Down(sel...)
		if err := c.Err(); err != nil {
			check(errOut.Error(fmt.Errorf("select: %w", err)))
			return false
		}
		v = c.Value()
	}

	switch cfg.Format {
	case "tree":
		check(out.Tree(v))
	case "pretty":
		check(out.Pretty(v))
	case "json":
		check(out.Compact(v))
	}
	return true
}

// loadConfig reads the applicable configuration file, if any, and applies the
// flags that were set on the command line.
func loadConfig(kctx *kong.Context, opts *options) (*config.Config, error) {
	cfg := config.Default()
	path := opts.Config
	if path == "" {
		path = config.Find(".")
	}
	if path != "" {
		glog.V(1).Infof("Reading config from %q", path)
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	for _, f := range kctx.Flags() {
		if !f.Set {
			continue
		}
		switch f.Name {
		case "color":
			cfg.Color = opts.Color
		case "tokens":
			cfg.ShowTokens = opts.Tokens
		case "format":
			cfg.Format = opts.Format
		case "recursive":
			cfg.Recursive = opts.Recursive
		case "max-depth":
			cfg.MaxDepth = opts.MaxDepth
		case "ext":
			cfg.Extensions = opts.Ext
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// selectPath converts the path and select flags into cursor path elements.
// The steps of expr, if any, come first. A step that is a decimal integer is
// an index; any other step is an object key.
func selectPath(expr string, steps []string) ([]any, error) {
	var path []any
	if expr != "" {
		e, err := jpath.Parse(expr)
		if err != nil {
			return nil, err
		}
		path = e.Path()
	}
	for _, s := range steps {
		if n, err := strconv.Atoi(s); err == nil {
			path = append(path, n)
		} else {
			path = append(path, s)
		}
	}
	return path, nil
}

func setupLogging(verbose int) {
	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(verbose))
	if !flag.Parsed() {
		flag.CommandLine.Parse(nil)
	}
}
