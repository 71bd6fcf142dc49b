// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package config loads settings for the jsonlint tool from a configuration
// file. The file is written in HuJSON, which is JSON extended with comments
// and trailing commas:
//
//	{
//	  // Check these files in addition to .json.
//	  "extensions": [".json", ".jsonc"],
//	  "recursive": true,
//	  "color": false,
//	  "tokens": false,
//	  "maxDepth": 64,
//	  "format": "tree",  // tree, pretty, json, or none
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/creachadair/strictjson/ast"
	"github.com/tailscale/hujson"
)

// FileName is the name of the configuration file searched for by Find.
const FileName = ".jsonlint.hujson"

// Formats are the valid values of Config.Format.
var Formats = []string{"tree", "pretty", "json", "none"}

// Config holds the settings for a run of the tool.
type Config struct {
	Extensions []string // file extensions to select from directories
	Recursive  bool     // descend into subdirectories
	Color      bool     // colorize output
	ShowTokens bool     // print the token sequence of each file
	MaxDepth   int      // nesting limit for the parser; 0 means the default
	Format     string   // how to print a parsed value; one of Formats
}

// Default returns a Config with default settings.
func Default() *Config {
	return &Config{
		Extensions: []string{".json"},
		ShowTokens: true,
		Format:     "tree",
	}
}

// Validate reports an error if c has invalid settings.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max depth %d", c.MaxDepth)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format %q (want one of %q)", c.Format, Formats)
	}
	if len(c.Extensions) == 0 {
		return errors.New("no file extensions")
	}
	return nil
}

// Load reads the configuration file at path. Settings not mentioned in the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse parses configuration settings from HuJSON text. Settings not
// mentioned in data keep their default values.
func Parse(data []byte) (*Config, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	v, err := ast.ParseString(string(std))
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	obj, ok := v.(ast.Object)
	if !ok {
		return nil, fmt.Errorf("config is an %v, not an object", v.Kind())
	}

	cfg := Default()
	for _, m := range obj {
		var err error
		switch name := m.Name(); name {
		case "extensions":
			cfg.Extensions, err = stringList(m.Value)
		case "recursive":
			cfg.Recursive, err = boolValue(m.Value)
		case "color":
			cfg.Color, err = boolValue(m.Value)
		case "tokens":
			cfg.ShowTokens, err = boolValue(m.Value)
		case "maxDepth":
			cfg.MaxDepth, err = intValue(m.Value)
		case "format":
			cfg.Format, err = stringValue(m.Value)
		default:
			err = errors.New("unknown setting")
		}
		if err != nil {
			return nil, fmt.Errorf("setting %q: %w", m.Name(), err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find searches dir and its parent directories for a file named FileName,
// and returns the path of the first one found. It returns "" if none exists.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, FileName)
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func boolValue(v ast.Value) (bool, error) {
	b, ok := v.(ast.Bool)
	if !ok {
		return false, fmt.Errorf("got %v, want bool", v.Kind())
	}
	return bool(b), nil
}

func intValue(v ast.Value) (int, error) {
	n, ok := v.(ast.Number)
	if !ok || !n.IsInt() {
		return 0, fmt.Errorf("got %v, want integer", v)
	}
	z, err := strconv.ParseInt(string(n), 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("integer %s out of range", string(n))
	}
	return int(z), nil
}

func stringValue(v ast.Value) (string, error) {
	s, ok := v.(ast.String)
	if !ok {
		return "", fmt.Errorf("got %v, want string", v.Kind())
	}
	return s.Unquote(), nil
}

func stringList(v ast.Value) ([]string, error) {
	a, ok := v.(ast.Array)
	if !ok {
		return nil, fmt.Errorf("got %v, want array", v.Kind())
	}
	out := make([]string, len(a))
	for i, elt := range a {
		s, err := stringValue(elt)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}
