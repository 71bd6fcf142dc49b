// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package source locates and reads JSON input files.
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions are the file extensions selected when none are given.
var DefaultExtensions = []string{".json"}

// ReadFile reads the complete contents of the named file.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// HasExtension reports whether name ends with one of the extensions in exts.
// If exts is empty, DefaultExtensions is used. Extensions are compared
// without regard to case, and a leading "." is optional.
func HasExtension(name string, exts []string) bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// FindOptions control the behavior of Find.
type FindOptions struct {
	// Recursive, if true, causes Find to descend into subdirectories.
	Recursive bool

	// Extensions are the file extensions to select from a directory.
	// If empty, DefaultExtensions is used.
	Extensions []string
}

// Find returns the input files named by path. If path is a regular file, it
// is returned as given, regardless of its extension. If path is a directory,
// Find returns the regular files it contains whose names have one of the
// selected extensions, in lexicographic order. Files and directories whose
// names begin with "." are skipped.
func Find(path string, opts FindOptions) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("find input: %w", err)
	}
	if fi.Mode().IsRegular() {
		return []string{path}, nil
	} else if !fi.IsDir() {
		return nil, fmt.Errorf("find input: %q is not a file or directory", path)
	}

	var out []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == path {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if !opts.Recursive {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && HasExtension(d.Name(), opts.Extensions) {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find input: %w", err)
	}
	slices.Sort(out)
	return out, nil
}
