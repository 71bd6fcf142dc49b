// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jpath parses the JSONPath expressions that select a single value,
// and converts them into steps for a cursor.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." WORD
  step = "[" INDEX "]"
  step = "[" "'" QTEXT "'" "]"

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`

The operators of full JSONPath that can select more than one value
(.., *, slices, unions, filters and scripts) are reported as errors.
*/

// An Expr is a parsed path expression.
type Expr []Step

// Parse parses s as a path expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var out Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", len(s)-len(t), err)
		}
		out = append(out, step)
		t = rest
	}
	return out, nil
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		switch s.Op {
		case Member:
			fmt.Fprint(&buf, ".", s.Arg)
		case QMember:
			fmt.Fprintf(&buf, "['%s']", s.Arg)
		case Index:
			fmt.Fprintf(&buf, "[%s]", s.Arg)
		}
	}
	return buf.String()
}

// Path returns the steps of e as path elements for cursor.Cursor.Down.
// Members become strings and indexes become ints.
func (e Expr) Path() []any {
	out := make([]any, len(e))
	for i, s := range e {
		if s.Op == Index {
			out[i], _ = strconv.Atoi(s.Arg) // validated by Parse
		} else {
			out[i] = s.Arg
		}
	}
	return out
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if strings.HasPrefix(s, "..") {
		return Step{}, s, errors.New("recursive descent is not supported")
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		if strings.HasPrefix(t, "*") {
			return Step{}, s, errors.New("wildcard is not supported")
		}
		m := wordRE.FindStringSubmatch(t)
		if m == nil {
			return Step{}, s, errors.New("invalid .name")
		}
		return Step{Op: Member, Arg: m[1]}, t[len(m[0]):], nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		var step Step
		if m := quoteRE.FindStringSubmatch(t); m != nil {
			step, t = Step{Op: QMember, Arg: m[1]}, t[len(m[0]):]
		} else if m := indexRE.FindStringSubmatch(t); m != nil {
			if _, err := strconv.Atoi(m[1]); err != nil {
				return Step{}, s, fmt.Errorf("invalid index: %w", err)
			}
			step, t = Step{Op: Index, Arg: m[1]}, t[len(m[0]):]
		} else {
			return Step{}, s, fmt.Errorf("unsupported selector %q", t)
		}
		u, ok := strings.CutPrefix(t, "]")
		if !ok {
			return Step{}, t, errors.New("missing close bracket")
		}
		return step, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Member  Op = iota + 1 // member lookup by word (.name)
	QMember               // member lookup by quoted name (['name'])
	Index                 // array or object index ([n])
)

var opText = map[Op]string{
	Member:  "member",
	QMember: "qmember",
	Index:   "index",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return "invalid"
}

// A Step is a single step of a path expression.
type Step struct {
	Op  Op
	Arg string
}
