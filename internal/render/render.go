// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package render writes human-readable reports of tokens, syntax trees and
// parse errors.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/strictjson"
	"github.com/creachadair/strictjson/ast"
	"github.com/fatih/color"
)

// A Printer writes reports to W. If Color is true, the output includes ANSI
// color sequences; otherwise it is plain text. The color setting of a Printer
// does not depend on the terminal or on the environment.
type Printer struct {
	W     io.Writer
	Color bool
}

// palette holds the colors used by a Printer for one report.
type palette struct {
	banner, alert              *color.Color
	index, pos, kind           *color.Color
	label, str, num, flag, nul *color.Color
	container                  *color.Color
}

func (p Printer) palette() palette {
	pal := palette{
		banner:    color.New(color.BgBlue, color.FgHiWhite),
		alert:     color.New(color.BgRed, color.FgHiWhite),
		index:     color.New(color.FgCyan),
		pos:       color.New(color.FgYellow),
		kind:      color.New(color.FgGreen),
		label:     color.New(color.FgYellow),
		str:       color.New(color.FgGreen),
		num:       color.New(color.FgRed),
		flag:      color.New(color.FgCyan),
		nul:       color.New(color.FgCyan),
		container: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{
		pal.banner, pal.alert, pal.index, pal.pos, pal.kind,
		pal.label, pal.str, pal.num, pal.flag, pal.nul, pal.container,
	} {
		if p.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return pal
}

// Header writes the banner that introduces the report for the named file.
func (p Printer) Header(path string) error {
	return p.emit(func(w *bufio.Writer, pal palette) {
		fmt.Fprint(w, pal.banner.Sprintf("===> Testing file: %s", path), "\n\n")
	})
}

// Separator writes the rule that ends the report for a file.
func (p Printer) Separator() error {
	_, err := io.WriteString(p.W, "\n-----\n\n")
	return err
}

// Tokens writes a count of toks followed by one line per token.
func (p Printer) Tokens(toks []strictjson.Token) error {
	return p.emit(func(w *bufio.Writer, pal palette) {
		fmt.Fprintf(w, "Total Tokens: %d\n", len(toks))
		for i, tok := range toks {
			fmt.Fprintf(w, "%s [%s:%s] %s | Value: '%s'\n",
				pal.index.Sprintf("Token #%d:", i+1),
				pal.pos.Sprintf("L%d", tok.Line),
				pal.pos.Sprintf("C%d", tok.Column),
				pal.kind.Sprintf("%-10s", tok.Kind),
				tok.Text,
			)
		}
	})
}

// Tree writes an indented outline of v, one value per line, preceded by a
// title line.
func (p Printer) Tree(v ast.Value) error {
	return p.emit(func(w *bufio.Writer, pal palette) {
		fmt.Fprint(w, "\n", pal.banner.Sprint("=> Parsed JSON AST:"), "\n\n")
		pal.treeValue(w, v, "")
	})
}

func (pal palette) treeValue(w *bufio.Writer, v ast.Value, indent string) {
	const step = "  "
	switch t := v.(type) {
	case ast.Null:
		fmt.Fprintln(w, pal.nul.Sprint("NULL"))
	case ast.Bool:
		fmt.Fprintf(w, "%s(%s)\n", pal.num.Sprint("BOOLEAN"), pal.flag.Sprint(bool(t)))
	case ast.Number:
		fmt.Fprintf(w, "%s(%s)\n", pal.label.Sprint("NUMBER"), pal.num.Sprint(string(t)))
	case ast.String:
		fmt.Fprintf(w, "%s(%s)\n", pal.label.Sprint("STRING"), pal.str.Sprint(t.JSON()))
	case ast.Array:
		fmt.Fprint(w, pal.container.Sprint("ARRAY"), " [")
		if len(t) != 0 {
			w.WriteByte('\n')
			for _, elt := range t {
				w.WriteString(indent + step)
				pal.treeValue(w, elt, indent+step)
			}
			w.WriteString(indent)
		}
		w.WriteString("]\n")
	case ast.Object:
		fmt.Fprint(w, pal.container.Sprint("OBJECT"), " {")
		if len(t) != 0 {
			w.WriteByte('\n')
			for _, m := range t {
				fmt.Fprintf(w, "%s%s\"%s\": ", indent, step, m.Key)
				pal.treeValue(w, m.Value, indent+step)
			}
			w.WriteString(indent)
		}
		w.WriteString("}\n")
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

// Failed writes the notice that a file did not parse.
func (p Printer) Failed() error {
	_, err := io.WriteString(p.W, "\nParsing failed!\n")
	return err
}

// Error writes a diagnostic for err. If err is or wraps a ParseError, the
// diagnostic includes its location and the offending token.
func (p Printer) Error(err error) error {
	return p.emit(func(w *bufio.Writer, pal palette) {
		var perr *strictjson.ParseError
		if !errors.As(err, &perr) {
			fmt.Fprintln(w, pal.alert.Sprintf("Error: %v", err))
			return
		}
		fmt.Fprintln(w, pal.alert.Sprintf("Error: %s (line %d, column %d)",
			perr.Message, perr.Line, perr.Column))
		if tok := perr.Token; tok.Kind != strictjson.EOF && tok.Text != "" {
			fmt.Fprintf(w, "  at %s '%s'\n", pal.kind.Sprint(tok.Kind), tok.Text)
		}
	})
}

// Compact writes v as a single line of compact JSON.
func (p Printer) Compact(v ast.Value) error {
	_, err := io.WriteString(p.W, v.JSON()+"\n")
	return err
}

// emit runs f with a buffered writer over p.W and reports the first error
// from writing its output.
func (p Printer) emit(f func(*bufio.Writer, palette)) error {
	w := bufio.NewWriter(p.W)
	f(w, p.palette())
	return w.Flush()
}
