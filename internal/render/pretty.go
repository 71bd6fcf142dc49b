// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/creachadair/strictjson/ast"
)

const (
	prettyIndent = "  "
	maxLineItems = 3
)

// Pretty writes v as indented JSON text. Short arrays and objects are kept on
// one line, and the values of simple object members are aligned in a column.
// Pretty output is never colored.
func (p Printer) Pretty(v ast.Value) error {
	tw := tabwriter.NewWriter(p.W, 4, 4, 1, ' ', 0)
	formatValue(tw, v, "")
	io.WriteString(tw, "\n")
	return tw.Flush()
}

func formatValue(w *tabwriter.Writer, v ast.Value, indent string) {
	switch t := v.(type) {
	case ast.Null, ast.Bool, ast.Number, ast.String:
		io.WriteString(w, t.JSON())
	case ast.Array:
		formatArray(w, t, indent)
	case ast.Object:
		formatObject(w, t, indent)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func formatArray(w *tabwriter.Writer, a ast.Array, indent string) {
	if isBoring(a) {
		io.WriteString(w, "[")
		for i, v := range a {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			formatValue(w, v, "")
		}
		io.WriteString(w, "]")
		return
	}

	io.WriteString(w, "[\n")
	adent := indent + prettyIndent
	for i, v := range a {
		io.WriteString(w, adent)
		formatValue(w, v, adent)
		io.WriteString(w, sep(i, len(a)))
	}
	w.Flush()
	fmt.Fprint(w, indent, "]")
}

func formatObject(w *tabwriter.Writer, o ast.Object, indent string) {
	if isBoring(o) {
		io.WriteString(w, "{")
		for _, m := range o {
			fmt.Fprintf(w, `"%s": `, m.Key)
			formatValue(w, m.Value, "")
		}
		io.WriteString(w, "}")
		return
	}

	io.WriteString(w, "{\n")
	mdent := indent + prettyIndent
	for i, m := range o {
		fmt.Fprintf(w, `%s"%s"%s`, mdent, m.Key, objSep(m.Value))
		formatValue(w, m.Value, mdent)
		io.WriteString(w, sep(i, len(o)))
	}
	w.Flush()
	fmt.Fprint(w, indent, "}")
}

// sep returns the text following element i of n in a multi-line container.
func sep(i, n int) string {
	if i+1 < n {
		return ",\n"
	}
	return "\n"
}

// objSep returns a key-value separator for the given value. Boring values
// are aligned in columns; others are stapled to the key.
func objSep(v ast.Value) string {
	if isBoring(v) {
		return ":\t"
	}
	return ": "
}

// isBoring reports whether v is simple enough to be rendered on one line.
func isBoring(v ast.Value) bool {
	switch t := v.(type) {
	case ast.Array:
		if len(t) > maxLineItems {
			return false
		}
		for _, elt := range t {
			if !isBoring(elt) {
				return false
			}
		}
		return true
	case ast.Object:
		if len(t) == 1 {
			return isBoring(t[0].Value)
		}
		return len(t) == 0
	default:
		return true
	}
}
