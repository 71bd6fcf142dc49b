// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a parsed JSON value.
package cursor

import (
	"fmt"

	"github.com/creachadair/strictjson/ast"
)

// Path traverses a sequential path into the structure of v, with path
// elements as documented for Cursor.Down, and returns the value reached. It
// reports an error if the path cannot be followed or if the value reached
// does not have type T.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var zero T
	if err := c.Err(); err != nil {
		return zero, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("value is %v, not %T", kindOf(c.Value()), zero)
	}
	return out, nil
}

// A Cursor is a position within the structure of a Value.
type Cursor struct {
	org ast.Value
	stk []ast.Value
	err error
}

// New constructs a Cursor positioned at origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the value c was constructed with.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value returns the value at the current position of c.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path returns the values visited from the origin to the current position,
// inclusive.
func (c *Cursor) Path() []ast.Value {
	return append([]ast.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the parent of its current position, if it has one, and
// returns c.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset moves c back to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down follows path from the current position of c and returns c. If some
// element of the path cannot be followed, Down stops at the last value it
// reached and records an error, which the caller can retrieve with Err.
//
// A string element selects the member of an object whose decoded key equals
// the string. An int element selects an element of an array or the value of
// a member of an object by position; negative positions count backward from
// the end, so -1 is the last. A function element with signature
//
//	func(ast.Value) (ast.Value, error)
//
// is called with the current value, and its result becomes the next value.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Value()
	for i, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(ast.Object)
			if !ok {
				return c.fail(i, elt, fmt.Errorf("cannot select key from %v", kindOf(cur)))
			}
			m := obj.Find(t)
			if m == nil {
				return c.fail(i, elt, fmt.Errorf("key %q not found", t))
			}
			cur = c.push(m.Value)

		case int:
			switch e := cur.(type) {
			case ast.Array:
				pos, ok := fixBound(len(e), t)
				if !ok {
					return c.fail(i, elt, fmt.Errorf("index %d out of range for array of length %d", t, len(e)))
				}
				cur = c.push(e[pos])
			case ast.Object:
				pos, ok := fixBound(len(e), t)
				if !ok {
					return c.fail(i, elt, fmt.Errorf("index %d out of range for object of length %d", t, len(e)))
				}
				cur = c.push(e[pos].Value)
			default:
				return c.fail(i, elt, fmt.Errorf("cannot index %v", kindOf(cur)))
			}

		case func(ast.Value) (ast.Value, error):
			next, err := t(cur)
			if err != nil {
				return c.fail(i, "func", err)
			}
			cur = c.push(next)

		default:
			return c.fail(i, elt, fmt.Errorf("invalid path element %T", elt))
		}
	}
	return c
}

// PathError is the concrete type of errors recorded by Cursor.Down.
type PathError struct {
	Step int // offset of the failing element in the path
	Elem any // the failing path element
	Err  error
}

func (p *PathError) Error() string {
	return fmt.Sprintf("step %d (%v): %v", p.Step, p.Elem, p.Err)
}

func (p *PathError) Unwrap() error { return p.Err }

func (c *Cursor) push(v ast.Value) ast.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) fail(step int, elt any, err error) *Cursor {
	c.err = &PathError{Step: step, Elem: elt, Err: err}
	return c
}

func kindOf(v ast.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
