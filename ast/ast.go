// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for JSON values, and a strict
// recursive-descent parser that constructs trees from JSON tokens.
//
// Leaf values keep the text of their source: a Number holds the literal
// exactly as written, and a String holds its payload with escape sequences
// intact. Serializing a parsed tree with JSON reproduces the keys, strings and
// numbers of the input, in the same order.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/strictjson/internal/escape"
	"go4.org/mem"
)

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value. The concrete type of a Value is one of
// Null, Bool, Number, String, Array, or Object.
type Value interface {
	// Kind reports which variant the value is.
	Kind() Kind

	// JSON renders the value as compact JSON text.
	JSON() string

	// String returns a short human-readable summary of the value.
	String() string

	isValue()
}

// Null represents the null constant.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) JSON() string   { return "null" }
func (Null) String() string { return "Null" }
func (Null) isValue()       {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind       { return BoolKind }
func (b Bool) JSON() string   { return strconv.FormatBool(bool(b)) }
func (b Bool) String() string { return fmt.Sprintf("Bool(%v)", bool(b)) }
func (Bool) isValue()         {}

// A Number is a numeric literal, holding the text of the literal exactly as
// it appeared in the source.
type Number string

func (Number) Kind() Kind       { return NumberKind }
func (n Number) JSON() string   { return string(n) }
func (n Number) String() string { return fmt.Sprintf("Number(%s)", string(n)) }
func (Number) isValue()         {}

// IsInt reports whether n is written as an integer, with no fraction or
// exponent.
func (n Number) IsInt() bool { return !strings.ContainsAny(string(n), ".eE") }

// Int64 parses n as a signed integer.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

// Float64 parses n as a floating-point value.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// A String is a string value. Its contents are the payload of the string as
// written, without quotation marks and with escape sequences intact.
type String string

func (String) Kind() Kind       { return StringKind }
func (s String) JSON() string   { return `"` + string(s) + `"` }
func (s String) String() string { return fmt.Sprintf("String(%q)", string(s)) }
func (String) isValue()         {}

// Quote returns a String whose decoded contents are s.
func Quote(s string) String { return String(escape.Quote(nil, mem.S(s))) }

// Unquote returns the decoded contents of s. It panics if s contains an
// incomplete escape sequence, which the parser never produces.
func (s String) Unquote() string {
	dec, err := escape.Unquote(mem.S(string(s)))
	if err != nil {
		panic(err)
	}
	return dec
}

// An Array is a sequence of values.
type Array []Value

func (Array) Kind() Kind       { return ArrayKind }
func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }
func (Array) isValue()         {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a[0].JSON())
	for _, elt := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// An Object is a collection of key-value members, in source order.
type Object []*Member

func (Object) Kind() Kind       { return ObjectKind }
func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }
func (Object) isValue()         {}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o whose decoded key equals name, or nil.
func (o Object) Find(name string) *Member {
	for _, m := range o {
		if m.Key == name || m.Name() == name {
			return m
		}
	}
	return nil
}

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o[0].JSON())
	for _, m := range o[1:] {
		sb.WriteByte(',')
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object. The Key is
// the text of the key as written, without quotation marks.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given decoded key name. The
// value is converted as by ToValue.
func Field(name string, value any) *Member {
	return &Member{Key: string(Quote(name)), Value: ToValue(value)}
}

// Name returns the decoded key of m.
func (m *Member) Name() string { return String(m.Key).Unquote() }

// JSON renders m as a "key":value pair.
func (m *Member) JSON() string { return `"` + m.Key + `":` + m.Value.JSON() }

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// ToValue converts a Go value into a JSON Value. It accepts nil, bool,
// signed and unsigned integers, float32, float64, string, and Value. It
// panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Number(strconv.Itoa(t))
	case int32:
		return Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case uint:
		return Number(strconv.FormatUint(uint64(t), 10))
	case uint32:
		return Number(strconv.FormatUint(uint64(t), 10))
	case uint64:
		return Number(strconv.FormatUint(t, 10))
	case float32:
		return Number(strconv.FormatFloat(float64(t), 'g', -1, 32))
	case float64:
		return Number(strconv.FormatFloat(t, 'g', -1, 64))
	case string:
		return Quote(t)
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}

// Equal reports whether a and b are structurally equal: the same variants,
// with the same text at the leaves and the same members in the same order.
func Equal(a, b Value) bool {
	switch at := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bt, ok := b.(Bool)
		return ok && at == bt
	case Number:
		bt, ok := b.(Number)
		return ok && at == bt
	case String:
		bt, ok := b.(String)
		return ok && at == bt
	case Array:
		bt, ok := b.(Array)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !Equal(at[i], bt[i]) {
				return false
			}
		}
		return true
	case Object:
		bt, ok := b.(Object)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if at[i].Key != bt[i].Key || !Equal(at[i].Value, bt[i].Value) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		panic(fmt.Sprintf("unknown value type %T", a))
	}
}
