// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"math"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/strictjson/ast"
	"github.com/google/go-cmp/cmp"
)

func TestValueJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},
		{ast.Bool(true), "true"},
		{ast.Bool(false), "false"},
		{ast.Number("-3.25e1"), "-3.25e1"},
		{ast.String(`a\tb`), `"a\tb"`},
		{ast.Quote("a\tb"), `"a\tb"`},
		{ast.Array{}, "[]"},
		{ast.Object{}, "{}"},
		{ast.Array{ast.Number("1"), ast.Null{}, ast.Array{}}, "[1,null,[]]"},
		{ast.Object{
			ast.Field("x", 1),
			ast.Field("y", ast.Array{ast.Bool(false)}),
			ast.Field(`"q"`, "v"),
		}, `{"x":1,"y":[false],"\"q\"":"v"}`},
	}
	for _, test := range tests {
		if got := test.input.JSON(); got != test.want {
			t.Errorf("JSON %v: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  ast.Kind
		name  string
	}{
		{ast.Null{}, ast.NullKind, "null"},
		{ast.Bool(false), ast.BoolKind, "bool"},
		{ast.Number("0"), ast.NumberKind, "number"},
		{ast.String(""), ast.StringKind, "string"},
		{ast.Array(nil), ast.ArrayKind, "array"},
		{ast.Object(nil), ast.ObjectKind, "object"},
	}
	for _, test := range tests {
		if got := test.input.Kind(); got != test.want {
			t.Errorf("Kind %v: got %v, want %v", test.input, got, test.want)
		}
		if got := test.want.String(); got != test.name {
			t.Errorf("Kind name: got %q, want %q", got, test.name)
		}
	}
	if got := ast.Kind(100).String(); got != "invalid" {
		t.Errorf("Kind(100): got %q, want invalid", got)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{nil, ast.Null{}},
		{true, ast.Bool(true)},
		{-15, ast.Number("-15")},
		{int32(7), ast.Number("7")},
		{int64(math.MinInt64), ast.Number("-9223372036854775808")},
		{uint(3), ast.Number("3")},
		{uint32(4), ast.Number("4")},
		{uint64(math.MaxUint64), ast.Number("18446744073709551615")},
		{float32(0.5), ast.Number("0.5")},
		{3.25, ast.Number("3.25")},
		{1e21, ast.Number("1e+21")},
		{"a\nb", ast.String(`a\nb`)},
		{ast.Array{}, ast.Array{}},
	}
	for _, test := range tests {
		got := ast.ToValue(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ToValue(%#v) (-want, +got):\n%s", test.input, diff)
		}
	}

	t.Run("Panics", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

func TestNumber(t *testing.T) {
	tests := []struct {
		input ast.Number
		isInt bool
		f     float64
	}{
		{"0", true, 0},
		{"-12", true, -12},
		{"1.5", false, 1.5},
		{"2e3", false, 2000},
		{"-4.5E-1", false, -0.45},
	}
	for _, test := range tests {
		if got := test.input.IsInt(); got != test.isInt {
			t.Errorf("IsInt(%s): got %v, want %v", test.input, got, test.isInt)
		}
		if got, err := test.input.Float64(); err != nil || got != test.f {
			t.Errorf("Float64(%s): got %v, %v; want %v", test.input, got, err, test.f)
		}
		if test.isInt {
			if got, err := test.input.Int64(); err != nil || float64(got) != test.f {
				t.Errorf("Int64(%s): got %v, %v; want %v", test.input, got, err, test.f)
			}
		}
	}
}

func TestObjectFind(t *testing.T) {
	obj := ast.Object{
		ast.Field("a", 1),
		ast.Field("b\n", 2),
		{Key: `ab`, Value: ast.Number("3")},
	}
	tests := []struct {
		name string
		want ast.Value
	}{
		{"a", ast.Number("1")},
		{"b\n", ast.Number("2")},
		{`b\n`, ast.Number("2")},
		{"ab", ast.Number("3")},
		{"c", nil},
		{"", nil},
	}
	for _, test := range tests {
		m := obj.Find(test.name)
		if test.want == nil {
			if m != nil {
				t.Errorf("Find(%q): got %v, want nil", test.name, m)
			}
			continue
		}
		if m == nil {
			t.Errorf("Find(%q): got nil, want %v", test.name, test.want)
		} else if !ast.Equal(m.Value, test.want) {
			t.Errorf("Find(%q): got %v, want %v", test.name, m.Value, test.want)
		}
	}
	if got, want := obj[1].Name(), "b\n"; got != want {
		t.Errorf("Name: got %q, want %q", got, want)
	}
	if got, want := obj.Len(), 3; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}

func TestStringUnquote(t *testing.T) {
	tests := []struct {
		input ast.String
		want  string
	}{
		{``, ""},
		{`plain`, "plain"},
		{`\"\\\/\b\f\n\r\t`, "\"\\/\b\f\n\r\t"},
		{`été`, "été"},
		{`\ud83d\ude00`, "\U0001F600"},
	}
	for _, test := range tests {
		if got := test.input.Unquote(); got != test.want {
			t.Errorf("Unquote(%#q): got %q, want %q", test.input, got, test.want)
		}
	}
	mtest.MustPanic(t, func() { ast.String(`bad\`).Unquote() })
}

func TestEqual(t *testing.T) {
	a := ast.Object{
		ast.Field("list", ast.Array{ast.Number("1"), ast.Null{}}),
		ast.Field("ok", true),
	}
	tests := []struct {
		a, b ast.Value
		want bool
	}{
		{nil, nil, true},
		{ast.Null{}, nil, false},
		{ast.Null{}, ast.Null{}, true},
		{ast.Bool(true), ast.Bool(false), false},
		{ast.Number("1.0"), ast.Number("1.0"), true},
		{ast.Number("1.0"), ast.Number("1"), false},
		{ast.String("x"), ast.Number("1"), false},
		{ast.Array{}, ast.Array(nil), true},
		{ast.Array{ast.Null{}}, ast.Array{}, false},
		{a, a, true},
		{a, ast.Object{ast.Field("ok", true), a[0]}, false},
		{a, ast.Object{a[0], ast.Field("ok", false)}, false},
		{a, ast.Object{a[0], ast.Field("OK", true)}, false},
	}
	for _, test := range tests {
		if got := ast.Equal(test.a, test.b); got != test.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", test.a, test.b, got, test.want)
		}
	}
}
