// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package strictjson_test

import (
	"testing"

	"github.com/creachadair/strictjson"
	"github.com/google/go-cmp/cmp"
)

func kinds(toks []strictjson.Token) []strictjson.Kind {
	out := make([]strictjson.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenize(t *testing.T) {
	const (
		EOF    = strictjson.EOF
		Str    = strictjson.String
		Num    = strictjson.Number
		Inval  = strictjson.Invalid
		LBrace = strictjson.LBrace
		RBrace = strictjson.RBrace
		LBrack = strictjson.LBracket
		RBrack = strictjson.RBracket
		Colon  = strictjson.Colon
		Comma  = strictjson.Comma
	)
	tests := []struct {
		input string
		want  []strictjson.Kind
	}{
		// Empty inputs
		{"", []strictjson.Kind{EOF}},
		{"  ", []strictjson.Kind{EOF}},
		{"\n\n  \n", []strictjson.Kind{EOF}},
		{"\t  \r\n \t  \r\n", []strictjson.Kind{EOF}},

		// Constants
		{"true false null", []strictjson.Kind{strictjson.True, strictjson.False, strictjson.Null, EOF}},

		// Punctuation
		{"{ [ ] } , : .", []strictjson.Kind{
			LBrace, LBrack, RBrack, RBrace, Comma, Colon, strictjson.Period, EOF,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []strictjson.Kind{Str, Str, Str, EOF}},
		{`"\"\\\/\b\f\n\r\t"`, []strictjson.Kind{Str, EOF}},
		{`"\u0000\u01fc\uAA9c"`, []strictjson.Kind{Str, EOF}},
		{`"héllo, 世界"`, []strictjson.Kind{Str, EOF}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100 1e5`, []strictjson.Kind{
			Num, Num, Num, Num, Num, Num, Num, Num, EOF,
		}},

		// Mixed types
		{`{"a": true, "b":[null, 1, 0.5]}`, []strictjson.Kind{
			LBrace,
			Str, Colon, strictjson.True, Comma,
			Str, Colon,
			LBrack,
			strictjson.Null, Comma, Num, Comma, Num,
			RBrack,
			RBrace,
			EOF,
		}},

		// Tokenizing continues after invalid input.
		{`01`, []strictjson.Kind{strictjson.InvalidLeadingZero, Num, EOF}},
		{`0x1`, []strictjson.Kind{strictjson.InvalidHex, Inval, Num, EOF}},
		{`1.`, []strictjson.Kind{strictjson.InvalidEndOfNumber, EOF}},
		{`1e`, []strictjson.Kind{strictjson.InvalidEndOfNumber, EOF}},
		{`1e+`, []strictjson.Kind{strictjson.InvalidEndOfNumber, EOF}},
		{`"\q"`, []strictjson.Kind{strictjson.InvalidEscape, Inval, EOF}},
		{`truex`, []strictjson.Kind{strictjson.True, Inval, EOF}},
		{`tru`, []strictjson.Kind{Inval, Inval, Inval, EOF}},
		{`- 1`, []strictjson.Kind{Inval, Num, EOF}},
		{"\v", []strictjson.Kind{Inval, EOF}},
	}
	for _, test := range tests {
		got := kinds(strictjson.Tokenize(test.input))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenText(t *testing.T) {
	tests := []struct {
		input string
		kind  strictjson.Kind
		text  string
	}{
		{`"a\tb c\n"`, strictjson.String, `a\tb c\n`},
		{`""`, strictjson.String, ``},
		{`"\/"`, strictjson.String, `\/`},
		{`1.50`, strictjson.Number, `1.50`},
		{`-0`, strictjson.Number, `-0`},
		{`-0.001E-100`, strictjson.Number, `-0.001E-100`},
		{`1E+2`, strictjson.Number, `1E+2`},
		{`true`, strictjson.True, `true`},
		{`false`, strictjson.False, `false`},
		{`null`, strictjson.Null, `null`},
		{`{`, strictjson.LBrace, `{`},

		{`01`, strictjson.InvalidLeadingZero, `01`},
		{`-00`, strictjson.InvalidLeadingZero, `-00`},
		{`0x1F`, strictjson.InvalidHex, `0x`},
		{`1.e5`, strictjson.InvalidEndOfNumber, `1.`},
		{`2e-`, strictjson.InvalidEndOfNumber, `2e-`},
		{`-`, strictjson.Invalid, `-`},
		{`-x`, strictjson.Invalid, `-`},
		{`"\x41"`, strictjson.InvalidEscape, `\x`},
		{`"\u12G4"`, strictjson.InvalidEscape, `\u12`},
		{`"\u12"`, strictjson.InvalidEscape, `\u12`},
		{"\"a\tb\"", strictjson.InvalidControl, "control character 0x09"},
		{"\"a\x00b\"", strictjson.InvalidControl, "control character 0x00"},
		{`"abc`, strictjson.Invalid, strictjson.UnterminatedString},
		{`"abc\`, strictjson.Invalid, strictjson.UnterminatedString},
		{`@`, strictjson.Invalid, `@`},
		{`é`, strictjson.Invalid, `é`},
		{`'a'`, strictjson.Invalid, `'`},
	}
	for _, test := range tests {
		tok := strictjson.NewTokenizer(test.input).Next()
		if tok.Kind != test.kind || tok.Text != test.text {
			t.Errorf("Input %#q: got %v %#q, want %v %#q", test.input, tok.Kind, tok.Text, test.kind, test.text)
		}
	}
}

func TestTokenizerLoc(t *testing.T) {
	type tokPos struct {
		Kind strictjson.Kind
		Pos  string
	}
	tests := []struct {
		input string
		want  []tokPos
	}{
		{"", []tokPos{{strictjson.EOF, "1:0"}}},

		// Punctuation and constants report the position after the token.
		{"{ }", []tokPos{{strictjson.LBrace, "1:1"}, {strictjson.RBrace, "1:3"}, {strictjson.EOF, "1:3"}}},
		{"true", []tokPos{{strictjson.True, "1:4"}, {strictjson.EOF, "1:4"}}},

		// Strings report the column after the quote, numbers their first column.
		{`{"a":1,}`, []tokPos{
			{strictjson.LBrace, "1:1"}, {strictjson.String, "1:3"}, {strictjson.Colon, "1:5"},
			{strictjson.Number, "1:6"}, {strictjson.Comma, "1:7"}, {strictjson.RBrace, "1:8"},
			{strictjson.EOF, "1:8"},
		}},
		{"[\n  true,\n  -1.5e3\n]", []tokPos{
			{strictjson.LBracket, "1:1"}, {strictjson.True, "2:6"}, {strictjson.Comma, "2:7"},
			{strictjson.Number, "3:3"}, {strictjson.RBracket, "4:1"}, {strictjson.EOF, "4:1"},
		}},

		// Invalid tokens report where scanning stopped.
		{`01`, []tokPos{{strictjson.InvalidLeadingZero, "1:1"}, {strictjson.Number, "1:2"}, {strictjson.EOF, "1:2"}}},
		{`1.`, []tokPos{{strictjson.InvalidEndOfNumber, "1:2"}, {strictjson.EOF, "1:2"}}},
		{`"\q`, []tokPos{{strictjson.InvalidEscape, "1:3"}, {strictjson.EOF, "1:3"}}},
		{" \n -", []tokPos{{strictjson.Invalid, "2:2"}, {strictjson.EOF, "2:2"}}},
		{"x\ny", []tokPos{{strictjson.Invalid, "1:1"}, {strictjson.Invalid, "2:1"}, {strictjson.EOF, "2:1"}}},
	}
	for _, tc := range tests {
		var got []tokPos
		for _, tok := range strictjson.Tokenize(tc.input) {
			got = append(got, tokPos{tok.Kind, tok.LineCol.String()})
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestTokenizerEOF(t *testing.T) {
	tz := strictjson.NewTokenizer(`[]`)
	var got []strictjson.Kind
	for range 5 {
		got = append(got, tz.Next().Kind)
	}
	want := []strictjson.Kind{
		strictjson.LBracket, strictjson.RBracket, strictjson.EOF, strictjson.EOF, strictjson.EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens: (-want, +got)\n%s", diff)
	}

	// The eager form ends with exactly one EOF.
	toks := strictjson.Tokenize("")
	if len(toks) != 1 || toks[0].Kind != strictjson.EOF {
		t.Errorf("Tokenize(%q): got %v, want a single EOF", "", toks)
	}
}

func TestKind(t *testing.T) {
	for _, k := range []strictjson.Kind{
		strictjson.Invalid, strictjson.InvalidLeadingZero, strictjson.InvalidHex,
		strictjson.InvalidEscape, strictjson.InvalidControl, strictjson.InvalidEndOfNumber,
	} {
		if !k.IsInvalid() {
			t.Errorf("Kind %v: IsInvalid is false, want true", k)
		}
	}
	for _, k := range []strictjson.Kind{
		strictjson.EOF, strictjson.LBrace, strictjson.Period, strictjson.String, strictjson.Null,
	} {
		if k.IsInvalid() {
			t.Errorf("Kind %v: IsInvalid is true, want false", k)
		}
	}
	if got, want := strictjson.InvalidLeadingZero.String(), "INVALID_LEADING_ZEROES"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
	if got, want := strictjson.Kind(200).String(), "UNKNOWN"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}
