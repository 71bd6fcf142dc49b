// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package strictjson

import "fmt"

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	EOF      Kind = iota // end of input
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LBracket             // left square bracket "["
	RBracket             // right square bracket "]"
	Colon                // colon ":"
	Comma                // comma ","
	Period               // period "."
	String               // quoted string
	Number               // number literal
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null

	// Invalid kinds. Do not move Invalid without updating IsInvalid.

	Invalid            // invalid token
	InvalidLeadingZero // number with a redundant leading zero
	InvalidHex         // hexadecimal number
	InvalidEscape      // unknown or incomplete string escape
	InvalidControl     // unescaped control character in a string
	InvalidEndOfNumber // number with a missing fraction or exponent digit
)

var kindStr = [...]string{
	EOF:                "EOF",
	LBrace:             "LBRACE",
	RBrace:             "RBRACE",
	LBracket:           "LBRACKET",
	RBracket:           "RBRACKET",
	Colon:              "COLON",
	Comma:              "COMMA",
	Period:             "PERIOD",
	String:             "STRING",
	Number:             "NUMBER",
	True:               "TRUE",
	False:              "FALSE",
	Null:               "NULL",
	Invalid:            "INVALID",
	InvalidLeadingZero: "INVALID_LEADING_ZEROES",
	InvalidHex:         "INVALID_HEX",
	InvalidEscape:      "INVALID_ESCAPE_CHARACTERS",
	InvalidControl:     "INVALID_CONTROL_CHARACTERS",
	InvalidEndOfNumber: "INVALID_UNEXPECTED_END_OF_NUMBER",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "UNKNOWN"
	}
	return kindStr[k]
}

// IsInvalid reports whether k is one of the invalid token kinds.
func (k Kind) IsInvalid() bool { return k >= Invalid && int(k) < len(kindStr) }

// A Token is a single lexical token. The Text of a token is the lexeme it was
// scanned from, except that string tokens omit their enclosing quotes and
// invalid tokens may carry a short description instead.
type Token struct {
	Kind Kind
	Text string
	LineCol
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q at %v", t.Kind, t.Text, t.LineCol)
}
