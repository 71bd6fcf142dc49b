// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package strictjson

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// UnterminatedString is the text of the Invalid token reported when the input
// ends inside a string literal.
const UnterminatedString = "Unterminated string"

// A Tokenizer reads lexical tokens from an input string. Each call to Next
// returns the next token; once the input is exhausted, Next returns an EOF
// token, repeatedly.
//
// The tokenizer does not report errors separately: malformed input is
// reported as a token with one of the invalid kinds (see Kind.IsInvalid),
// after which the caller is expected to stop.
//
// Positions are counted in bytes. A newline advances the line and resets the
// column to 0; every other byte advances the column by one. The position of a
// token is the position of the cursor when the token ends, except for strings,
// which report the column of the first byte after the opening quote, and
// numbers, which report the column of their first byte.
type Tokenizer struct {
	src mem.RO
	pos int // byte offset of the next unread byte

	line, col int
}

// NewTokenizer constructs a tokenizer that consumes input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{src: mem.S(input), line: 1}
}

// Tokenize returns the complete sequence of tokens in input. The result always
// ends with exactly one EOF token. Tokenization continues past invalid tokens,
// so the result may contain tokens following an invalid one.
func Tokenize(input string) []Token {
	t := NewTokenizer(input)
	toks := make([]Token, 0, 1+len(input)/4)
	for {
		tok := t.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

// Next advances t to the next token of the input and returns it.
func (t *Tokenizer) Next() Token {
	for isSpace(t.peek()) {
		t.advance()
	}

	ch := t.peek()
	if ch < 0 {
		return t.token(EOF, "", t.col)
	}

	// Handle punctuation.
	if k, ok := selfDelim(ch); ok {
		t.advance()
		return t.token(k, string(rune(ch)), t.col)
	}

	// Handle strings and numbers.
	if ch == '"' {
		return t.scanString()
	} else if isNumStart(ch) {
		return t.scanNumber()
	}

	// Handle constants: true, false, null
	rest := t.src.SliceFrom(t.pos)
	for _, kw := range keywords {
		if mem.HasPrefix(rest, kw.text) {
			for range kw.text.Len() {
				t.advance()
			}
			return t.token(kw.kind, kw.text.StringCopy(), t.col)
		}
	}

	// Anything else is a single invalid character.
	start := t.pos
	_, n := mem.DecodeRune(rest)
	for range max(n, 1) {
		t.advance()
	}
	return t.token(Invalid, t.text(start), t.col)
}

func (t *Tokenizer) scanString() Token {
	t.advance() // the opening quote
	start, col := t.pos, t.col+1
	for {
		switch ch := t.peek(); {
		case ch < 0:
			return t.token(Invalid, UnterminatedString, t.col)

		case ch == '"':
			text := t.text(start)
			t.advance()
			return t.token(String, text, col)

		case ch == '\\':
			esc := t.pos
			t.advance()
			switch e := t.peek(); {
			case e < 0:
				return t.token(Invalid, UnterminatedString, t.col)
			case isShortEscape(e):
				t.advance()
			case e == 'u':
				t.advance()
				for range 4 {
					if !isHexDigit(t.peek()) {
						return t.token(InvalidEscape, t.text(esc), t.col)
					}
					t.advance()
				}
			default:
				_, n := mem.DecodeRune(t.src.SliceFrom(t.pos))
				for range max(n, 1) {
					t.advance()
				}
				return t.token(InvalidEscape, t.text(esc), t.col)
			}

		case ch < ' ':
			return t.token(InvalidControl, fmt.Sprintf("control character 0x%02X", ch), t.col)

		default:
			t.advance()
		}
	}
}

func (t *Tokenizer) scanNumber() Token {
	start, col := t.pos, t.col+1

	// If there is a leading sign, it must be followed by a digit.
	if t.peek() == '-' {
		t.advance()
		if !isDigit(t.peek()) {
			return t.token(Invalid, "-", col)
		}
	}

	// Integer part: 0 alone, or a nonzero digit followed by digits.
	// The offending byte after a bad zero is not consumed.
	if t.peek() == '0' {
		t.advance()
		if next := t.peek(); isDigit(next) {
			return t.token(InvalidLeadingZero, t.text(start)+string(rune(next)), t.col)
		} else if next == 'x' || next == 'X' {
			return t.token(InvalidHex, t.text(start)+string(rune(next)), t.col)
		}
	} else {
		t.skipDigits()
	}

	// Fraction: a period followed by at least one digit.
	if t.peek() == '.' {
		t.advance()
		if !isDigit(t.peek()) {
			return t.token(InvalidEndOfNumber, t.text(start), t.col)
		}
		t.skipDigits()
	}

	// Exponent: e or E, an optional sign, and at least one digit.
	if e := t.peek(); e == 'e' || e == 'E' {
		t.advance()
		if s := t.peek(); s == '+' || s == '-' {
			t.advance()
		}
		if !isDigit(t.peek()) {
			return t.token(InvalidEndOfNumber, t.text(start), t.col)
		}
		t.skipDigits()
	}

	return t.token(Number, t.text(start), col)
}

// peek returns the next unread byte, or -1 at the end of the input.
func (t *Tokenizer) peek() int {
	if t.pos >= t.src.Len() {
		return -1
	}
	return int(t.src.At(t.pos))
}

// advance consumes one byte and updates the line and column.
func (t *Tokenizer) advance() {
	if t.src.At(t.pos) == '\n' {
		t.line++
		t.col = 0
	} else {
		t.col++
	}
	t.pos++
}

func (t *Tokenizer) skipDigits() {
	for isDigit(t.peek()) {
		t.advance()
	}
}

// text returns a copy of the input from offset start to the cursor.
func (t *Tokenizer) text(start int) string { return t.src.Slice(start, t.pos).StringCopy() }

func (t *Tokenizer) token(k Kind, text string, col int) Token {
	return Token{Kind: k, Text: text, LineCol: LineCol{Line: t.line, Column: col}}
}

var keywords = [...]struct {
	kind Kind
	text mem.RO
}{
	{True, mem.S("true")},
	{False, mem.S("false")},
	{Null, mem.S("null")},
}

var self = [...]Kind{LBrace, RBrace, LBracket, RBracket, Colon, Comma, Period}

func selfDelim(ch int) (Kind, bool) {
	if i := strings.IndexByte("{}[]:,.", byte(ch)); ch >= 0 && i >= 0 {
		return self[i], true
	}
	return Invalid, false
}

func isSpace(ch int) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch int) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch int) bool    { return '0' <= ch && ch <= '9' }

func isShortEscape(ch int) bool {
	switch ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return true
	}
	return false
}

func isHexDigit(ch int) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
