// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package strictjson

import (
	"fmt"
	"unicode/utf8"
)

// MaxMessageLen is the maximum length in bytes of a ParseError message.
const MaxMessageLen = 127

// Class classifies where in the pipeline a parse error was detected.
type Class byte

// Constants defining the valid Class values.
const (
	Lexical  Class = iota + 1 // malformed literal, reported by the tokenizer
	Syntax                    // wrong token for the grammar
	Semantic                  // duplicate key, top-level shape, trailing content
)

var classStr = [...]string{
	Lexical:  "lexical",
	Syntax:   "syntax",
	Semantic: "semantic",
}

func (c Class) String() string {
	if c == 0 || int(c) >= len(classStr) {
		return "unknown"
	}
	return classStr[c]
}

// ParseError is the concrete type of errors reported by the parser. The
// location is that of Token, the offending token, unless the parser chose a
// more specific one.
type ParseError struct {
	Class   Class
	Message string
	LineCol
	Token Token
}

// NewParseError constructs a ParseError for tok, located at tok. The message
// is truncated to at most MaxMessageLen bytes.
func NewParseError(c Class, msg string, tok Token) *ParseError {
	return &ParseError{
		Class:   c,
		Message: truncate(msg, MaxMessageLen),
		LineCol: tok.LineCol,
		Token:   tok,
	}
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}

// truncate returns a prefix of s of at most n bytes that does not split a
// UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
