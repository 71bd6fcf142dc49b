// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package strictjson implements a strict tokenizer for JSON text.
//
// # Tokenizing
//
// Tokenize splits a complete input into a sequence of tokens ending with a
// single EOF token:
//
//	toks := strictjson.Tokenize(`{"a": [1, 2.5, null]}`)
//	for _, tok := range toks {
//	   log.Printf("%v %q at %v", tok.Kind, tok.Text, tok.LineCol)
//	}
//
// For incremental use, construct a Tokenizer with NewTokenizer and call its
// Next method, which returns an EOF token once the input is exhausted.
//
// The tokenizer does not fail. Malformed input is reported as a token whose
// kind is one of the invalid kinds, such as InvalidLeadingZero for 012,
// InvalidHex for 0x1F, InvalidEscape for "\q", InvalidControl for a raw
// control character inside a string, and InvalidEndOfNumber for 1. or 1e+.
// Use Kind.IsInvalid to check for any of these.
//
// # Positions
//
// Each token carries a line and column. Lines count from 1. Columns count
// bytes: a newline resets the column to 0 and every other byte advances it by
// one. Most tokens report the column of their last byte; a string reports the
// column of the first byte after its opening quote, and a number reports the
// column of its first byte.
//
// # Parsing
//
// The ast package parses a token sequence into a tree of values, enforcing
// that the top-level value is an object or array, that objects do not repeat
// a key, and that arrays and objects do not have trailing commas:
//
//	v, err := ast.ParseString(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err) // a *strictjson.ParseError
//	}
//
// Parsing stops at the first error, which is reported as a *ParseError giving
// the message, its class, and the line, column and token where it was found.
//
// # Strings
//
// The Text of a String token is the content between its quotes, with escape
// sequences intact. Use UnquoteText to decode it, or Quote and Unquote to
// convert between plain strings and quoted JSON string values.
package strictjson
