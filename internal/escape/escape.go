// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON string payloads.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var shortEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'"':  '"',
	'\\': '\\',
}

const hexDigit = "0123456789abcdef"

// Quote appends the JSON string encoding of src to dst, without enclosing
// quotation marks, and returns the extended slice. Control characters, quotes
// and backslashes are escaped; U+2028 and U+2029 are escaped so the output
// is safe to embed in JavaScript. Invalid UTF-8 is written as \ufffd.
func Quote(dst []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(max(n, 1))
		switch {
		case r < utf8.RuneSelf && int(r) < len(shortEsc) && shortEsc[r] != 0:
			dst = append(dst, '\\', shortEsc[r])
		case r < ' ':
			dst = append(dst, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
		case r == '\u2028' || r == '\u2029':
			dst = fmt.Appendf(dst, `\u%04x`, r)
		case r == utf8.RuneError:
			dst = append(dst, `\ufffd`...)
		default:
			dst = utf8.AppendRune(dst, r)
		}
	}
	return dst
}

// ErrIncomplete is reported by Unquote for an escape sequence cut short by the
// end of its input.
var ErrIncomplete = errors.New("incomplete escape sequence")

// Unquote decodes the payload of a JSON string, without its enclosing
// quotation marks. Escape sequences are replaced by the characters they
// denote, and UTF-16 surrogate pairs written as two \u escapes are combined.
// An unpaired surrogate or an unknown escape decodes as U+FFFD.
func Unquote(src mem.RO) (string, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return src.StringCopy(), nil
	}
	dec := make([]byte, 0, src.Len())
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return "", ErrIncomplete
		}

		c := src.At(0)
		src = src.SliceFrom(1)
		switch c {
		case '"', '\\', '/':
			dec = append(dec, c)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, rest, err := decodeUnicode(src)
			if err != nil {
				return "", err
			}
			dec = utf8.AppendRune(dec, r)
			src = rest
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
		i = mem.IndexByte(src, '\\')
	}
	return string(mem.Append(dec, src)), nil
}

// decodeUnicode decodes the four hex digits of a \u escape at the front of
// src, and a following low surrogate escape if the first is a high surrogate.
func decodeUnicode(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, ErrIncomplete
	}
	v, ok := parseHex4(src)
	src = src.SliceFrom(4)
	if !ok {
		return utf8.RuneError, src, nil
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, src, nil
	}
	if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
		if lo, ok := parseHex4(src.SliceFrom(2)); ok {
			if pair := utf16.DecodeRune(r, rune(lo)); pair != utf8.RuneError {
				return pair, src.SliceFrom(6), nil
			}
		}
	}
	return utf8.RuneError, src, nil
}

func parseHex4(data mem.RO) (uint16, bool) {
	var v uint16
	for i := range 4 {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v |= uint16(b - '0')
		case 'a' <= b && b <= 'f':
			v |= uint16(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v |= uint16(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}
