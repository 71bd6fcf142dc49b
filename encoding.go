// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package strictjson

import (
	"errors"
	"strings"

	"github.com/creachadair/strictjson/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	buf := make([]byte, 1, len(src)+2)
	buf[0] = '"'
	buf = escape.Quote(buf, mem.S(src))
	return string(append(buf, '"'))
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// To decode the Text of a String token, which has no quotation marks, use
// UnquoteText.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	return UnquoteText(src[1 : len(src)-1])
}

// UnquoteText decodes the payload of a JSON string, as carried by the Text of
// a String token.
func UnquoteText(text string) (string, error) { return escape.Unquote(mem.S(text)) }
