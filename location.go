// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package strictjson

import "fmt"

// A LineCol describes the line number and column of a location in source
// text, as reported by the tokenizer.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // column within the line; see Tokenizer for conventions
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
