// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/strictjson"
)

// DefaultMaxDepth is the nesting depth limit used when Options.MaxDepth is
// not positive.
const DefaultMaxDepth = 512

// Options control the behavior of the parser. A zero value is ready for use
// with default settings.
type Options struct {
	// MaxDepth is the maximum number of arrays and objects that may be nested
	// inside one another. If MaxDepth <= 0, DefaultMaxDepth is used.
	MaxDepth int
}

// Parse parses a complete JSON document from toks with default options.
// See Options.Parse.
func Parse(toks []strictjson.Token) (Value, error) { return Options{}.Parse(toks) }

// ParseValue parses a single JSON value from toks with default options.
// See Options.ParseValue.
func ParseValue(toks []strictjson.Token) (Value, error) { return Options{}.ParseValue(toks) }

// ParseString tokenizes and parses a complete JSON document from input with
// default options.
func ParseString(input string) (Value, error) { return Options{}.ParseString(input) }

// ParseString tokenizes and parses a complete JSON document from input.
func (o Options) ParseString(input string) (Value, error) {
	return o.Parse(strictjson.Tokenize(input))
}

// Parse parses a complete JSON document from toks. The document must consist
// of exactly one object or array, followed by the end of input.
//
// On success, Parse returns the value and a nil error. Otherwise it returns a
// nil value and an error of concrete type *strictjson.ParseError describing
// the first problem found.
func (o Options) Parse(toks []strictjson.Token) (Value, error) {
	p := o.newParser(toks)
	first := p.peek()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	switch v.(type) {
	case Object, Array:
	default:
		return nil, strictjson.NewParseError(strictjson.Semantic,
			"Top-level JSON must be an object or array", first)
	}
	if rest := p.peek(); rest.Kind != strictjson.EOF {
		return nil, strictjson.NewParseError(strictjson.Semantic, "End of file expected", rest)
	}
	return v, nil
}

// ParseValue parses a single JSON value of any kind from the front of toks.
// Tokens following the value are ignored.
func (o Options) ParseValue(toks []strictjson.Token) (Value, error) {
	return o.newParser(toks).parseValue()
}

// A parser is a cursor over a token sequence. The cursor never moves past the
// first EOF token.
type parser struct {
	toks     []strictjson.Token
	pos      int
	depth    int
	maxDepth int
}

func (o Options) newParser(toks []strictjson.Token) *parser {
	// Make sure the sequence is terminated, so peek cannot run off the end.
	if n := len(toks); n == 0 || toks[n-1].Kind != strictjson.EOF {
		eof := strictjson.Token{Kind: strictjson.EOF, LineCol: strictjson.LineCol{Line: 1}}
		if n != 0 {
			eof.LineCol = toks[n-1].LineCol
		}
		toks = append(toks[:n:n], eof)
	}
	depth := o.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	return &parser{toks: toks, maxDepth: depth}
}

func (p *parser) peek() strictjson.Token { return p.toks[p.pos] }

func (p *parser) advance() {
	if p.toks[p.pos].Kind != strictjson.EOF {
		p.pos++
	}
}

// match advances past the current token and reports true if it has kind k;
// otherwise it reports false without advancing.
func (p *parser) match(k strictjson.Kind) bool {
	if p.peek().Kind == k {
		p.advance()
		return true
	}
	return false
}

func (p *parser) fail(c strictjson.Class, msg string, tok strictjson.Token) error {
	return strictjson.NewParseError(c, msg, tok)
}

// enter records the opening of a nested array or object at tok.
func (p *parser) enter(tok strictjson.Token) error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.fail(strictjson.Semantic,
			fmt.Sprintf("Maximum nesting depth of %d exceeded", p.maxDepth), tok)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

var invalidMessage = map[strictjson.Kind]string{
	strictjson.InvalidLeadingZero: "Numbers cannot have leading zeroes",
	strictjson.InvalidHex:         "Numbers cannot be hex",
	strictjson.InvalidEscape:      "Invalid escape sequence",
	strictjson.InvalidControl:     "Control characters must be escaped",
	strictjson.InvalidEndOfNumber: "Unexpected end of number.",
}

// parseValue consumes a single value of any type.
func (p *parser) parseValue() (Value, error) {
	tok := p.peek()
	switch tok.Kind {
	case strictjson.Null:
		p.advance()
		return Null{}, nil
	case strictjson.True, strictjson.False:
		p.advance()
		return Bool(tok.Kind == strictjson.True), nil
	case strictjson.Number:
		p.advance()
		return Number(tok.Text), nil
	case strictjson.String:
		p.advance()
		return String(tok.Text), nil

	// A stray closing bracket is sent to its production, which reports that
	// the opening bracket is missing.
	case strictjson.LBrace, strictjson.RBrace:
		return p.parseObject()
	case strictjson.LBracket, strictjson.RBracket:
		return p.parseArray()

	case strictjson.EOF:
		if p.pos == 0 {
			return nil, p.fail(strictjson.Syntax, "Empty input - expected a JSON value", tok)
		}
		return nil, p.fail(strictjson.Syntax, "Value expected", tok)
	}

	if msg, ok := invalidMessage[tok.Kind]; ok {
		return nil, p.fail(strictjson.Lexical, msg, tok)
	} else if tok.Kind == strictjson.Invalid {
		if tok.Text == strictjson.UnterminatedString {
			return nil, p.fail(strictjson.Lexical, strictjson.UnterminatedString, tok)
		}
		return nil, p.fail(strictjson.Lexical, "Value expected", tok)
	}
	return nil, p.fail(strictjson.Syntax, "Value expected", tok)
}

// parseObject consumes an object and its members.
// Precondition: token == LBrace or token == RBrace.
func (p *parser) parseObject() (Value, error) {
	open := p.peek()
	if !p.match(strictjson.LBrace) {
		return nil, p.fail(strictjson.Syntax, "Expected '{' at start of object", open)
	}
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	switch tok := p.peek(); tok.Kind {
	case strictjson.EOF:
		return nil, p.fail(strictjson.Syntax, "Expected comma or closing brace", tok)
	case strictjson.RBrace:
		p.advance()
		return Object{}, nil
	}

	var obj Object
	seen := mapset.New[string]()
	for {
		// Parse a single member: "key": value
		key := p.peek()
		switch key.Kind {
		case strictjson.String:
			// OK
		case strictjson.Number:
			return nil, p.fail(strictjson.Syntax, "Expected string as object key", key)
		default:
			return nil, p.fail(strictjson.Syntax, "Property keys must be doublequoted", key)
		}
		p.advance()

		if seen.Has(key.Text) {
			return nil, p.fail(strictjson.Semantic, fmt.Sprintf(`Duplicate key "%s" found`, key.Text), key)
		}
		seen.Add(key.Text)

		if !p.match(strictjson.Colon) {
			return nil, p.fail(strictjson.Syntax, "Expected ':' after object key", p.peek())
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj = append(obj, &Member{Key: key.Text, Value: val})

		// Check whether we have more members (",") or are done ("}").
		next := p.peek()
		switch next.Kind {
		case strictjson.Comma:
			p.advance()
			switch after := p.peek(); after.Kind {
			case strictjson.RBrace:
				return nil, p.fail(strictjson.Syntax, "Trailing comma", after)
			case strictjson.EOF:
				return nil, p.fail(strictjson.Syntax, "Property expected", after)
			}
		case strictjson.RBrace:
			p.advance()
			return obj, nil
		default:
			return nil, p.fail(strictjson.Syntax, "Expected ',' or '}' in object", next)
		}
	}
}

// parseArray consumes an array and its elements.
// Precondition: token == LBracket or token == RBracket.
func (p *parser) parseArray() (Value, error) {
	open := p.peek()
	if !p.match(strictjson.LBracket) {
		return nil, p.fail(strictjson.Syntax, "Expected '[' at start of array", open)
	}
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.match(strictjson.RBracket) {
		return Array{}, nil
	}

	var arr Array
	for {
		elt, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, elt)

		// Check whether we have more elements (",") or are done ("]").
		next := p.peek()
		switch next.Kind {
		case strictjson.Comma:
			p.advance()
			if after := p.peek(); after.Kind == strictjson.RBracket {
				return nil, p.fail(strictjson.Syntax, "Trailing comma", after)
			}
		case strictjson.RBracket:
			p.advance()
			return arr, nil
		default:
			return nil, p.fail(strictjson.Syntax, "Expected ',' or ']' in array", next)
		}
	}
}
