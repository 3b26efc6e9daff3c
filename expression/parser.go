package expression

import (
	"fmt"
)

// Operator keywords. Matching is case-sensitive: "MIT and ISC" is two
// identifiers flanking an unknown token, not a conjunction.
const (
	keywordAnd  = "AND"
	keywordOr   = "OR"
	keywordWith = "WITH"
)

// SyntaxError describes a malformed license expression. It carries the
// offending substring and its byte offset so callers can point at the
// exact location in the input.
type SyntaxError struct {
	Expression string // the full expression being parsed
	Token      string // the offending substring, empty at end of input
	Offset     int    // byte offset of Token in Expression
	Message    string
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parsing license expression %q: %s at end of input", e.Expression, e.Message)
	}
	return fmt.Sprintf("parsing license expression %q: %s at %q (offset %d)", e.Expression, e.Message, e.Token, e.Offset)
}

type token struct {
	text   string
	offset int
}

type parser struct {
	expression string
	tokens     []token
	pos        int
}

// isIdentifierChar reports whether c is legal in an SPDX identifier.
func isIdentifierChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.' || c == '-' || c == '+':
		return true
	}
	return false
}

func (p *parser) tokenize() error {
	i := 0
	for i < len(p.expression) {
		c := p.expression[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(' || c == ')':
			p.tokens = append(p.tokens, token{text: string(c), offset: i})
			i++
		case isIdentifierChar(c):
			start := i
			for i < len(p.expression) && isIdentifierChar(p.expression[i]) {
				i++
			}
			p.tokens = append(p.tokens, token{text: p.expression[start:i], offset: start})
		default:
			return &SyntaxError{
				Expression: p.expression,
				Token:      string(c),
				Offset:     i,
				Message:    "illegal character",
			}
		}
	}
	return nil
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) errorAt(tok token, message string) error {
	return &SyntaxError{
		Expression: p.expression,
		Token:      tok.text,
		Offset:     tok.offset,
		Message:    message,
	}
}

func (p *parser) errorAtEnd(message string) error {
	return &SyntaxError{
		Expression: p.expression,
		Offset:     len(p.expression),
		Message:    message,
	}
}

// parseOr implements Or := And ('OR' And)*.
func (p *parser) parseOr() (*Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.text != keywordOr {
			return left, nil
		}
		p.pos++
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Expression{kind: kindOr, left: left, right: right}
	}
}

// parseAnd implements And := With ('AND' With)*.
func (p *parser) parseAnd() (*Expression, error) {
	left, err := p.parseWith()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.text != keywordAnd {
			return left, nil
		}
		p.pos++
		right, err := p.parseWith()
		if err != nil {
			return nil, err
		}
		left = &Expression{kind: kindAnd, left: left, right: right}
	}
}

// parseWith implements With := Simple ('WITH' Identifier)?. The pair is
// collapsed into a single compound terminal.
func (p *parser) parseWith() (*Expression, error) {
	simple, err := p.parseSimple()
	if err != nil {
		return nil, err
	}
	tok, ok := p.peek()
	if !ok || tok.text != keywordWith {
		return simple, nil
	}
	p.pos++

	if simple.kind != kindTerminal {
		return nil, p.errorAt(tok, "WITH requires a license identifier on the left")
	}
	exception, ok := p.next()
	if !ok {
		return nil, p.errorAtEnd("WITH is missing an exception identifier")
	}
	if !isIdentifier(exception.text) {
		return nil, p.errorAt(exception, "WITH requires an exception identifier")
	}
	return &Expression{
		kind:     kindTerminal,
		terminal: simple.terminal + " WITH " + exception.text,
	}, nil
}

// parseSimple implements Simple := Identifier | '(' Or ')'.
func (p *parser) parseSimple() (*Expression, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.errorAtEnd("expected a license identifier")
	}
	switch {
	case tok.text == "(":
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.next()
		if !ok {
			return nil, p.errorAtEnd("unbalanced parentheses")
		}
		if closing.text != ")" {
			return nil, p.errorAt(closing, "unbalanced parentheses")
		}
		return inner, nil
	case isIdentifier(tok.text):
		return &Expression{kind: kindTerminal, terminal: tok.text}, nil
	default:
		return nil, p.errorAt(tok, "expected a license identifier")
	}
}

// isIdentifier reports whether text can stand as a terminal: a
// non-empty identifier token that is not an operator keyword or a
// parenthesis.
func isIdentifier(text string) bool {
	switch text {
	case "", "(", ")", keywordAnd, keywordOr, keywordWith:
		return false
	}
	return true
}
