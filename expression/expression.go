// Package expression parses SPDX license expressions.
//
// A license expression is a boolean combination of license and exception
// identifiers, for example "MIT OR (Apache-2.0 AND ISC)" or
// "GPL-2.0-only WITH Classpath-exception-2.0". The grammar, with
// precedence from lowest to highest:
//
//	Or     := And ('OR' And)*
//	And    := With ('AND' With)*
//	With   := Simple ('WITH' Identifier)?
//	Simple := Identifier | '(' Or ')'
//
// A WITH pair binds a license to an exception and forms one indivisible
// terminal: it participates in AND/OR only as a whole.
package expression

import (
	"encoding/json"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type nodeKind int

const (
	kindTerminal nodeKind = iota
	kindAnd
	kindOr
)

// Expression is an immutable license expression tree. The zero value is
// not useful; construct expressions with Parse.
type Expression struct {
	kind     nodeKind
	terminal string
	left     *Expression
	right    *Expression

	// raw holds the original input on the root node so that
	// serialization round-trips byte for byte.
	raw string
}

// Parse parses a license expression string into an expression tree.
// It returns a *SyntaxError describing the offending substring if the
// expression is malformed.
func Parse(input string) (*Expression, error) {
	p := &parser{expression: input}
	if err := p.tokenize(); err != nil {
		return nil, err
	}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, p.errorAt(tok, "unexpected token after expression")
	}
	expr.raw = input
	return expr, nil
}

// Identifiers collects every leaf token referenced by the expression:
// license identifiers, exception identifiers and LicenseRef-* tokens.
// A WITH pair is decomposed into its license and exception halves.
// The result is sorted and free of duplicates.
func (e *Expression) Identifiers() []string {
	set := make(map[string]struct{})
	e.collectIdentifiers(set)

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (e *Expression) collectIdentifiers(set map[string]struct{}) {
	switch e.kind {
	case kindTerminal:
		for _, half := range strings.Split(e.terminal, " WITH ") {
			set[half] = struct{}{}
		}
	default:
		e.left.collectIdentifiers(set)
		e.right.collectIdentifiers(set)
	}
}

// Evaluate treats each terminal as a boolean variable and evaluates the
// expression against the set of satisfied identifiers. A WITH terminal
// is satisfied only when the compound token itself, for example
// "GPL-2.0-only WITH Classpath-exception-2.0", is present in the set.
func (e *Expression) Evaluate(satisfied map[string]bool) bool {
	switch e.kind {
	case kindAnd:
		return e.left.Evaluate(satisfied) && e.right.Evaluate(satisfied)
	case kindOr:
		return e.left.Evaluate(satisfied) || e.right.Evaluate(satisfied)
	default:
		return satisfied[e.terminal]
	}
}

// String renders the expression. The root of a parsed expression returns
// the original input; derived subtrees are rendered with explicit
// parentheses around nested combinations.
func (e *Expression) String() string {
	if e.raw != "" {
		return e.raw
	}
	switch e.kind {
	case kindAnd:
		return e.left.operandString() + " AND " + e.right.operandString()
	case kindOr:
		return e.left.operandString() + " OR " + e.right.operandString()
	default:
		return e.terminal
	}
}

func (e *Expression) operandString() string {
	if e.kind == kindTerminal {
		return e.terminal
	}
	return "(" + e.String() + ")"
}

// MarshalJSON encodes the expression as its string form.
func (e *Expression) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON parses the expression from its string form.
func (e *Expression) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}

// MarshalYAML encodes the expression as its string form.
func (e *Expression) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}

// UnmarshalYAML parses the expression from its string form.
func (e *Expression) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*e = *parsed
	return nil
}
