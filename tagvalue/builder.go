package tagvalue

import (
	"time"

	"github.com/doubleopen-project/spdx-go/errors"
	"github.com/doubleopen-project/spdx-go/expression"
	"github.com/doubleopen-project/spdx-go/spdx"
)

// relationshipKey identifies a relationship for deduplication. Two
// relationships are the same when source, target and kind match,
// regardless of comment.
type relationshipKey struct {
	from string
	to   string
	kind spdx.RelationshipType
}

// annotationBuilder accumulates the five annotation tags. An annotation
// is committed once all five have been seen; an incomplete builder is
// dropped silently at end of input.
type annotationBuilder struct {
	annotator    string
	date         time.Time
	kind         spdx.AnnotationType
	reference    string
	comment      string
	hasAnnotator bool
	hasDate      bool
	hasKind      bool
	hasReference bool
	hasComment   bool
}

// complete tracks presence, not content: a tag seen with an empty value
// still counts.
func (b *annotationBuilder) complete() bool {
	return b.hasAnnotator && b.hasDate && b.hasKind && b.hasReference && b.hasComment
}

func (b *annotationBuilder) build() spdx.Annotation {
	return spdx.NewAnnotation(b.annotator, b.date, b.kind, b.reference, b.comment)
}

// parseLicenseExpression parses a license expression value, wrapping any
// syntax error with the atom's position.
func parseLicenseExpression(atom Atom) (*expression.Expression, error) {
	expr, err := expression.Parse(atom.Value)
	if err != nil {
		return nil, newParseError(err, ErrorKindExpression,
			"malformed license expression",
			atom.Line, string(atom.Kind), atom.Value)
	}
	return expr, nil
}

// validateLicenseReference checks that a license info value parses as an
// expression. The wire format keeps these as plain strings, so only the
// raw value is stored.
func validateLicenseReference(atom Atom) (string, error) {
	if _, err := expression.Parse(atom.Value); err != nil {
		return "", newParseError(err, ErrorKindExpression,
			"malformed license expression",
			atom.Line, string(atom.Kind), atom.Value)
	}
	return atom.Value, nil
}

// parseTimestamp parses an RFC 3339 timestamp value.
func parseTimestamp(atom Atom) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, atom.Value)
	if err != nil {
		return time.Time{}, newParseError(
			errors.Wrapf(errors.ErrInvalidInput, "timestamp %q", atom.Value),
			ErrorKindTimestamp,
			"timestamp is not in RFC 3339 format",
			atom.Line, string(atom.Kind), atom.Value,
		)
	}
	return t, nil
}

// errNoOpenRecord reports a tag that requires an in-progress record of
// the given kind when none is open.
func errNoOpenRecord(atom Atom, record string) error {
	return newParseError(
		errors.Wrapf(errors.ErrInvalidInput, "tag %q", atom.Kind),
		ErrorKindSyntax,
		"tag appears outside a "+record+" record",
		atom.Line, string(atom.Kind), atom.Value,
	)
}
