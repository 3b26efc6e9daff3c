package tagvalue

import (
	"strconv"
	"strings"

	"github.com/doubleopen-project/spdx-go/errors"
	"github.com/doubleopen-project/spdx-go/logger"
	"github.com/doubleopen-project/spdx-go/spdx"
)

const (
	textOpen  = "<text>"
	textClose = "</text>"
)

// Lex splits input into an ordered atom sequence. Lines are recognized
// as blank (skipped), '#' comments, or "Tag: value" pairs. A value
// beginning with <text> opens a multiline block that runs until the
// first line containing </text>; continuation lines are kept raw and
// joined with newlines.
//
// An unrecognized tag, a malformed line, an unterminated text block, or
// a sub-grammar failure aborts lexing with a *ParseError.
func Lex(input string) ([]Atom, error) {
	lines := strings.Split(input, "\n")
	atoms := make([]Atom, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		lineNo := i + 1
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			atoms = append(atoms, Atom{
				Kind:  KindComment,
				Line:  lineNo,
				Value: strings.TrimSpace(strings.TrimPrefix(line, "#")),
			})
			continue
		}

		tag, rest, ok := splitTagValue(line)
		if !ok {
			return nil, newParseError(
				errors.Wrapf(errors.ErrInvalidInput, "line %d", lineNo),
				ErrorKindSyntax,
				"expected a 'Tag: value' pair",
				lineNo, "", line,
			)
		}

		parse, known := tagTable[tag]
		if !known {
			err := newParseError(
				errors.Wrapf(errors.ErrUnknownTag, "tag %q", tag),
				ErrorKindUnknownTag,
				"unrecognized tag",
				lineNo, tag, rest,
			)
			err.Suggestions = []string{"check the tag against the SPDX 2.2 tag-value reference"}
			return nil, err
		}

		value := rest
		if strings.HasPrefix(rest, textOpen) {
			text, consumed, err := lexTextBlock(lines, i, rest)
			if err != nil {
				return nil, err
			}
			value = text
			i += consumed
		}

		atom := Atom{Kind: AtomKind(tag), Line: lineNo}
		if err := parse(&atom, value); err != nil {
			return nil, err
		}
		atoms = append(atoms, atom)
	}

	logger.Logger.Debugw("lexed tag-value input", "lines", len(lines), "atoms", len(atoms))
	return atoms, nil
}

// splitTagValue splits "Tag: value" at the first colon. The tag must be
// non-empty and strictly alphanumeric.
func splitTagValue(line string) (tag, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	tag = strings.TrimSpace(line[:idx])
	if tag == "" {
		return "", "", false
	}
	for _, r := range tag {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !alnum {
			return "", "", false
		}
	}
	return tag, strings.TrimSpace(line[idx+1:]), true
}

// lexTextBlock consumes a <text>...</text> value starting on lines[start].
// rest is the already-split value of the opening line. It returns the
// block's inner text and the number of extra lines consumed.
func lexTextBlock(lines []string, start int, rest string) (string, int, error) {
	lineNo := start + 1
	inner := strings.TrimPrefix(rest, textOpen)

	// Single-line block: <text>...</text> on the opening line.
	if idx := strings.Index(inner, textClose); idx >= 0 {
		if trailing := strings.TrimSpace(inner[idx+len(textClose):]); trailing != "" {
			return "", 0, newParseError(
				errors.Wrapf(errors.ErrInvalidInput, "line %d", lineNo),
				ErrorKindSyntax,
				"unexpected content after </text>",
				lineNo, "", trailing,
			)
		}
		return inner[:idx], 0, nil
	}

	parts := []string{inner}
	for i := start + 1; i < len(lines); i++ {
		line := lines[i]
		idx := strings.Index(line, textClose)
		if idx < 0 {
			parts = append(parts, line)
			continue
		}
		if trailing := strings.TrimSpace(line[idx+len(textClose):]); trailing != "" {
			return "", 0, newParseError(
				errors.Wrapf(errors.ErrInvalidInput, "line %d", i+1),
				ErrorKindSyntax,
				"unexpected content after </text>",
				i+1, "", trailing,
			)
		}
		parts = append(parts, line[:idx])
		return strings.Join(parts, "\n"), i - start, nil
	}

	return "", 0, newParseError(
		errors.Wrapf(errors.ErrInvalidInput, "line %d", lineNo),
		ErrorKindSyntax,
		"unterminated <text> block",
		lineNo, "", rest,
	)
}

// checksumValue parses "ALGORITHM: hexvalue".
func checksumValue(atom *Atom, value string) error {
	algText, sum, ok := strings.Cut(value, ":")
	if !ok {
		return newParseError(
			errors.Wrapf(errors.ErrInvalidInput, "checksum %q", value),
			ErrorKindSubGrammar,
			"expected 'ALGORITHM: value'",
			atom.Line, string(atom.Kind), value,
		)
	}
	algorithm, err := spdx.ParseAlgorithm(strings.TrimSpace(algText))
	if err != nil {
		return newParseError(err, ErrorKindSubGrammar,
			"unrecognized checksum algorithm",
			atom.Line, string(atom.Kind), value)
	}
	checksum := spdx.NewChecksum(algorithm, strings.TrimSpace(sum))
	atom.Checksum = &checksum
	return nil
}

// rangeValue parses "start:end" where both bounds are non-negative
// integers.
func rangeValue(atom *Atom, value string) error {
	startText, endText, ok := strings.Cut(value, ":")
	if !ok {
		return newParseError(
			errors.Wrapf(errors.ErrInvalidInput, "range %q", value),
			ErrorKindSubGrammar,
			"expected 'start:end'",
			atom.Line, string(atom.Kind), value,
		)
	}
	start, err := strconv.Atoi(strings.TrimSpace(startText))
	if err != nil {
		return newParseError(
			errors.Wrapf(errors.ErrInvalidInput, "range start %q", startText),
			ErrorKindSubGrammar,
			"range start is not an integer",
			atom.Line, string(atom.Kind), value,
		)
	}
	end, err := strconv.Atoi(strings.TrimSpace(endText))
	if err != nil {
		return newParseError(
			errors.Wrapf(errors.ErrInvalidInput, "range end %q", endText),
			ErrorKindSubGrammar,
			"range end is not an integer",
			atom.Line, string(atom.Kind), value,
		)
	}
	atom.Range = &AtomRange{Start: start, End: end}
	return nil
}

// relationshipValue parses "source KIND target". The kind is matched
// case-insensitively against the relationship type table.
func relationshipValue(atom *Atom, value string) error {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return newParseError(
			errors.Wrapf(errors.ErrInvalidInput, "relationship %q", value),
			ErrorKindSubGrammar,
			"expected 'source KIND target'",
			atom.Line, string(atom.Kind), value,
		)
	}
	kind, err := spdx.ParseRelationshipType(fields[1])
	if err != nil {
		return newParseError(err, ErrorKindSubGrammar,
			"unrecognized relationship type",
			atom.Line, string(atom.Kind), value)
	}
	rel := spdx.NewRelationship(fields[0], fields[2], kind)
	atom.Relationship = &rel
	return nil
}

// externalDocumentRefValue parses "DocumentRef-id uri ALGORITHM: value".
func externalDocumentRefValue(atom *Atom, value string) error {
	fields := strings.Fields(value)
	if len(fields) < 3 {
		return newParseError(
			errors.Wrapf(errors.ErrInvalidInput, "external document reference %q", value),
			ErrorKindSubGrammar,
			"expected 'DocumentRef-id uri ALGORITHM: value'",
			atom.Line, string(atom.Kind), value,
		)
	}
	id := strings.TrimPrefix(fields[0], "DocumentRef-")
	uri := fields[1]

	checksumAtom := Atom{Kind: atom.Kind, Line: atom.Line}
	if err := checksumValue(&checksumAtom, strings.Join(fields[2:], " ")); err != nil {
		return err
	}
	ref := spdx.NewExternalDocumentReference(id, uri, *checksumAtom.Checksum)
	atom.ExternalDocumentReference = &ref
	return nil
}

// verificationCodeValue parses "value" or "value (excludes: files...)".
func verificationCodeValue(atom *Atom, value string) error {
	code := spdx.PackageVerificationCode{}
	open := strings.Index(value, "(")
	if open < 0 {
		code.Value = strings.TrimSpace(value)
		atom.VerificationCode = &code
		return nil
	}

	code.Value = strings.TrimSpace(value[:open])
	inner := strings.TrimSpace(value[open+1:])
	inner = strings.TrimSuffix(inner, ")")
	inner = strings.TrimSpace(strings.TrimPrefix(inner, "excludes:"))
	if inner != "" {
		code.Excludes = strings.Fields(inner)
	}
	atom.VerificationCode = &code
	return nil
}

// externalPackageRefValue parses "CATEGORY type locator".
func externalPackageRefValue(atom *Atom, value string) error {
	fields := strings.Fields(value)
	if len(fields) < 3 {
		return newParseError(
			errors.Wrapf(errors.ErrInvalidInput, "external reference %q", value),
			ErrorKindSubGrammar,
			"expected 'CATEGORY type locator'",
			atom.Line, string(atom.Kind), value,
		)
	}
	category, err := spdx.ParseExternalPackageReferenceCategory(fields[0])
	if err != nil {
		return newParseError(err, ErrorKindSubGrammar,
			"unrecognized external reference category",
			atom.Line, string(atom.Kind), value)
	}
	atom.ExternalPackageReference = &spdx.ExternalPackageReference{
		ReferenceCategory: category,
		ReferenceType:     fields[1],
		ReferenceLocator:  strings.Join(fields[2:], " "),
	}
	return nil
}

func fileTypeValue(atom *Atom, value string) error {
	fileType, err := spdx.ParseFileType(strings.TrimSpace(value))
	if err != nil {
		return newParseError(err, ErrorKindSubGrammar,
			"unrecognized file type",
			atom.Line, string(atom.Kind), value)
	}
	atom.FileType = fileType
	return nil
}

func annotationTypeValue(atom *Atom, value string) error {
	annotationType, err := spdx.ParseAnnotationType(strings.TrimSpace(value))
	if err != nil {
		return newParseError(err, ErrorKindSubGrammar,
			"unrecognized annotation type",
			atom.Line, string(atom.Kind), value)
	}
	atom.AnnotationType = annotationType
	return nil
}
