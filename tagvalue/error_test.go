package tagvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doubleopen-project/spdx-go/errors"
)

func TestParseErrorPlainFormat(t *testing.T) {
	err := newParseError(
		errors.ErrInvalidInput,
		ErrorKindSubGrammar,
		"expected 'start:end'",
		12, "SnippetByteRange", "310..420",
	)

	msg := err.FormatError(ErrorContextPlain)
	assert.Equal(t, "expected 'start:end' (line 12): SnippetByteRange: 310..420", msg)
	assert.Equal(t, msg, err.Error(), "Error falls back to the plain format")
}

func TestParseErrorPlainFormatWithSuggestions(t *testing.T) {
	err := newParseError(errors.ErrUnknownTag, ErrorKindUnknownTag, "unrecognized tag", 3, "Bogus", "value")
	err.Suggestions = []string{"check the tag name"}

	assert.Contains(t, err.Error(), "Suggestions: check the tag name")
}

func TestParseErrorTerminalFormatCarriesContext(t *testing.T) {
	err := newParseError(errors.ErrInvalidInput, ErrorKindSyntax, "expected a 'Tag: value' pair", 7, "", "broken line")

	msg := err.FormatError(ErrorContextTerminal)
	assert.Contains(t, msg, "expected a 'Tag: value' pair")
	assert.Contains(t, msg, "broken line")
}

func TestParseErrorUnwrap(t *testing.T) {
	lexErr := newParseError(
		errors.Wrapf(errors.ErrUnknownTag, "tag %q", "Bogus"),
		ErrorKindUnknownTag,
		"unrecognized tag",
		1, "Bogus", "value",
	)

	require.ErrorIs(t, lexErr, errors.ErrUnknownTag)

	var parseErr *ParseError
	require.ErrorAs(t, error(lexErr), &parseErr)
	assert.Equal(t, ErrorKindUnknownTag, parseErr.Kind)
	assert.Equal(t, SeverityError, parseErr.Severity)
}
