package spdx

import (
	"github.com/doubleopen-project/spdx-go/expression"
)

// Snippet is a sub-range of a file with its own license and copyright
// annotations.
// https://spdx.github.io/spdx-spec/5-snippet-information/
type Snippet struct {
	SnippetSPDXIdentifier string `json:"SPDXID" yaml:"SPDXID"`

	// SnippetFromFileSPDXIdentifier names the file the snippet is
	// taken from.
	SnippetFromFileSPDXIdentifier string `json:"snippetFromFile" yaml:"snippetFromFile"`

	Ranges []Range `json:"ranges" yaml:"ranges"`

	ConcludedLicense *expression.Expression `json:"licenseConcluded,omitempty" yaml:"licenseConcluded,omitempty"`

	LicenseInfoInSnippets []string `json:"licenseInfoInSnippets,omitempty" yaml:"licenseInfoInSnippets,omitempty"`

	CommentsOnLicense string `json:"licenseComments,omitempty" yaml:"licenseComments,omitempty"`

	CopyrightText string `json:"copyrightText,omitempty" yaml:"copyrightText,omitempty"`

	SnippetComment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	SnippetName string `json:"name,omitempty" yaml:"name,omitempty"`

	SnippetAttributionText string `json:"attributionText,omitempty" yaml:"attributionText,omitempty"`
}

// Range is a byte or line range inside a file.
type Range struct {
	StartPointer Pointer `json:"startPointer" yaml:"startPointer"`
	EndPointer   Pointer `json:"endPointer" yaml:"endPointer"`
}

// NewRange creates a range from two pointers.
func NewRange(start, end Pointer) Range {
	return Range{StartPointer: start, EndPointer: end}
}

// Pointer is one end of a range: either a byte offset or a line number,
// optionally referencing the element the offset is relative to. Exactly
// one of Offset and LineNumber is set.
type Pointer struct {
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`

	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`

	LineNumber *int `json:"lineNumber,omitempty" yaml:"lineNumber,omitempty"`
}

// NewBytePointer creates a byte offset pointer.
func NewBytePointer(offset int) Pointer {
	return Pointer{Offset: &offset}
}

// NewLinePointer creates a line number pointer.
func NewLinePointer(lineNumber int) Pointer {
	return Pointer{LineNumber: &lineNumber}
}
