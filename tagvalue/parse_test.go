package tagvalue

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doubleopen-project/spdx-go/errors"
	"github.com/doubleopen-project/spdx-go/spdx"
)

const sampleDocument = `# sample document
SPDXVersion: SPDX-2.2
DataLicense: CC0-1.0
SPDXID: SPDXRef-DOCUMENT
DocumentName: demo
DocumentNamespace: http://spdx.org/spdxdocs/demo
LicenseListVersion: 3.21
Creator: Tool: spdx-go
Creator: Person: Jane Doe ()
Created: 2024-03-01T12:00:00Z
CreatorComment: <text>built for
integration testing</text>

PackageName: demo-lib
SPDXID: SPDXRef-Package
PackageVersion: 1.2.3
PackageDownloadLocation: https://example.com/demo-lib-1.2.3.tar.gz
FilesAnalyzed: true
PackageVerificationCode: d6a770ba38583ed4bb4525bd96e50461655d2758 (excludes: ./demo.spdx)
PackageChecksum: SHA256: 11b6d3ee554eedf79299905a98f9b9a04e498210b59f15094c916c91d150efcd
PackageLicenseConcluded: MIT OR Apache-2.0
PackageLicenseDeclared: MIT
PackageLicenseInfoFromFiles: MIT
PackageCopyrightText: <text>Copyright 2024 Example</text>
ExternalRef: PACKAGE-MANAGER purl pkg:golang/example.com/demo-lib@1.2.3
ExternalRefComment: primary package manager reference

FileName: ./src/lib.go
SPDXID: SPDXRef-File
FileType: SOURCE
FileChecksum: SHA1: d6a770ba38583ed4bb4525bd96e50461655d2759
LicenseConcluded: MIT
LicenseInfoInFile: MIT
FileCopyrightText: NOASSERTION

SnippetSPDXID: SPDXRef-Snippet
SnippetFromFileSPDXID: SPDXRef-File
SnippetByteRange: 310:420
SnippetLineRange: 5:23
SnippetLicenseConcluded: GPL-2.0-only WITH Classpath-exception-2.0
SnippetName: embedded sorter

LicenseID: LicenseRef-1
ExtractedText: <text>custom license
text</text>
LicenseName: Custom License
LicenseCrossReference: https://example.com/license

Relationship: SPDXRef-DOCUMENT DESCRIBES SPDXRef-Package
RelationshipComment: root package

Annotator: Person: Jane Doe ()
AnnotationDate: 2024-03-02T08:30:00Z
AnnotationType: REVIEW
SPDXREF: SPDXRef-Package
AnnotationComment: looks good
`

func TestParseSampleDocument(t *testing.T) {
	doc, err := Parse(sampleDocument)
	require.NoError(t, err)

	// Document creation information
	assert.Equal(t, "SPDX-2.2", doc.SPDXVersion)
	assert.Equal(t, "CC0-1.0", doc.DataLicense)
	assert.Equal(t, "SPDXRef-DOCUMENT", doc.SPDXIdentifier)
	assert.Equal(t, "demo", doc.DocumentName)
	assert.Equal(t, "http://spdx.org/spdxdocs/demo", doc.DocumentNamespace)
	assert.Equal(t, "3.21", doc.CreationInfo.LicenseListVersion)
	assert.Equal(t, []string{"Tool: spdx-go", "Person: Jane Doe ()"}, doc.CreationInfo.Creators)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), doc.CreationInfo.Created)
	assert.Equal(t, "built for\nintegration testing", doc.CreationInfo.CreatorComment)

	// Package
	require.Len(t, doc.Packages, 1)
	pkg := doc.Packages[0]
	assert.Equal(t, "demo-lib", pkg.PackageName)
	assert.Equal(t, "SPDXRef-Package", pkg.PackageSPDXIdentifier)
	assert.Equal(t, "1.2.3", pkg.PackageVersion)
	require.NotNil(t, pkg.FilesAnalyzed)
	assert.True(t, *pkg.FilesAnalyzed)
	require.NotNil(t, pkg.PackageVerificationCode)
	assert.Equal(t, "d6a770ba38583ed4bb4525bd96e50461655d2758", pkg.PackageVerificationCode.Value)
	assert.Equal(t, []string{"./demo.spdx"}, pkg.PackageVerificationCode.Excludes)
	require.NotNil(t, pkg.ConcludedLicense)
	assert.Equal(t, "MIT OR Apache-2.0", pkg.ConcludedLicense.String())
	assert.Equal(t, []string{"MIT"}, pkg.AllLicensesFromFiles)
	assert.Equal(t, "Copyright 2024 Example", pkg.CopyrightText)
	require.Len(t, pkg.ExternalReferences, 1)
	assert.Equal(t, spdx.CategoryPackageManager, pkg.ExternalReferences[0].ReferenceCategory)
	assert.Equal(t, "primary package manager reference", pkg.ExternalReferences[0].ReferenceComment)
	assert.Equal(t, []string{"SPDXRef-File"}, pkg.Files)

	// File
	require.Len(t, doc.Files, 1)
	file := doc.Files[0]
	assert.Equal(t, "./src/lib.go", file.FileName)
	assert.Equal(t, "SPDXRef-File", file.FileSPDXIdentifier)
	assert.Equal(t, []spdx.FileType{spdx.Source}, file.FileTypes)
	hash, ok := file.Checksum(spdx.SHA1)
	require.True(t, ok)
	assert.Equal(t, "d6a770ba38583ed4bb4525bd96e50461655d2759", hash)

	// Snippet
	require.Len(t, doc.Snippets, 1)
	snippet := doc.Snippets[0]
	assert.Equal(t, "SPDXRef-Snippet", snippet.SnippetSPDXIdentifier)
	assert.Equal(t, "SPDXRef-File", snippet.SnippetFromFileSPDXIdentifier)
	require.Len(t, snippet.Ranges, 2)
	require.NotNil(t, snippet.Ranges[0].StartPointer.Offset)
	assert.Equal(t, 310, *snippet.Ranges[0].StartPointer.Offset)
	require.NotNil(t, snippet.Ranges[1].EndPointer.LineNumber)
	assert.Equal(t, 23, *snippet.Ranges[1].EndPointer.LineNumber)
	assert.Equal(t, "embedded sorter", snippet.SnippetName)

	// Other licensing information
	require.Len(t, doc.OtherLicensingInformation, 1)
	license := doc.OtherLicensingInformation[0]
	assert.Equal(t, "LicenseRef-1", license.LicenseIdentifier)
	assert.Equal(t, "custom license\ntext", license.ExtractedText)
	assert.Equal(t, "Custom License", license.LicenseName)

	// Relationships: the implicit containment comes first because it is
	// recorded when the file identifier is assigned.
	require.Len(t, doc.Relationships, 2)
	assert.Equal(t, spdx.Relationship{
		SPDXElementID:      "SPDXRef-Package",
		RelatedSPDXElement: "SPDXRef-File",
		RelationshipType:   spdx.Contains,
	}, doc.Relationships[0])
	assert.Equal(t, spdx.Relationship{
		SPDXElementID:      "SPDXRef-DOCUMENT",
		RelatedSPDXElement: "SPDXRef-Package",
		RelationshipType:   spdx.Describes,
		Comment:            "root package",
	}, doc.Relationships[1])

	// Annotation
	require.Len(t, doc.Annotations, 1)
	annotation := doc.Annotations[0]
	assert.Equal(t, "Person: Jane Doe ()", annotation.Annotator)
	assert.Equal(t, spdx.Review, annotation.AnnotationType)
	assert.Equal(t, "SPDXRef-Package", annotation.SPDXIdentifierReference)
	assert.Equal(t, "looks good", annotation.AnnotationComment)
}

func TestParseRecordBoundaries(t *testing.T) {
	input := `PackageName: first
SPDXID: SPDXRef-first
PackageName: second
SPDXID: SPDXRef-second
`
	doc, err := Parse(input)
	require.NoError(t, err)

	require.Len(t, doc.Packages, 2)
	assert.Equal(t, "first", doc.Packages[0].PackageName)
	assert.Equal(t, "SPDXRef-first", doc.Packages[0].PackageSPDXIdentifier)
	assert.Equal(t, "second", doc.Packages[1].PackageName)
	assert.Equal(t, "SPDXRef-second", doc.Packages[1].PackageSPDXIdentifier)
}

func TestParseCreationInfoClosesAtBoundary(t *testing.T) {
	input := `DataLicense: CC0-1.0
DocumentName: demo
PackageName: demo-lib
SPDXID: SPDXRef-Package
DataLicense: MIT
`
	_, err := Parse(input)

	// The creation information record is committed at PackageName;
	// a later DataLicense must not mutate it.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside a document creation information record")
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestParseAnnotationWithEmptyValues(t *testing.T) {
	input := `Annotator:
AnnotationDate: 2024-03-02T08:30:00Z
AnnotationType: REVIEW
SPDXREF:
AnnotationComment:
`
	doc, err := Parse(input)
	require.NoError(t, err)

	// A tag seen with an empty value still counts toward the five
	// annotation fields.
	require.Len(t, doc.Annotations, 1)
	assert.Empty(t, doc.Annotations[0].Annotator)
	assert.Empty(t, doc.Annotations[0].SPDXIdentifierReference)
	assert.Equal(t, spdx.Review, doc.Annotations[0].AnnotationType)
}

func TestParseImplicitContainment(t *testing.T) {
	input := `PackageName: A
SPDXID: SPDXRef-A
FileName: f.c
SPDXID: SPDXRef-F
`
	doc, err := Parse(input)
	require.NoError(t, err)

	require.Len(t, doc.Relationships, 1)
	assert.Equal(t, spdx.Relationship{
		SPDXElementID:      "SPDXRef-A",
		RelatedSPDXElement: "SPDXRef-F",
		RelationshipType:   spdx.Contains,
	}, doc.Relationships[0])
	require.Len(t, doc.Packages, 1)
	assert.Equal(t, []string{"SPDXRef-F"}, doc.Packages[0].Files)
}

func TestParseDuplicateRelationshipsAreDeduplicated(t *testing.T) {
	input := `Relationship: SPDXRef-a CONTAINS SPDXRef-b
Relationship: SPDXRef-a CONTAINS SPDXRef-b
Relationship: SPDXRef-a DEPENDS_ON SPDXRef-b
`
	doc, err := Parse(input)
	require.NoError(t, err)

	require.Len(t, doc.Relationships, 2)
	assert.Equal(t, spdx.Contains, doc.Relationships[0].RelationshipType)
	assert.Equal(t, spdx.DependsOn, doc.Relationships[1].RelationshipType)
}

func TestParseIsIdempotent(t *testing.T) {
	first, err := Parse(sampleDocument)
	require.NoError(t, err)
	second, err := Parse(sampleDocument)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseIncompleteAnnotationIsDropped(t *testing.T) {
	input := `Annotator: Person: Jane Doe ()
AnnotationType: REVIEW
`
	doc, err := Parse(input)
	require.NoError(t, err)
	assert.Empty(t, doc.Annotations)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		sentinel    error
		errContains string
	}{
		{
			name:        "unknown tag",
			input:       "Bogus: value",
			sentinel:    errors.ErrUnknownTag,
			errContains: "unrecognized tag",
		},
		{
			name:        "package field outside package",
			input:       "PackageVersion: 1.0.0",
			sentinel:    errors.ErrInvalidInput,
			errContains: "outside a package record",
		},
		{
			name:        "file field outside file",
			input:       "FileType: SOURCE",
			sentinel:    errors.ErrInvalidInput,
			errContains: "outside a file record",
		},
		{
			name:        "snippet field after file anchor",
			input:       "SnippetSPDXID: SPDXRef-s\nFileName: ./a.go\nSnippetComment: late",
			sentinel:    errors.ErrInvalidInput,
			errContains: "outside a snippet record",
		},
		{
			name:        "malformed timestamp",
			input:       "Created: yesterday",
			sentinel:    errors.ErrInvalidInput,
			errContains: "RFC 3339",
		},
		{
			name:        "malformed license expression",
			input:       "PackageName: p\nPackageLicenseConcluded: MIT AND",
			errContains: "malformed license expression",
		},
		{
			name:        "malformed boolean",
			input:       "PackageName: p\nFilesAnalyzed: maybe",
			sentinel:    errors.ErrInvalidInput,
			errContains: "expected 'true' or 'false'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel), "error should match sentinel")
			}
		})
	}
}

func TestParseRoundTripThroughJSON(t *testing.T) {
	doc, err := Parse(sampleDocument)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.WriteJSON(&buf))

	decoded, err := spdx.Load(&buf, spdx.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}
