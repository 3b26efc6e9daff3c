package spdx

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doubleopen-project/spdx-go/expression"
)

func mustParse(t *testing.T, expr string) *expression.Expression {
	t.Helper()
	parsed, err := expression.Parse(expr)
	require.NoError(t, err)
	return parsed
}

func testDocument(t *testing.T) *Document {
	t.Helper()
	doc := New("demo")
	doc.Packages = []PackageInformation{
		{
			PackageName:             "demo-lib",
			PackageSPDXIdentifier:   "SPDXRef-Package",
			PackageDownloadLocation: NoAssertion,
			Files:                   []string{"SPDXRef-File-A", "SPDXRef-File-B"},
		},
	}
	doc.Files = []FileInformation{
		{
			FileName:           "./a.go",
			FileSPDXIdentifier: "SPDXRef-File-A",
			FileChecksums: []Checksum{
				NewChecksum(SHA1, "AAAA1111"),
			},
			ConcludedLicense: mustParse(t, "MIT OR Apache-2.0"),
		},
		{
			FileName:           "./b.go",
			FileSPDXIdentifier: "SPDXRef-File-B",
			FileChecksums: []Checksum{
				NewChecksum(SHA1, "aaaa1111"),
				NewChecksum(SHA256, "bbbb2222"),
			},
			ConcludedLicense: mustParse(t, "MIT"),
		},
		{
			FileName:           "./c.go",
			FileSPDXIdentifier: "SPDXRef-File-C",
			ConcludedLicense:   mustParse(t, "NOASSERTION"),
		},
	}
	doc.Relationships = []Relationship{
		NewRelationship("SPDXRef-DOCUMENT", "SPDXRef-Package", Describes),
		NewRelationship("SPDXRef-Package", "SPDXRef-File-A", Contains),
		NewRelationship("SPDXRef-Package", "SPDXRef-File-B", Contains),
	}
	return doc
}

func TestNew(t *testing.T) {
	doc := New("demo")

	assert.Equal(t, "SPDX-2.2", doc.SPDXVersion)
	assert.Equal(t, "CC0-1.0", doc.DataLicense)
	assert.Equal(t, "SPDXRef-DOCUMENT", doc.SPDXIdentifier)
	assert.Equal(t, "demo", doc.DocumentName)
	assert.True(t, strings.HasPrefix(doc.DocumentNamespace, "http://spdx.org/spdxdocs/demo-"))

	// Two documents must not share a namespace.
	other := New("demo")
	assert.NotEqual(t, doc.DocumentNamespace, other.DocumentNamespace)
}

func TestLicenseIDs(t *testing.T) {
	doc := testDocument(t)

	assert.Equal(t, []string{"Apache-2.0", "MIT"}, doc.LicenseIDs())
}

func TestUniqueFileHashes(t *testing.T) {
	doc := testDocument(t)

	// Checksum values are lowercased on construction, so the two SHA1
	// values collapse into one.
	assert.Equal(t, []string{"aaaa1111"}, doc.UniqueFileHashes(SHA1))
	assert.Equal(t, []string{"bbbb2222"}, doc.UniqueFileHashes(SHA256))
	assert.Empty(t, doc.UniqueFileHashes(MD5))
}

func TestFilesForPackage(t *testing.T) {
	doc := testDocument(t)

	files := doc.FilesForPackage("SPDXRef-Package")
	require.Len(t, files, 2)
	assert.Equal(t, "./a.go", files[0].File.FileName)
	assert.Equal(t, Contains, files[0].Relationship.RelationshipType)
	assert.Equal(t, "./b.go", files[1].File.FileName)

	assert.Empty(t, doc.FilesForPackage("SPDXRef-Nothing"))
}

func TestRelationshipsForID(t *testing.T) {
	doc := testDocument(t)

	outgoing := doc.RelationshipsForID("SPDXRef-Package")
	require.Len(t, outgoing, 2)
	assert.Equal(t, "SPDXRef-File-A", outgoing[0].RelatedSPDXElement)

	incoming := doc.RelationshipsForRelatedID("SPDXRef-Package")
	require.Len(t, incoming, 1)
	assert.Equal(t, "SPDXRef-DOCUMENT", incoming[0].SPDXElementID)
}

func TestJSONRoundTrip(t *testing.T) {
	doc := testDocument(t)
	doc.CreationInfo.Creators = []string{"Tool: spdx-go"}
	doc.CreationInfo.Created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, doc.WriteJSON(&buf))

	encoded := buf.String()
	assert.Contains(t, encoded, `"spdxVersion": "SPDX-2.2"`)
	assert.Contains(t, encoded, `"SPDXID": "SPDXRef-DOCUMENT"`)
	assert.Contains(t, encoded, `"licenseConcluded": "MIT OR Apache-2.0"`)

	decoded, err := Load(&buf, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestYAMLRoundTrip(t *testing.T) {
	doc := testDocument(t)
	doc.CreationInfo.Creators = []string{"Tool: spdx-go"}
	doc.CreationInfo.Created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, doc.WriteYAML(&buf))

	// Creation information is inlined at the top level.
	encoded := buf.String()
	assert.Contains(t, encoded, "spdxVersion: SPDX-2.2")

	decoded, err := Load(&buf, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, doc.DocumentName, decoded.DocumentName)
	assert.Equal(t, doc.Packages[0].PackageName, decoded.Packages[0].PackageName)
	require.NotNil(t, decoded.Files[0].ConcludedLicense)
	assert.Equal(t, "MIT OR Apache-2.0", decoded.Files[0].ConcludedLicense.String())
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, err := Load(strings.NewReader("{}"), Format("xml"))
	assert.Error(t, err)
}

func TestParseRelationshipType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RelationshipType
		wantErr  bool
	}{
		{name: "exact", input: "CONTAINS", expected: Contains},
		{name: "lowercase", input: "contains", expected: Contains},
		{name: "mixed case", input: "Depends_On", expected: DependsOn},
		{name: "unknown", input: "KNOWS_ABOUT", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseRelationshipType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestRelationshipEqualIgnoresComment(t *testing.T) {
	a := NewRelationship("SPDXRef-a", "SPDXRef-b", Contains)
	b := a
	b.Comment = "different"

	assert.True(t, a.Equal(b))

	c := NewRelationship("SPDXRef-a", "SPDXRef-b", DependsOn)
	assert.False(t, a.Equal(c))
}

func TestFileChecksumLookups(t *testing.T) {
	file := FileInformation{
		FileChecksums: []Checksum{NewChecksum(SHA1, "ABCDEF")},
	}

	value, ok := file.Checksum(SHA1)
	require.True(t, ok)
	assert.Equal(t, "abcdef", value, "checksum values are stored lowercase")

	_, ok = file.Checksum(SHA256)
	assert.False(t, ok)

	assert.True(t, file.EqualByHash(SHA1, "ABCDEF"))
	assert.True(t, file.EqualByHash(SHA1, "abcdef"))
	assert.False(t, file.EqualByHash(SHA1, "123456"))
}
