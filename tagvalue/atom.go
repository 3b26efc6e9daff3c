// Package tagvalue parses the line-oriented tag-value representation of
// SPDX documents.
//
// Parsing happens in two stages. The lexer splits raw text into a flat,
// ordered sequence of typed atoms, one per recognized "Tag: value" line,
// running tag-specific sub-grammars inline (checksums, numeric ranges,
// relationship triples, enumerations). The assembler then folds the atom
// sequence into a spdx.Document, tracking one in-progress builder per
// record kind and committing builders at record boundaries.
//
// The whole pipeline is a single synchronous pass: any grammar or
// semantic error aborts the parse and no partial document is returned.
package tagvalue

import (
	"sort"

	"github.com/doubleopen-project/spdx-go/spdx"
)

// AtomKind names one recognized line variant. The kinds of tag-backed
// atoms equal their tag name; KindComment is produced by '#' comment
// lines, which have no tag.
type AtomKind string

// Comment lines are inert: they never open or close a record builder.
const KindComment AtomKind = "TVComment"

// Atom is one recognized line of input. Atoms are immutable and
// transient: they exist only for the duration of a single parse, owned
// by the lexer until consumed by the assembler. Value carries the
// payload for text-valued tags; tags with a sub-grammar populate the
// corresponding typed field instead.
type Atom struct {
	Kind AtomKind
	Line int // 1-based input line the atom started on

	Value                     string
	Checksum                  *spdx.Checksum
	Range                     *AtomRange
	Relationship              *spdx.Relationship
	ExternalDocumentReference *spdx.ExternalDocumentReference
	ExternalPackageReference  *spdx.ExternalPackageReference
	VerificationCode          *spdx.PackageVerificationCode
	FileType                  spdx.FileType
	AnnotationType            spdx.AnnotationType
}

// AtomRange is a start:end pair from a snippet range tag.
type AtomRange struct {
	Start int
	End   int
}

// valueParser converts the value part of a recognized tag-value line
// into the atom's typed payload.
type valueParser func(atom *Atom, value string) error

// textValue is the sub-parser for tags whose value is plain text.
func textValue(atom *Atom, value string) error {
	atom.Value = value
	return nil
}

// tagTable is the authoritative table of recognized tags. It is the
// single mapping from tag name to atom constructor, shared by the lexer
// and the tests.
var tagTable = map[string]valueParser{
	// Document creation information
	"SPDXVersion":         textValue,
	"DataLicense":         textValue,
	"SPDXID":              textValue,
	"DocumentName":        textValue,
	"DocumentNamespace":   textValue,
	"ExternalDocumentRef": externalDocumentRefValue,
	"LicenseListVersion":  textValue,
	"Creator":             textValue,
	"Created":             textValue,
	"CreatorComment":      textValue,
	"DocumentComment":     textValue,

	// Package information
	"PackageName":                 textValue,
	"PackageVersion":              textValue,
	"PackageFileName":             textValue,
	"PackageSupplier":             textValue,
	"PackageOriginator":           textValue,
	"PackageDownloadLocation":     textValue,
	"FilesAnalyzed":               textValue,
	"PackageVerificationCode":     verificationCodeValue,
	"PackageChecksum":             checksumValue,
	"PackageHomePage":             textValue,
	"PackageSourceInfo":           textValue,
	"PackageLicenseConcluded":     textValue,
	"PackageLicenseInfoFromFiles": textValue,
	"PackageLicenseDeclared":      textValue,
	"PackageLicenseComments":      textValue,
	"PackageCopyrightText":        textValue,
	"PackageSummary":              textValue,
	"PackageDescription":          textValue,
	"PackageComment":              textValue,
	"ExternalRef":                 externalPackageRefValue,
	"ExternalRefComment":          textValue,
	"PackageAttributionText":      textValue,
	"PrimaryPackagePurpose":       textValue,
	"BuiltDate":                   textValue,
	"ReleaseDate":                 textValue,
	"ValidUntilDate":              textValue,

	// File information
	"FileName":            textValue,
	"FileType":            fileTypeValue,
	"FileChecksum":        checksumValue,
	"LicenseConcluded":    textValue,
	"LicenseInfoInFile":   textValue,
	"LicenseComments":     textValue,
	"FileCopyrightText":   textValue,
	"FileComment":         textValue,
	"FileNotice":          textValue,
	"FileContributor":     textValue,
	"FileAttributionText": textValue,

	// Snippet information
	"SnippetSPDXID":           textValue,
	"SnippetFromFileSPDXID":   textValue,
	"SnippetByteRange":        rangeValue,
	"SnippetLineRange":        rangeValue,
	"SnippetLicenseConcluded": textValue,
	"LicenseInfoInSnippet":    textValue,
	"SnippetLicenseComments":  textValue,
	"SnippetCopyrightText":    textValue,
	"SnippetComment":          textValue,
	"SnippetName":             textValue,
	"SnippetAttributionText":  textValue,

	// Other licensing information detected
	"LicenseID":             textValue,
	"ExtractedText":         textValue,
	"LicenseName":           textValue,
	"LicenseCrossReference": textValue,
	"LicenseComment":        textValue,

	// Relationship
	"Relationship":        relationshipValue,
	"RelationshipComment": textValue,

	// Annotation
	"Annotator":         textValue,
	"AnnotationDate":    textValue,
	"AnnotationType":    annotationTypeValue,
	"SPDXREF":           textValue,
	"AnnotationComment": textValue,
}

// RecognizedTags returns the sorted tag names of the recognized tag
// table.
func RecognizedTags() []string {
	tags := make([]string, 0, len(tagTable))
	for tag := range tagTable {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
