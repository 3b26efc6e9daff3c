package tagvalue

import (
	"os"
	"strconv"

	"github.com/doubleopen-project/spdx-go/errors"
	"github.com/doubleopen-project/spdx-go/logger"
	"github.com/doubleopen-project/spdx-go/spdx"
)

// Parse lexes input and folds the atom sequence into a document. Record
// boundaries follow the tag-value grammar: a record-opening tag
// (PackageName, FileName, SnippetSPDXID, LicenseID, Relationship)
// commits the previous record of its kind, and everything still open is
// committed at end of input.
func Parse(input string) (*spdx.Document, error) {
	atoms, err := Lex(input)
	if err != nil {
		return nil, err
	}

	a := newAssembler()
	for _, atom := range atoms {
		if err := a.apply(atom); err != nil {
			return nil, err
		}
	}
	a.finish()

	logger.Logger.Debugw("assembled SPDX document",
		"packages", len(a.doc.Packages),
		"files", len(a.doc.Files),
		"relationships", len(a.doc.Relationships),
	)
	return a.doc, nil
}

// FromFile parses a tag-value document from a file.
func FromFile(path string) (*spdx.Document, error) {
	logger.Logger.Debugw("reading tag-value document", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return Parse(string(data))
}

// assembler folds atoms into a document. At most one record of each kind
// is in progress at a time; files open inside the enclosing package, so
// a package and a file can be open together.
type assembler struct {
	doc *spdx.Document

	// docOpen is true until the first atom outside the document
	// creation information field set. While open, the SPDXID tag
	// targets the document.
	docOpen bool

	pkg        *spdx.PackageInformation
	file       *spdx.FileInformation
	snippet    *spdx.Snippet
	rel        *spdx.Relationship
	license    *spdx.OtherLicensingInformation
	annotation annotationBuilder

	seenRelationships map[relationshipKey]struct{}
}

func newAssembler() *assembler {
	creationInformation := spdx.NewDocumentCreationInformation()
	return &assembler{
		doc:               &spdx.Document{DocumentCreationInformation: creationInformation},
		docOpen:           true,
		seenRelationships: make(map[relationshipKey]struct{}),
	}
}

// creationInfoTags is the field set of the document creation information
// record. The first atom outside it closes the record.
var creationInfoTags = map[AtomKind]struct{}{
	"SPDXVersion":         {},
	"DataLicense":         {},
	"SPDXID":              {},
	"DocumentName":        {},
	"DocumentNamespace":   {},
	"ExternalDocumentRef": {},
	"LicenseListVersion":  {},
	"Creator":             {},
	"Created":             {},
	"CreatorComment":      {},
	"DocumentComment":     {},
}

func (a *assembler) apply(atom Atom) error {
	if atom.Kind == KindComment {
		return nil
	}
	if a.annotation.complete() {
		a.doc.Annotations = append(a.doc.Annotations, a.annotation.build())
		a.annotation = annotationBuilder{}
	}
	if _, isCreationInfo := creationInfoTags[atom.Kind]; isCreationInfo {
		// The creation information record is committed at the first
		// atom outside its field set; it must not mutate afterwards.
		// SPDXID is exempt: it is shared with package and file records.
		if !a.docOpen && atom.Kind != "SPDXID" {
			return errNoOpenRecord(atom, "document creation information")
		}
	} else {
		a.docOpen = false
	}

	ci := &a.doc.DocumentCreationInformation
	switch atom.Kind {

	// Document creation information
	case "SPDXVersion":
		ci.SPDXVersion = atom.Value
	case "DataLicense":
		ci.DataLicense = atom.Value
	case "DocumentName":
		ci.DocumentName = atom.Value
	case "DocumentNamespace":
		ci.DocumentNamespace = atom.Value
	case "ExternalDocumentRef":
		ci.ExternalDocumentReferences = append(ci.ExternalDocumentReferences, *atom.ExternalDocumentReference)
	case "LicenseListVersion":
		ci.CreationInfo.LicenseListVersion = atom.Value
	case "Creator":
		ci.CreationInfo.Creators = append(ci.CreationInfo.Creators, atom.Value)
	case "Created":
		created, err := parseTimestamp(atom)
		if err != nil {
			return err
		}
		ci.CreationInfo.Created = created
	case "CreatorComment":
		ci.CreationInfo.CreatorComment = atom.Value
	case "DocumentComment":
		ci.DocumentComment = atom.Value

	case "SPDXID":
		return a.applySPDXID(atom)

	// Package information
	case "PackageName":
		a.commitSnippet()
		a.commitFile()
		a.commitPackage()
		pkg := spdx.NewPackageInformation()
		pkg.PackageName = atom.Value
		a.pkg = &pkg
	case "PackageVersion":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageVersion = atom.Value
	case "PackageFileName":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageFileName = atom.Value
	case "PackageSupplier":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageSupplier = atom.Value
	case "PackageOriginator":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageOriginator = atom.Value
	case "PackageDownloadLocation":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageDownloadLocation = atom.Value
	case "FilesAnalyzed":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		analyzed, err := strconv.ParseBool(atom.Value)
		if err != nil {
			return newParseError(
				errors.Wrapf(errors.ErrInvalidInput, "boolean %q", atom.Value),
				ErrorKindSubGrammar,
				"expected 'true' or 'false'",
				atom.Line, string(atom.Kind), atom.Value,
			)
		}
		a.pkg.FilesAnalyzed = &analyzed
	case "PackageVerificationCode":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageVerificationCode = atom.VerificationCode
	case "PackageChecksum":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageChecksums = append(a.pkg.PackageChecksums, *atom.Checksum)
	case "PackageHomePage":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageHomePage = atom.Value
	case "PackageSourceInfo":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.SourceInformation = atom.Value
	case "PackageLicenseConcluded":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		expr, err := parseLicenseExpression(atom)
		if err != nil {
			return err
		}
		a.pkg.ConcludedLicense = expr
	case "PackageLicenseInfoFromFiles":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		value, err := validateLicenseReference(atom)
		if err != nil {
			return err
		}
		a.pkg.AllLicensesFromFiles = append(a.pkg.AllLicensesFromFiles, value)
	case "PackageLicenseDeclared":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		expr, err := parseLicenseExpression(atom)
		if err != nil {
			return err
		}
		a.pkg.DeclaredLicense = expr
	case "PackageLicenseComments":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.CommentsOnLicense = atom.Value
	case "PackageCopyrightText":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.CopyrightText = atom.Value
	case "PackageSummary":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageSummary = atom.Value
	case "PackageDescription":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageDescription = atom.Value
	case "PackageComment":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageComment = atom.Value
	case "ExternalRef":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.ExternalReferences = append(a.pkg.ExternalReferences, *atom.ExternalPackageReference)
	case "ExternalRefComment":
		if a.pkg == nil || len(a.pkg.ExternalReferences) == 0 {
			return errNoOpenRecord(atom, "package external reference")
		}
		a.pkg.ExternalReferences[len(a.pkg.ExternalReferences)-1].ReferenceComment = atom.Value
	case "PackageAttributionText":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PackageAttributionTexts = append(a.pkg.PackageAttributionTexts, atom.Value)
	case "PrimaryPackagePurpose":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.PrimaryPackagePurpose = atom.Value
	case "BuiltDate":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.BuiltDate = atom.Value
	case "ReleaseDate":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.ReleaseDate = atom.Value
	case "ValidUntilDate":
		if a.pkg == nil {
			return errNoOpenRecord(atom, "package")
		}
		a.pkg.ValidUntilDate = atom.Value

	// File information
	case "FileName":
		a.commitSnippet()
		a.commitFile()
		file := spdx.NewFileInformation()
		file.FileName = atom.Value
		a.file = &file
	case "FileType":
		if a.file == nil {
			return errNoOpenRecord(atom, "file")
		}
		a.file.FileTypes = append(a.file.FileTypes, atom.FileType)
	case "FileChecksum":
		if a.file == nil {
			return errNoOpenRecord(atom, "file")
		}
		a.file.FileChecksums = append(a.file.FileChecksums, *atom.Checksum)
	case "LicenseConcluded":
		if a.file == nil {
			return errNoOpenRecord(atom, "file")
		}
		expr, err := parseLicenseExpression(atom)
		if err != nil {
			return err
		}
		a.file.ConcludedLicense = expr
	case "LicenseInfoInFile":
		if a.file == nil {
			return errNoOpenRecord(atom, "file")
		}
		value, err := validateLicenseReference(atom)
		if err != nil {
			return err
		}
		a.file.LicenseInfoInFiles = append(a.file.LicenseInfoInFiles, value)
	case "LicenseComments":
		if a.file == nil {
			return errNoOpenRecord(atom, "file")
		}
		a.file.CommentsOnLicense = atom.Value
	case "FileCopyrightText":
		if a.file == nil {
			return errNoOpenRecord(atom, "file")
		}
		a.file.CopyrightText = atom.Value
	case "FileComment":
		if a.file == nil {
			return errNoOpenRecord(atom, "file")
		}
		a.file.FileComment = atom.Value
	case "FileNotice":
		if a.file == nil {
			return errNoOpenRecord(atom, "file")
		}
		a.file.FileNotice = atom.Value
	case "FileContributor":
		if a.file == nil {
			return errNoOpenRecord(atom, "file")
		}
		a.file.FileContributors = append(a.file.FileContributors, atom.Value)
	case "FileAttributionText":
		if a.file == nil {
			return errNoOpenRecord(atom, "file")
		}
		a.file.FileAttributionTexts = append(a.file.FileAttributionTexts, atom.Value)

	// Snippet information
	case "SnippetSPDXID":
		a.commitSnippet()
		a.snippet = &spdx.Snippet{SnippetSPDXIdentifier: atom.Value}
	case "SnippetFromFileSPDXID":
		if a.snippet == nil {
			return errNoOpenRecord(atom, "snippet")
		}
		a.snippet.SnippetFromFileSPDXIdentifier = atom.Value
	case "SnippetByteRange":
		if a.snippet == nil {
			return errNoOpenRecord(atom, "snippet")
		}
		start := spdx.NewBytePointer(atom.Range.Start)
		end := spdx.NewBytePointer(atom.Range.End)
		start.Reference = a.snippet.SnippetFromFileSPDXIdentifier
		end.Reference = a.snippet.SnippetFromFileSPDXIdentifier
		a.snippet.Ranges = append(a.snippet.Ranges, spdx.NewRange(start, end))
	case "SnippetLineRange":
		if a.snippet == nil {
			return errNoOpenRecord(atom, "snippet")
		}
		start := spdx.NewLinePointer(atom.Range.Start)
		end := spdx.NewLinePointer(atom.Range.End)
		start.Reference = a.snippet.SnippetFromFileSPDXIdentifier
		end.Reference = a.snippet.SnippetFromFileSPDXIdentifier
		a.snippet.Ranges = append(a.snippet.Ranges, spdx.NewRange(start, end))
	case "SnippetLicenseConcluded":
		if a.snippet == nil {
			return errNoOpenRecord(atom, "snippet")
		}
		expr, err := parseLicenseExpression(atom)
		if err != nil {
			return err
		}
		a.snippet.ConcludedLicense = expr
	case "LicenseInfoInSnippet":
		if a.snippet == nil {
			return errNoOpenRecord(atom, "snippet")
		}
		value, err := validateLicenseReference(atom)
		if err != nil {
			return err
		}
		a.snippet.LicenseInfoInSnippets = append(a.snippet.LicenseInfoInSnippets, value)
	case "SnippetLicenseComments":
		if a.snippet == nil {
			return errNoOpenRecord(atom, "snippet")
		}
		a.snippet.CommentsOnLicense = atom.Value
	case "SnippetCopyrightText":
		if a.snippet == nil {
			return errNoOpenRecord(atom, "snippet")
		}
		a.snippet.CopyrightText = atom.Value
	case "SnippetComment":
		if a.snippet == nil {
			return errNoOpenRecord(atom, "snippet")
		}
		a.snippet.SnippetComment = atom.Value
	case "SnippetName":
		if a.snippet == nil {
			return errNoOpenRecord(atom, "snippet")
		}
		a.snippet.SnippetName = atom.Value
	case "SnippetAttributionText":
		if a.snippet == nil {
			return errNoOpenRecord(atom, "snippet")
		}
		a.snippet.SnippetAttributionText = atom.Value

	// Other licensing information detected
	case "LicenseID":
		a.commitLicenseInfo()
		license := spdx.NewOtherLicensingInformation()
		license.LicenseIdentifier = atom.Value
		a.license = &license
	case "ExtractedText":
		if a.license == nil {
			return errNoOpenRecord(atom, "license")
		}
		a.license.ExtractedText = atom.Value
	case "LicenseName":
		if a.license == nil {
			return errNoOpenRecord(atom, "license")
		}
		a.license.LicenseName = atom.Value
	case "LicenseCrossReference":
		if a.license == nil {
			return errNoOpenRecord(atom, "license")
		}
		a.license.LicenseCrossReferences = append(a.license.LicenseCrossReferences, atom.Value)
	case "LicenseComment":
		if a.license == nil {
			return errNoOpenRecord(atom, "license")
		}
		a.license.LicenseComment = atom.Value

	// Relationship
	case "Relationship":
		a.commitRelationship()
		rel := *atom.Relationship
		a.rel = &rel
	case "RelationshipComment":
		if a.rel == nil {
			return errNoOpenRecord(atom, "relationship")
		}
		a.rel.Comment = atom.Value

	// Annotation
	case "Annotator":
		a.annotation.annotator = atom.Value
		a.annotation.hasAnnotator = true
	case "AnnotationDate":
		date, err := parseTimestamp(atom)
		if err != nil {
			return err
		}
		a.annotation.date = date
		a.annotation.hasDate = true
	case "AnnotationType":
		a.annotation.kind = atom.AnnotationType
		a.annotation.hasKind = true
	case "SPDXREF":
		a.annotation.reference = atom.Value
		a.annotation.hasReference = true
	case "AnnotationComment":
		a.annotation.comment = atom.Value
		a.annotation.hasComment = true

	default:
		return newParseError(
			errors.Wrapf(errors.ErrUnknownTag, "tag %q", atom.Kind),
			ErrorKindUnknownTag,
			"unhandled tag",
			atom.Line, string(atom.Kind), atom.Value,
		)
	}
	return nil
}

// applySPDXID routes the shared SPDXID tag. While the creation
// information record is open it names the document; afterwards it names
// the open file or package, on first assignment only. Naming a file
// inside an open package also records the implicit containment.
func (a *assembler) applySPDXID(atom Atom) error {
	switch {
	case a.docOpen:
		a.doc.SPDXIdentifier = atom.Value
	case a.file != nil && a.file.FileSPDXIdentifier == spdx.NoAssertion:
		a.file.FileSPDXIdentifier = atom.Value
		if a.pkg != nil {
			a.pkg.Files = append(a.pkg.Files, atom.Value)
			a.insertRelationship(spdx.NewRelationship(
				a.pkg.PackageSPDXIdentifier, atom.Value, spdx.Contains))
		}
	case a.pkg != nil && a.pkg.PackageSPDXIdentifier == spdx.NoAssertion:
		a.pkg.PackageSPDXIdentifier = atom.Value
	default:
		return errNoOpenRecord(atom, "package or file")
	}
	return nil
}

// insertRelationship appends a relationship unless an equal one was
// already recorded. Input order is preserved.
func (a *assembler) insertRelationship(rel spdx.Relationship) {
	key := relationshipKey{
		from: rel.SPDXElementID,
		to:   rel.RelatedSPDXElement,
		kind: rel.RelationshipType,
	}
	if _, seen := a.seenRelationships[key]; seen {
		return
	}
	a.seenRelationships[key] = struct{}{}
	a.doc.Relationships = append(a.doc.Relationships, rel)
}

func (a *assembler) commitPackage() {
	if a.pkg == nil {
		return
	}
	a.doc.Packages = append(a.doc.Packages, *a.pkg)
	a.pkg = nil
}

func (a *assembler) commitFile() {
	if a.file == nil {
		return
	}
	a.doc.Files = append(a.doc.Files, *a.file)
	a.file = nil
}

func (a *assembler) commitSnippet() {
	if a.snippet == nil {
		return
	}
	a.doc.Snippets = append(a.doc.Snippets, *a.snippet)
	a.snippet = nil
}

func (a *assembler) commitRelationship() {
	if a.rel == nil {
		return
	}
	a.insertRelationship(*a.rel)
	a.rel = nil
}

func (a *assembler) commitLicenseInfo() {
	if a.license == nil {
		return
	}
	a.doc.OtherLicensingInformation = append(a.doc.OtherLicensingInformation, *a.license)
	a.license = nil
}

// finish commits everything still open at end of input. An incomplete
// annotation is dropped.
func (a *assembler) finish() {
	a.commitSnippet()
	a.commitFile()
	a.commitPackage()
	a.commitRelationship()
	a.commitLicenseInfo()
	if a.annotation.complete() {
		a.doc.Annotations = append(a.doc.Annotations, a.annotation.build())
	}
}
