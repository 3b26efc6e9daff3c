package spdx

import (
	"github.com/doubleopen-project/spdx-go/errors"
	"github.com/doubleopen-project/spdx-go/expression"
)

// PackageInformation describes one package analyzed in the document.
// https://spdx.github.io/spdx-spec/3-package-information/
type PackageInformation struct {
	PackageName string `json:"name" yaml:"name"`

	PackageSPDXIdentifier string `json:"SPDXID" yaml:"SPDXID"`

	PackageVersion string `json:"versionInfo,omitempty" yaml:"versionInfo,omitempty"`

	PackageFileName string `json:"packageFileName,omitempty" yaml:"packageFileName,omitempty"`

	PackageSupplier string `json:"supplier,omitempty" yaml:"supplier,omitempty"`

	PackageOriginator string `json:"originator,omitempty" yaml:"originator,omitempty"`

	PackageDownloadLocation string `json:"downloadLocation" yaml:"downloadLocation"`

	FilesAnalyzed *bool `json:"filesAnalyzed,omitempty" yaml:"filesAnalyzed,omitempty"`

	PackageVerificationCode *PackageVerificationCode `json:"packageVerificationCode,omitempty" yaml:"packageVerificationCode,omitempty"`

	PackageChecksums []Checksum `json:"checksums,omitempty" yaml:"checksums,omitempty"`

	PackageHomePage string `json:"homepage,omitempty" yaml:"homepage,omitempty"`

	SourceInformation string `json:"sourceInfo,omitempty" yaml:"sourceInfo,omitempty"`

	ConcludedLicense *expression.Expression `json:"licenseConcluded,omitempty" yaml:"licenseConcluded,omitempty"`

	AllLicensesFromFiles []string `json:"licenseInfoFromFiles,omitempty" yaml:"licenseInfoFromFiles,omitempty"`

	DeclaredLicense *expression.Expression `json:"licenseDeclared,omitempty" yaml:"licenseDeclared,omitempty"`

	CommentsOnLicense string `json:"licenseComments,omitempty" yaml:"licenseComments,omitempty"`

	CopyrightText string `json:"copyrightText,omitempty" yaml:"copyrightText,omitempty"`

	PackageSummary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	PackageDescription string `json:"description,omitempty" yaml:"description,omitempty"`

	PackageComment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	ExternalReferences []ExternalPackageReference `json:"externalRefs,omitempty" yaml:"externalRefs,omitempty"`

	PackageAttributionTexts []string `json:"attributionTexts,omitempty" yaml:"attributionTexts,omitempty"`

	// Files holds the SPDX identifiers of the files the package has.
	Files []string `json:"hasFiles,omitempty" yaml:"hasFiles,omitempty"`

	Annotations []Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`

	BuiltDate string `json:"builtDate,omitempty" yaml:"builtDate,omitempty"`

	ReleaseDate string `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`

	ValidUntilDate string `json:"validUntilDate,omitempty" yaml:"validUntilDate,omitempty"`

	PrimaryPackagePurpose string `json:"primaryPackagePurpose,omitempty" yaml:"primaryPackagePurpose,omitempty"`
}

// NewPackageInformation returns package information with the field
// placeholders the tag-value assembler builds on.
func NewPackageInformation() PackageInformation {
	return PackageInformation{
		PackageName:             NoAssertion,
		PackageSPDXIdentifier:   NoAssertion,
		PackageDownloadLocation: NoAssertion,
	}
}

// PackageVerificationCode verifies the file contents of a package.
// https://spdx.github.io/spdx-spec/3-package-information/#39-package-verification-code
type PackageVerificationCode struct {
	Value string `json:"packageVerificationCodeValue" yaml:"packageVerificationCodeValue"`

	// Excludes lists files excluded from the verification code
	// calculation, for example the SPDX file itself.
	Excludes []string `json:"packageVerificationCodeExcludedFiles,omitempty" yaml:"packageVerificationCodeExcludedFiles,omitempty"`
}

// ExternalPackageReferenceCategory is the category of an external
// package reference.
type ExternalPackageReferenceCategory string

const (
	CategorySecurity       ExternalPackageReferenceCategory = "SECURITY"
	CategoryPackageManager ExternalPackageReferenceCategory = "PACKAGE-MANAGER"
	CategoryPersistentID   ExternalPackageReferenceCategory = "PERSISTENT-ID"
	CategoryOther          ExternalPackageReferenceCategory = "OTHER"
)

// externalPackageReferenceCategories is the authoritative token set for
// external reference categories.
var externalPackageReferenceCategories = map[string]ExternalPackageReferenceCategory{
	"SECURITY":        CategorySecurity,
	"PACKAGE-MANAGER": CategoryPackageManager,
	"PERSISTENT-ID":   CategoryPersistentID,
	"OTHER":           CategoryOther,
}

// ParseExternalPackageReferenceCategory matches a category token against
// the fixed token set.
func ParseExternalPackageReferenceCategory(s string) (ExternalPackageReferenceCategory, error) {
	if category, ok := externalPackageReferenceCategories[s]; ok {
		return category, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidInput, "unknown external reference category %q", s)
}

// ExternalPackageReference points from a package to a resource in an
// external system, such as a CPE or a purl.
type ExternalPackageReference struct {
	ReferenceCategory ExternalPackageReferenceCategory `json:"referenceCategory" yaml:"referenceCategory"`

	ReferenceType string `json:"referenceType" yaml:"referenceType"`

	ReferenceLocator string `json:"referenceLocator" yaml:"referenceLocator"`

	ReferenceComment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}
