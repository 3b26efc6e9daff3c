package spdx

import (
	"time"
)

// Sentinel values used throughout the SPDX data model.
const (
	// NoAssertion means no claim is made about the field.
	NoAssertion = "NOASSERTION"
	// None means the field explicitly has no value.
	None = "NONE"
)

// DocumentCreationInformation describes the document itself.
// https://spdx.github.io/spdx-spec/2-document-creation-information/
type DocumentCreationInformation struct {
	SPDXVersion string `json:"spdxVersion" yaml:"spdxVersion"`

	DataLicense string `json:"dataLicense" yaml:"dataLicense"`

	SPDXIdentifier string `json:"SPDXID" yaml:"SPDXID"`

	DocumentName string `json:"name" yaml:"name"`

	DocumentNamespace string `json:"documentNamespace" yaml:"documentNamespace"`

	ExternalDocumentReferences []ExternalDocumentReference `json:"externalDocumentRefs,omitempty" yaml:"externalDocumentRefs,omitempty"`

	CreationInfo CreationInfo `json:"creationInfo" yaml:"creationInfo"`

	DocumentComment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	DocumentDescribes []string `json:"documentDescribes,omitempty" yaml:"documentDescribes,omitempty"`
}

// NewDocumentCreationInformation returns creation information pre-seeded
// with the format defaults: version, data license, root identifier and a
// namespace placeholder.
func NewDocumentCreationInformation() DocumentCreationInformation {
	return DocumentCreationInformation{
		SPDXVersion:       "SPDX-2.2",
		DataLicense:       "CC0-1.0",
		SPDXIdentifier:    "SPDXRef-DOCUMENT",
		DocumentName:      NoAssertion,
		DocumentNamespace: NoAssertion,
	}
}

// CreationInfo records who created the document and when.
type CreationInfo struct {
	LicenseListVersion string `json:"licenseListVersion,omitempty" yaml:"licenseListVersion,omitempty"`

	Creators []string `json:"creators" yaml:"creators"`

	// Created is the creation timestamp. The zero value is used when
	// the input carries no Created tag, keeping parsing deterministic.
	Created time.Time `json:"created" yaml:"created"`

	CreatorComment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// ExternalDocumentReference identifies an SPDX document living outside
// this one.
type ExternalDocumentReference struct {
	// IDString is the DocumentRef- identifier without its prefix.
	IDString string `json:"externalDocumentId" yaml:"externalDocumentId"`

	SPDXDocumentURI string `json:"spdxDocument" yaml:"spdxDocument"`

	Checksum Checksum `json:"checksum" yaml:"checksum"`
}

// NewExternalDocumentReference creates a new external document
// reference.
func NewExternalDocumentReference(idString, documentURI string, checksum Checksum) ExternalDocumentReference {
	return ExternalDocumentReference{
		IDString:        idString,
		SPDXDocumentURI: documentURI,
		Checksum:        checksum,
	}
}
