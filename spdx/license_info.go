package spdx

// OtherLicensingInformation describes a license found in the analyzed
// material that is not on the canonical SPDX license list. The license
// is referenced elsewhere in the document by its LicenseRef- identifier.
// https://spdx.github.io/spdx-spec/6-other-licensing-information-detected/
type OtherLicensingInformation struct {
	// LicenseIdentifier is the LicenseRef- token naming the license.
	LicenseIdentifier string `json:"licenseId" yaml:"licenseId"`

	ExtractedText string `json:"extractedText" yaml:"extractedText"`

	LicenseName string `json:"name" yaml:"name"`

	LicenseCrossReferences []string `json:"seeAlsos,omitempty" yaml:"seeAlsos,omitempty"`

	LicenseComment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// NewOtherLicensingInformation returns licensing information with the
// field placeholders the tag-value assembler builds on.
func NewOtherLicensingInformation() OtherLicensingInformation {
	return OtherLicensingInformation{
		LicenseName: NoAssertion,
	}
}
