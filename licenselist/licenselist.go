// Package licenselist models the canonical SPDX license list and
// fetches it from the license-list-data repository.
package licenselist

import (
	"github.com/Masterminds/semver/v3"
)

// LicenseList is one release of the SPDX license list with its
// exceptions.
type LicenseList struct {
	// LicenseListVersion is the release version, for example "3.21".
	LicenseListVersion string `json:"licenseListVersion"`

	Licenses []License `json:"licenses"`

	Exceptions []Exception `json:"exceptions,omitempty"`

	ReleaseDate string `json:"releaseDate"`
}

// License is one entry of the license list.
type License struct {
	// LicenseID is the canonical short identifier, for example
	// "MIT" or "GPL-2.0-only".
	LicenseID string `json:"licenseId"`

	Name string `json:"name"`

	Reference string `json:"reference"`

	DetailsURL string `json:"detailsUrl"`

	ReferenceNumber int `json:"referenceNumber"`

	SeeAlso []string `json:"seeAlso,omitempty"`

	IsOSIApproved bool `json:"isOsiApproved"`

	IsDeprecatedLicenseID bool `json:"isDeprecatedLicenseId"`

	IsFSFLibre bool `json:"isFsfLibre,omitempty"`
}

// Exception is one license exception of the license list.
type Exception struct {
	// LicenseExceptionID is the canonical short identifier, for
	// example "Classpath-exception-2.0".
	LicenseExceptionID string `json:"licenseExceptionId"`

	Name string `json:"name"`

	Reference string `json:"reference"`

	DetailsURL string `json:"detailsUrl"`

	ReferenceNumber int `json:"referenceNumber"`

	SeeAlso []string `json:"seeAlso,omitempty"`

	IsDeprecatedLicenseID bool `json:"isDeprecatedLicenseId"`
}

// IncludesLicense reports whether the list carries a non-deprecated
// license with the given identifier.
func (l *LicenseList) IncludesLicense(licenseID string) bool {
	for i := range l.Licenses {
		license := &l.Licenses[i]
		if !license.IsDeprecatedLicenseID && license.LicenseID == licenseID {
			return true
		}
	}
	return false
}

// IncludesException reports whether the list carries a non-deprecated
// exception with the given identifier.
func (l *LicenseList) IncludesException(exceptionID string) bool {
	for i := range l.Exceptions {
		exception := &l.Exceptions[i]
		if !exception.IsDeprecatedLicenseID && exception.LicenseExceptionID == exceptionID {
			return true
		}
	}
	return false
}

// AtLeastVersion reports whether the list release is the given version
// or newer. Unparseable versions compare as false.
func (l *LicenseList) AtLeastVersion(version string) bool {
	have, err := semver.NewVersion(l.LicenseListVersion)
	if err != nil {
		return false
	}
	want, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return !have.LessThan(want)
}
