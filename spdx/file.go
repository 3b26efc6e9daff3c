package spdx

import (
	"strings"

	"github.com/doubleopen-project/spdx-go/errors"
	"github.com/doubleopen-project/spdx-go/expression"
)

// FileInformation describes one file analyzed in the document.
// https://spdx.github.io/spdx-spec/4-file-information/
type FileInformation struct {
	FileName string `json:"fileName" yaml:"fileName"`

	FileSPDXIdentifier string `json:"SPDXID" yaml:"SPDXID"`

	FileTypes []FileType `json:"fileTypes,omitempty" yaml:"fileTypes,omitempty"`

	FileChecksums []Checksum `json:"checksums,omitempty" yaml:"checksums,omitempty"`

	ConcludedLicense *expression.Expression `json:"licenseConcluded,omitempty" yaml:"licenseConcluded,omitempty"`

	LicenseInfoInFiles []string `json:"licenseInfoInFiles,omitempty" yaml:"licenseInfoInFiles,omitempty"`

	CommentsOnLicense string `json:"licenseComments,omitempty" yaml:"licenseComments,omitempty"`

	CopyrightText string `json:"copyrightText,omitempty" yaml:"copyrightText,omitempty"`

	FileComment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	FileNotice string `json:"noticeText,omitempty" yaml:"noticeText,omitempty"`

	FileContributors []string `json:"fileContributors,omitempty" yaml:"fileContributors,omitempty"`

	FileAttributionTexts []string `json:"fileAttributionText,omitempty" yaml:"fileAttributionText,omitempty"`
}

// NewFileInformation returns file information with the field
// placeholders the tag-value assembler builds on.
func NewFileInformation() FileInformation {
	return FileInformation{
		FileName:           NoAssertion,
		FileSPDXIdentifier: NoAssertion,
	}
}

// Checksum returns the file's checksum value for the given algorithm, or
// false if the file carries no checksum for it.
func (f *FileInformation) Checksum(algorithm Algorithm) (string, bool) {
	for _, checksum := range f.FileChecksums {
		if checksum.Algorithm == algorithm {
			return checksum.Value, true
		}
	}
	return "", false
}

// EqualByHash reports whether the file has the given checksum value for
// the algorithm. Comparison is case-insensitive.
func (f *FileInformation) EqualByHash(algorithm Algorithm, value string) bool {
	checksum, ok := f.Checksum(algorithm)
	return ok && strings.EqualFold(checksum, value)
}

// FileType classifies a file. The values match the SPDX wire format.
type FileType string

const (
	Source        FileType = "SOURCE"
	Binary        FileType = "BINARY"
	Archive       FileType = "ARCHIVE"
	Application   FileType = "APPLICATION"
	Audio         FileType = "AUDIO"
	Image         FileType = "IMAGE"
	Text          FileType = "TEXT"
	Video         FileType = "VIDEO"
	Documentation FileType = "DOCUMENTATION"
	SPDXFile      FileType = "SPDX"
	OtherFile     FileType = "OTHER"
)

// fileTypes is the authoritative token set for file types.
var fileTypes = map[string]FileType{
	"SOURCE":        Source,
	"BINARY":        Binary,
	"ARCHIVE":       Archive,
	"APPLICATION":   Application,
	"AUDIO":         Audio,
	"IMAGE":         Image,
	"TEXT":          Text,
	"VIDEO":         Video,
	"DOCUMENTATION": Documentation,
	"SPDX":          SPDXFile,
	"OTHER":         OtherFile,
}

// ParseFileType matches a file type token against the fixed token set.
func ParseFileType(s string) (FileType, error) {
	if fileType, ok := fileTypes[s]; ok {
		return fileType, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidInput, "unknown file type %q", s)
}
