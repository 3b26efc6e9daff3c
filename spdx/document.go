// Package spdx models SPDX 2.2 documents: packages, files, snippets,
// licenses and the relationships between them. Documents can be decoded
// from and encoded to the JSON and YAML representations of the format;
// the tag-value representation is handled by the tagvalue package.
//
// Spec: https://spdx.github.io/spdx-spec/
package spdx

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/doubleopen-project/spdx-go/errors"
	"github.com/doubleopen-project/spdx-go/logger"
)

// Format is a structured serialization format for SPDX documents.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is a complete SPDX document.
type Document struct {
	DocumentCreationInformation `yaml:",inline"`

	Packages []PackageInformation `json:"packages,omitempty" yaml:"packages,omitempty"`

	OtherLicensingInformation []OtherLicensingInformation `json:"hasExtractedLicensingInfos,omitempty" yaml:"hasExtractedLicensingInfos,omitempty"`

	Files []FileInformation `json:"files,omitempty" yaml:"files,omitempty"`

	Snippets []Snippet `json:"snippets,omitempty" yaml:"snippets,omitempty"`

	Relationships []Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`

	Annotations []Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// New creates an empty document with the given name and a freshly
// generated document namespace.
func New(name string) *Document {
	logger.Logger.Debugw("creating SPDX document", "name", name)

	creationInformation := NewDocumentCreationInformation()
	creationInformation.DocumentName = name
	creationInformation.DocumentNamespace = fmt.Sprintf("http://spdx.org/spdxdocs/%s-%s", name, uuid.New())

	return &Document{DocumentCreationInformation: creationInformation}
}

// FromFile decodes a document from a JSON or YAML file, chosen by the
// file extension (.json, .yml or .yaml).
func FromFile(path string) (*Document, error) {
	logger.Logger.Debugw("reading SPDX document", "path", path)

	var format Format
	switch filepath.Ext(path) {
	case ".json":
		format = FormatJSON
	case ".yml", ".yaml":
		format = FormatYAML
	default:
		return nil, errors.Newf("cannot infer SPDX format from path %q", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer file.Close()

	return Load(file, format)
}

// Load decodes a document from the reader in the given format.
func Load(r io.Reader, format Format) (*Document, error) {
	var document Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&document); err != nil {
			return nil, errors.Wrap(err, "decoding SPDX JSON")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&document); err != nil {
			return nil, errors.Wrap(err, "decoding SPDX YAML")
		}
	default:
		return nil, errors.Newf("unknown SPDX format %q", format)
	}
	return &document, nil
}

// WriteJSON encodes the document as indented JSON.
func (d *Document) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return errors.Wrap(err, "encoding SPDX JSON")
	}
	return nil
}

// SaveJSON writes the document to a file as indented JSON.
func (d *Document) SaveJSON(path string) error {
	logger.Logger.Debugw("saving SPDX document", "path", path)

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	defer file.Close()

	return d.WriteJSON(file)
}

// WriteYAML encodes the document as YAML.
func (d *Document) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	if err := encoder.Encode(d); err != nil {
		return errors.Wrap(err, "encoding SPDX YAML")
	}
	return nil
}

// UniqueFileHashes returns the sorted, deduplicated checksum values of
// the document's files for the given algorithm.
func (d *Document) UniqueFileHashes(algorithm Algorithm) []string {
	seen := make(map[string]struct{})
	for i := range d.Files {
		if value, ok := d.Files[i].Checksum(algorithm); ok {
			seen[value] = struct{}{}
		}
	}

	hashes := make([]string, 0, len(seen))
	for value := range seen {
		hashes = append(hashes, value)
	}
	sort.Strings(hashes)
	return hashes
}

// FilesForPackage returns the files related to the package with the
// given SPDX identifier, paired with the relationship connecting them.
func (d *Document) FilesForPackage(packageID string) []FileAndRelationship {
	var result []FileAndRelationship

	for i := range d.Relationships {
		relationship := &d.Relationships[i]
		if relationship.SPDXElementID != packageID {
			continue
		}
		for j := range d.Files {
			if d.Files[j].FileSPDXIdentifier == relationship.RelatedSPDXElement {
				result = append(result, FileAndRelationship{
					File:         &d.Files[j],
					Relationship: relationship,
				})
			}
		}
	}
	return result
}

// FileAndRelationship pairs a file with the relationship through which
// it was reached.
type FileAndRelationship struct {
	File         *FileInformation
	Relationship *Relationship
}

// LicenseIDs returns every license identifier referenced by the
// concluded licenses of the document's files, excluding the NOASSERTION
// and NONE sentinels. The result is sorted and free of duplicates.
func (d *Document) LicenseIDs() []string {
	seen := make(map[string]struct{})
	for i := range d.Files {
		if d.Files[i].ConcludedLicense == nil {
			continue
		}
		for _, id := range d.Files[i].ConcludedLicense.Identifiers() {
			if id == NoAssertion || id == None {
				continue
			}
			seen[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RelationshipsForID returns the relationships where the given SPDX
// identifier is the source element.
func (d *Document) RelationshipsForID(spdxID string) []*Relationship {
	var result []*Relationship
	for i := range d.Relationships {
		if d.Relationships[i].SPDXElementID == spdxID {
			result = append(result, &d.Relationships[i])
		}
	}
	return result
}

// RelationshipsForRelatedID returns the relationships where the given
// SPDX identifier is the related element.
func (d *Document) RelationshipsForRelatedID(spdxID string) []*Relationship {
	var result []*Relationship
	for i := range d.Relationships {
		if d.Relationships[i].RelatedSPDXElement == spdxID {
			result = append(result, &d.Relationships[i])
		}
	}
	return result
}
