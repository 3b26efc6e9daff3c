package spdx

import (
	"strings"

	"github.com/doubleopen-project/spdx-go/errors"
)

// Relationship is a directed, typed edge between two SPDX identifiers.
// https://spdx.github.io/spdx-spec/7-relationships-between-SPDX-elements/
type Relationship struct {
	// SPDXElementID is the SPDX ID of the element.
	SPDXElementID string `json:"spdxElementId" yaml:"spdxElementId"`

	// RelatedSPDXElement is the SPDX ID of the related element.
	RelatedSPDXElement string `json:"relatedSpdxElement" yaml:"relatedSpdxElement"`

	RelationshipType RelationshipType `json:"relationshipType" yaml:"relationshipType"`

	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// NewRelationship creates a new relationship.
func NewRelationship(elementID, relatedElement string, relationshipType RelationshipType) Relationship {
	return Relationship{
		SPDXElementID:      elementID,
		RelatedSPDXElement: relatedElement,
		RelationshipType:   relationshipType,
	}
}

// Equal reports whether the two relationships connect the same pair of
// identifiers with the same kind. Comments do not participate in
// relationship identity.
func (r Relationship) Equal(other Relationship) bool {
	return r.SPDXElementID == other.SPDXElementID &&
		r.RelatedSPDXElement == other.RelatedSPDXElement &&
		r.RelationshipType == other.RelationshipType
}

// RelationshipType is the kind of a relationship between two SPDX
// elements. The values match the SPDX wire format.
type RelationshipType string

const (
	Describes             RelationshipType = "DESCRIBES"
	DescribedBy           RelationshipType = "DESCRIBED_BY"
	Contains              RelationshipType = "CONTAINS"
	ContainedBy           RelationshipType = "CONTAINED_BY"
	DependsOn             RelationshipType = "DEPENDS_ON"
	DependencyOf          RelationshipType = "DEPENDENCY_OF"
	DependencyManifestOf  RelationshipType = "DEPENDENCY_MANIFEST_OF"
	BuildDependencyOf     RelationshipType = "BUILD_DEPENDENCY_OF"
	DevDependencyOf       RelationshipType = "DEV_DEPENDENCY_OF"
	OptionalDependencyOf  RelationshipType = "OPTIONAL_DEPENDENCY_OF"
	ProvidedDependencyOf  RelationshipType = "PROVIDED_DEPENDENCY_OF"
	TestDependencyOf      RelationshipType = "TEST_DEPENDENCY_OF"
	RuntimeDependencyOf   RelationshipType = "RUNTIME_DEPENDENCY_OF"
	ExampleOf             RelationshipType = "EXAMPLE_OF"
	Generates             RelationshipType = "GENERATES"
	GeneratedFrom         RelationshipType = "GENERATED_FROM"
	AncestorOf            RelationshipType = "ANCESTOR_OF"
	DescendantOf          RelationshipType = "DESCENDANT_OF"
	VariantOf             RelationshipType = "VARIANT_OF"
	DistributionArtifact  RelationshipType = "DISTRIBUTION_ARTIFACT"
	PatchFor              RelationshipType = "PATCH_FOR"
	PatchApplied          RelationshipType = "PATCH_APPLIED"
	CopyOf                RelationshipType = "COPY_OF"
	FileAdded             RelationshipType = "FILE_ADDED"
	FileDeleted           RelationshipType = "FILE_DELETED"
	FileModified          RelationshipType = "FILE_MODIFIED"
	ExpandedFromArchive   RelationshipType = "EXPANDED_FROM_ARCHIVE"
	DynamicLink           RelationshipType = "DYNAMIC_LINK"
	StaticLink            RelationshipType = "STATIC_LINK"
	DataFileOf            RelationshipType = "DATA_FILE_OF"
	TestCaseOf            RelationshipType = "TEST_CASE_OF"
	BuildToolOf           RelationshipType = "BUILD_TOOL_OF"
	DevToolOf             RelationshipType = "DEV_TOOL_OF"
	TestOf                RelationshipType = "TEST_OF"
	TestToolOf            RelationshipType = "TEST_TOOL_OF"
	DocumentationOf       RelationshipType = "DOCUMENTATION_OF"
	OptionalComponentOf   RelationshipType = "OPTIONAL_COMPONENT_OF"
	MetafileOf            RelationshipType = "METAFILE_OF"
	PackageOf             RelationshipType = "PACKAGE_OF"
	Amends                RelationshipType = "AMENDS"
	PrerequisiteFor       RelationshipType = "PREREQUISITE_FOR"
	HasPrerequisite       RelationshipType = "HAS_PREREQUISITE"
	RequirementDescFor    RelationshipType = "REQUIREMENT_DESCRIPTION_FOR"
	SpecificationFor      RelationshipType = "SPECIFICATION_FOR"
	OtherRelationship     RelationshipType = "OTHER"
)

// relationshipTypes is the authoritative token set for relationship
// kinds.
var relationshipTypes = map[string]RelationshipType{
	"DESCRIBES":                   Describes,
	"DESCRIBED_BY":                DescribedBy,
	"CONTAINS":                    Contains,
	"CONTAINED_BY":                ContainedBy,
	"DEPENDS_ON":                  DependsOn,
	"DEPENDENCY_OF":               DependencyOf,
	"DEPENDENCY_MANIFEST_OF":      DependencyManifestOf,
	"BUILD_DEPENDENCY_OF":         BuildDependencyOf,
	"DEV_DEPENDENCY_OF":           DevDependencyOf,
	"OPTIONAL_DEPENDENCY_OF":      OptionalDependencyOf,
	"PROVIDED_DEPENDENCY_OF":      ProvidedDependencyOf,
	"TEST_DEPENDENCY_OF":          TestDependencyOf,
	"RUNTIME_DEPENDENCY_OF":       RuntimeDependencyOf,
	"EXAMPLE_OF":                  ExampleOf,
	"GENERATES":                   Generates,
	"GENERATED_FROM":              GeneratedFrom,
	"ANCESTOR_OF":                 AncestorOf,
	"DESCENDANT_OF":               DescendantOf,
	"VARIANT_OF":                  VariantOf,
	"DISTRIBUTION_ARTIFACT":       DistributionArtifact,
	"PATCH_FOR":                   PatchFor,
	"PATCH_APPLIED":               PatchApplied,
	"COPY_OF":                     CopyOf,
	"FILE_ADDED":                  FileAdded,
	"FILE_DELETED":                FileDeleted,
	"FILE_MODIFIED":               FileModified,
	"EXPANDED_FROM_ARCHIVE":       ExpandedFromArchive,
	"DYNAMIC_LINK":                DynamicLink,
	"STATIC_LINK":                 StaticLink,
	"DATA_FILE_OF":                DataFileOf,
	"TEST_CASE_OF":                TestCaseOf,
	"BUILD_TOOL_OF":               BuildToolOf,
	"DEV_TOOL_OF":                 DevToolOf,
	"TEST_OF":                     TestOf,
	"TEST_TOOL_OF":                TestToolOf,
	"DOCUMENTATION_OF":            DocumentationOf,
	"OPTIONAL_COMPONENT_OF":       OptionalComponentOf,
	"METAFILE_OF":                 MetafileOf,
	"PACKAGE_OF":                  PackageOf,
	"AMENDS":                      Amends,
	"PREREQUISITE_FOR":            PrerequisiteFor,
	"HAS_PREREQUISITE":            HasPrerequisite,
	"REQUIREMENT_DESCRIPTION_FOR": RequirementDescFor,
	"SPECIFICATION_FOR":           SpecificationFor,
	"OTHER":                       OtherRelationship,
}

// ParseRelationshipType matches a relationship kind token against the
// fixed token set. Matching is case-insensitive: at least reuse-tool
// emits lowercase kinds.
func ParseRelationshipType(s string) (RelationshipType, error) {
	if relationshipType, ok := relationshipTypes[strings.ToUpper(s)]; ok {
		return relationshipType, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidInput, "unknown relationship type %q", s)
}
