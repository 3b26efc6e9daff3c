package spdx

import (
	"time"

	"github.com/doubleopen-project/spdx-go/errors"
)

// Annotation is a review or other remark attached to an SPDX element.
// https://spdx.github.io/spdx-spec/8-annotations/
type Annotation struct {
	// Annotator identifies who created the annotation, for example
	// "Person: Jane Doe ()".
	Annotator string `json:"annotator" yaml:"annotator"`

	AnnotationDate time.Time `json:"annotationDate" yaml:"annotationDate"`

	AnnotationType AnnotationType `json:"annotationType" yaml:"annotationType"`

	SPDXIdentifierReference string `json:"spdxIdentifierReference,omitempty" yaml:"spdxIdentifierReference,omitempty"`

	AnnotationComment string `json:"comment" yaml:"comment"`
}

// NewAnnotation creates a new annotation.
func NewAnnotation(
	annotator string,
	date time.Time,
	annotationType AnnotationType,
	reference string,
	comment string,
) Annotation {
	return Annotation{
		Annotator:               annotator,
		AnnotationDate:          date,
		AnnotationType:          annotationType,
		SPDXIdentifierReference: reference,
		AnnotationComment:       comment,
	}
}

// AnnotationType is the kind of an annotation.
type AnnotationType string

const (
	Review          AnnotationType = "REVIEW"
	OtherAnnotation AnnotationType = "OTHER"
)

// ParseAnnotationType matches an annotation type token against the fixed
// token set.
func ParseAnnotationType(s string) (AnnotationType, error) {
	switch s {
	case "REVIEW":
		return Review, nil
	case "OTHER":
		return OtherAnnotation, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidInput, "unknown annotation type %q", s)
}
