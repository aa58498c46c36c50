package posts

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Metadata keys understood at the ingestion boundary.
const (
	FieldTitle       = "title"
	FieldPubDatetime = "pubDatetime"
	FieldModDatetime = "modDatetime"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldJournal     = "journal"
	FieldFormat      = "format"
	FieldAuthor      = "author"
	FieldSlug        = "slug"
	FieldTags        = "tags"
	FieldFeatured    = "featured"
	FieldDraft       = "draft"
)

// Text codes attached to ingestion errors.
const (
	TextCodeMissingField          = "MISSING_REQUIRED_FIELD"
	TextCodeModifiedBeforePublish = "MODIFIED_BEFORE_PUBLISHED"
	TextCodeInvalidTimestamp      = "INVALID_TIMESTAMP"
	TextCodeInvalidMetadata       = "INVALID_METADATA"
)

// ErrModifiedBeforePublished reports a modDatetime earlier than pubDatetime.
var ErrModifiedBeforePublished = errors.New("posts: modDatetime precedes pubDatetime")

// MissingRequiredFieldError reports a record without title or pubDatetime.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("posts: required field %q is missing", e.Field)
}

// Validate checks the invariants of a record built in code or decoded at the
// ingestion boundary.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &MissingRequiredFieldError{Field: FieldTitle}
	}
	if r.PubDatetime.IsZero() {
		return &MissingRequiredFieldError{Field: FieldPubDatetime}
	}
	if r.ModDatetime != nil && r.ModDatetime.Before(r.PubDatetime) {
		return ErrModifiedBeforePublished
	}

	formats := make([]any, 0, len(DateFormats()))
	for _, f := range DateFormats() {
		formats = append(formats, f)
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Format, validation.In(formats...).Error("must be one of full, date, year")),
		validation.Field(&r.Tags, validation.Each(validation.Required.Error("tags cannot be blank"))),
	)
}
