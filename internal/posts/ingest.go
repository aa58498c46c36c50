package posts

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-folio/internal/logging"
	payload "github.com/goliatone/go-folio/internal/validation"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

const rejectedMessage = "post metadata rejected"

// timestampLayouts are tried in order for string timestamps. Layouts without
// a zone are read in the ingester's location.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// RawEntry is undecoded post metadata and the key that identifies its origin.
type RawEntry struct {
	Source   string
	Metadata map[string]any
}

// Diagnostic describes a rejected entry.
type Diagnostic struct {
	Source string
	Err    error
}

// IngestResult holds the accepted entries in input order and a diagnostic
// per rejected entry.
type IngestResult struct {
	Entries     []Entry
	Diagnostics []Diagnostic
}

// Ingester validates raw metadata and turns it into entries.
type Ingester struct {
	logger   interfaces.Logger
	location *time.Location
}

// IngesterOption configures an Ingester.
type IngesterOption func(*Ingester)

// WithIngestLogger sets the logger that receives diagnostics.
func WithIngestLogger(logger interfaces.Logger) IngesterOption {
	return func(i *Ingester) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithLocation sets the zone used for timestamps written without one.
func WithLocation(loc *time.Location) IngesterOption {
	return func(i *Ingester) {
		if loc != nil {
			i.location = loc
		}
	}
}

// NewIngester builds an Ingester reading zone-less timestamps as UTC.
func NewIngester(opts ...IngesterOption) *Ingester {
	i := &Ingester{
		logger:   logging.NoOp(),
		location: time.UTC,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}
	return i
}

// Ingest validates raw and returns the accepted entry. Failures are
// *goerrors.Error values in the validation category whose chain reaches
// *MissingRequiredFieldError or ErrModifiedBeforePublished where relevant.
func (i *Ingester) Ingest(ctx context.Context, source string, raw map[string]any) (Entry, error) {
	logger := logging.WithPostContext(i.logger.WithContext(ctx), source, "")

	record, err := i.decode(raw)
	if err != nil {
		err = annotate(err, source)
		logger.Warn("post.rejected", "error", err)
		return Entry{}, err
	}

	entry := NewEntry(source, record)
	logger.Debug("post.accepted", "id", entry.ID, "slug", entry.PathSlug())
	return entry, nil
}

// IngestAll ingests every entry independently. A rejected entry never stops
// the remaining ones.
func (i *Ingester) IngestAll(ctx context.Context, raws []RawEntry) IngestResult {
	result := IngestResult{Entries: make([]Entry, 0, len(raws))}
	for _, raw := range raws {
		if err := ctx.Err(); err != nil {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{Source: raw.Source, Err: err})
			continue
		}
		entry, err := i.Ingest(ctx, raw.Source, raw.Metadata)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{Source: raw.Source, Err: err})
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	if len(result.Diagnostics) > 0 {
		i.logger.Warn("posts.ingest.summary",
			"accepted", len(result.Entries),
			"rejected", len(result.Diagnostics),
		)
	}
	return result
}

func (i *Ingester) decode(raw map[string]any) (Record, error) {
	if field := missingRequired(raw); field != "" {
		return Record{}, goerrors.Wrap(&MissingRequiredFieldError{Field: field}, goerrors.CategoryValidation, rejectedMessage).
			WithTextCode(TextCodeMissingField)
	}

	if err := payload.ValidatePost(raw); err != nil {
		return Record{}, schemaError(err)
	}

	record := Record{
		Title:       stringValue(raw[FieldTitle]),
		Description: stringValue(raw[FieldDescription]),
		Image:       optionalString(raw[FieldImage]),
		Journal:     optionalString(raw[FieldJournal]),
		Author:      stringValue(raw[FieldAuthor]),
		Slug:        stringValue(raw[FieldSlug]),
		Tags:        stringSlice(raw[FieldTags]),
		Featured:    boolValue(raw[FieldFeatured]),
		Draft:       boolValue(raw[FieldDraft]),
	}
	if format := stringValue(raw[FieldFormat]); format != "" {
		record.Format = Ptr(DateFormat(format))
	}

	pub, err := i.timestamp(FieldPubDatetime, raw[FieldPubDatetime])
	if err != nil {
		return Record{}, err
	}
	record.PubDatetime = pub

	if value, ok := raw[FieldModDatetime]; ok && !isBlank(value) {
		mod, err := i.timestamp(FieldModDatetime, value)
		if err != nil {
			return Record{}, err
		}
		record.ModDatetime = &mod
	}

	if err := record.Validate(); err != nil {
		return Record{}, recordError(err)
	}
	return record, nil
}

func (i *Ingester) timestamp(field string, value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v != nil {
			return *v, nil
		}
	case string:
		trimmed := strings.TrimSpace(v)
		for _, layout := range timestampLayouts {
			if ts, err := time.ParseInLocation(layout, trimmed, i.location); err == nil {
				return ts, nil
			}
		}
	}
	return time.Time{}, goerrors.NewValidation(rejectedMessage, goerrors.FieldError{
		Field:   field,
		Message: "must be an RFC 3339 timestamp or a YYYY-MM-DD date",
		Value:   value,
	}).WithTextCode(TextCodeInvalidTimestamp)
}

func missingRequired(raw map[string]any) string {
	if isBlank(raw[FieldTitle]) {
		return FieldTitle
	}
	if isBlank(raw[FieldPubDatetime]) {
		return FieldPubDatetime
	}
	return ""
}

func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	}
	return false
}

func schemaError(err error) error {
	issues := payload.Issues(err)
	fields := make([]goerrors.FieldError, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, goerrors.FieldError{
			Field:   issue.Field(),
			Message: issue.Message,
		})
	}
	wrapped := goerrors.Wrap(err, goerrors.CategoryValidation, rejectedMessage).WithTextCode(TextCodeInvalidMetadata)
	wrapped.ValidationErrors = fields
	return wrapped
}

func recordError(err error) error {
	var missing *MissingRequiredFieldError
	switch {
	case goerrors.As(err, &missing):
		return goerrors.Wrap(err, goerrors.CategoryValidation, rejectedMessage).WithTextCode(TextCodeMissingField)
	case goerrors.Is(err, ErrModifiedBeforePublished):
		return goerrors.Wrap(err, goerrors.CategoryValidation, rejectedMessage).WithTextCode(TextCodeModifiedBeforePublish)
	}
	var fieldErrs validation.Errors
	if goerrors.As(err, &fieldErrs) {
		return goerrors.FromOzzoValidation(err, rejectedMessage).WithTextCode(TextCodeInvalidMetadata)
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, rejectedMessage)
}

func annotate(err error, source string) error {
	var rich *goerrors.Error
	if source == "" || !goerrors.As(err, &rich) {
		return err
	}
	return rich.WithMetadata(map[string]any{"source": source})
}

func stringValue(value any) string {
	s, _ := value.(string)
	return s
}

func optionalString(value any) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return &s
}

func boolValue(value any) bool {
	b, _ := value.(bool)
	return b
}

func stringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
