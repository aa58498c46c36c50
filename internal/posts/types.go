package posts

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-folio/internal/identity"
	"github.com/goliatone/go-folio/internal/slug"
)

// DateFormat selects how a post's timestamp is displayed.
type DateFormat string

const (
	// DateFormatFull shows the date and the time of day.
	DateFormatFull DateFormat = "full"
	// DateFormatDate shows the date only.
	DateFormatDate DateFormat = "date"
	// DateFormatYear shows the year only.
	DateFormatYear DateFormat = "year"
)

// DateFormats lists the accepted display formats.
func DateFormats() []DateFormat {
	return []DateFormat{DateFormatFull, DateFormatDate, DateFormatYear}
}

// IsKnown reports whether f is one of DateFormats.
func (f DateFormat) IsKnown() bool {
	switch f {
	case DateFormatFull, DateFormatDate, DateFormatYear:
		return true
	}
	return false
}

// Record is the metadata of a single post as handed over by the content
// collaborator. Title and PubDatetime are required; pointer fields are
// optional and nil when absent.
type Record struct {
	Title       string      `json:"title"`
	PubDatetime time.Time   `json:"pubDatetime"`
	ModDatetime *time.Time  `json:"modDatetime,omitempty"`
	Description string      `json:"description"`
	Image       *string     `json:"image,omitempty"`
	Journal     *string     `json:"journal,omitempty"`
	Format      *DateFormat `json:"format,omitempty"`

	Author   string   `json:"author,omitempty"`
	Slug     string   `json:"slug,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Featured bool     `json:"featured,omitempty"`
	Draft    bool     `json:"draft,omitempty"`
}

// LastActivity returns ModDatetime when set, PubDatetime otherwise.
func (r Record) LastActivity() time.Time {
	if r.ModDatetime != nil {
		return *r.ModDatetime
	}
	return r.PubDatetime
}

// Entry is an accepted record together with its identity.
type Entry struct {
	ID     uuid.UUID
	Source string
	Record Record
}

const fallbackPathPrefix = "post-"

// NewEntry wraps record with an ID derived from source. When source is
// blank the raw title is used as the key instead.
func NewEntry(source string, record Record) Entry {
	source = strings.TrimSpace(source)
	return Entry{
		ID:     entryID(source, record.Title),
		Source: source,
		Record: record,
	}
}

func entryID(source, title string) uuid.UUID {
	if source != "" {
		return identity.PostUUID(source)
	}
	return identity.TitleUUID(title)
}

// PathSlug is the slug used to address the post. An explicit Slug override
// wins over the title slug. Titles with no slug content ("日本語") fall back
// to "post-" plus a token of the entry ID, so every post stays addressable.
func (e Entry) PathSlug() string {
	if override := slug.FromOverride(e.Record.Slug); override != "" {
		return override
	}
	if derived := slug.Derive(e.Record.Title); derived != "" {
		return derived
	}
	id := e.ID
	if id == uuid.Nil {
		id = entryID(strings.TrimSpace(e.Source), e.Record.Title)
	}
	if token := identity.Token(id); token != "" {
		return fallbackPathPrefix + token
	}
	return ""
}

// DisplayFields is the presentation-ready view of a Record.
type DisplayFields struct {
	HeadingText     string
	SlugID          string
	ImageVisible    bool
	ImageSrc        *string
	JournalLine     *string
	DateFormat      DateFormat
	DescriptionText string
	PubDatetime     time.Time
	ModDatetime     *time.Time
}

// Ptr returns a pointer to v. It keeps optional fields terse in literals.
func Ptr[T any](v T) *T {
	return &v
}
