package posts

import (
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/slug"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Normalize maps a record to its display fields. It never fails and never
// mutates record.
func Normalize(record Record) DisplayFields {
	fields := DisplayFields{
		HeadingText:     record.Title,
		SlugID:          slug.Derive(record.Title),
		DateFormat:      DateFormatFull,
		DescriptionText: record.Description,
		PubDatetime:     record.PubDatetime,
	}

	if record.Image != nil && *record.Image != "" {
		fields.ImageVisible = true
		fields.ImageSrc = Ptr(*record.Image)
	}
	if record.Journal != nil && *record.Journal != "" {
		fields.JournalLine = Ptr(*record.Journal)
	}
	if record.Format != nil {
		fields.DateFormat = *record.Format
	}
	if record.ModDatetime != nil {
		fields.ModDatetime = Ptr(*record.ModDatetime)
	}
	return fields
}

// Normalizer runs Normalize and, when debug output is enabled, traces each
// result to its logger.
type Normalizer struct {
	logger interfaces.Logger
	debug  bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithNormalizerLogger sets the logger used for debug traces.
func WithNormalizerLogger(logger interfaces.Logger) NormalizerOption {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithDebug toggles the per-record debug trace.
func WithDebug(enabled bool) NormalizerOption {
	return func(n *Normalizer) {
		n.debug = enabled
	}
}

// NewNormalizer builds a Normalizer. Without options it logs nothing.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Normalize behaves like the package level Normalize.
func (n *Normalizer) Normalize(record Record) DisplayFields {
	fields := Normalize(record)
	if n != nil && n.debug && n.logger != nil {
		logging.WithPostContext(n.logger, "", fields.SlugID).Debug("post.normalized",
			"heading", fields.HeadingText,
			"image_visible", fields.ImageVisible,
			"journal", fields.JournalLine != nil,
			"date_format", string(fields.DateFormat),
		)
	}
	return fields
}

// NormalizeAll normalizes records preserving their order.
func (n *Normalizer) NormalizeAll(records []Record) []DisplayFields {
	out := make([]DisplayFields, 0, len(records))
	for _, record := range records {
		out = append(out, n.Normalize(record))
	}
	return out
}
