// Package folio provides the content logic of a personal blog: slug
// derivation, post display normalization, validated ingestion of post
// metadata, listings and card rendering.
package folio

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/a-h/templ"
	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-folio/internal/card"
	"github.com/goliatone/go-folio/internal/listing"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/logging/console"
	"github.com/goliatone/go-folio/internal/logging/gologger"
	"github.com/goliatone/go-folio/internal/posts"
	"github.com/goliatone/go-folio/internal/slug"
	"github.com/goliatone/go-folio/internal/theming"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

type (
	Record                    = posts.Record
	DisplayFields             = posts.DisplayFields
	DateFormat                = posts.DateFormat
	Entry                     = posts.Entry
	RawEntry                  = posts.RawEntry
	IngestResult              = posts.IngestResult
	Diagnostic                = posts.Diagnostic
	MissingRequiredFieldError = posts.MissingRequiredFieldError
	DatetimeView              = posts.DatetimeView
	Page                      = listing.Page
	Tag                       = listing.Tag
	YearGroup                 = listing.YearGroup
	MonthGroup                = listing.MonthGroup
	CardProps                 = card.Props
	ThemeSelection            = gotheme.Selection
)

const (
	DateFormatFull = posts.DateFormatFull
	DateFormatDate = posts.DateFormatDate
	DateFormatYear = posts.DateFormatYear
)

var (
	// ErrModifiedBeforePublished reports a modDatetime earlier than pubDatetime.
	ErrModifiedBeforePublished = posts.ErrModifiedBeforePublished
	// ErrUnknownVariant reports a theme variant the site theme does not define.
	ErrUnknownVariant          = theming.ErrUnknownVariant
)

// DeriveSlug returns the URL-safe slug for text.
func DeriveSlug(text string) string {
	return slug.Derive(text)
}

// Normalize maps a record to its display fields.
func Normalize(record Record) DisplayFields {
	return posts.Normalize(record)
}

// Module wires the folio services for one site configuration.
type Module struct {
	config     Config
	provider   interfaces.LoggerProvider
	normalizer *posts.Normalizer
	ingester   *posts.Ingester
	lister     *listing.Lister
	theme      *theming.Selector
}

type moduleOptions struct {
	provider  interfaces.LoggerProvider
	logWriter io.Writer
	clock     func() time.Time
	preview   bool
}

// Option customises New.
type Option func(*moduleOptions)

// WithLoggerProvider overrides the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithLogWriter sets where the console provider writes. Defaults to stderr.
func WithLogWriter(w io.Writer) Option {
	return func(o *moduleOptions) {
		o.logWriter = w
	}
}

// WithClock overrides the clock used for scheduled post filtering.
func WithClock(clock func() time.Time) Option {
	return func(o *moduleOptions) {
		o.clock = clock
	}
}

// WithPreview shows drafts and scheduled posts in listings.
func WithPreview(enabled bool) Option {
	return func(o *moduleOptions) {
		o.preview = enabled
	}
}

// New validates cfg and builds a Module. The module keeps its own copy of
// cfg.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	options := moduleOptions{logWriter: os.Stderr, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	provider := options.provider
	if provider == nil {
		built, err := newLoggerProvider(cfg, options.logWriter)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	cfg = cfg.Clone()
	theme, err := theming.NewSelector(cfg.Theme)
	if err != nil {
		return nil, err
	}

	m := &Module{
		config:   cfg,
		provider: provider,
		normalizer: posts.NewNormalizer(
			posts.WithNormalizerLogger(logging.PostsLogger(provider)),
			posts.WithDebug(cfg.Debug),
		),
		ingester: posts.NewIngester(
			posts.WithIngestLogger(logging.IngestLogger(provider)),
			posts.WithLocation(cfg.Location()),
		),
		lister: listing.NewLister(listing.Options{
			PerPage:          cfg.Site.PostPerPage,
			PerIndex:         cfg.Site.PostPerIndex,
			ScheduledMargin:  cfg.Site.ScheduledPostMargin,
			IncludeDrafts:    options.preview,
			IncludeScheduled: options.preview,
			Clock:            options.clock,
			Logger:           logging.ListingLogger(provider),
		}),
		theme: theme,
	}
	logging.ConfigLogger(provider).Debug("folio.configured",
		"title", cfg.Site.Title,
		"logging", cfg.Logging.Provider,
		"theme", cfg.Theme.Name,
		"debug", cfg.Debug,
	)
	return m, nil
}

func newLoggerProvider(cfg Config, w io.Writer) (interfaces.LoggerProvider, error) {
	switch NormalizeLoggingProvider(cfg.Logging.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
			Fields:    map[string]any{"site": cfg.Site.Title},
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	case "console":
		level, ok := console.ParseLevel(cfg.Logging.Level)
		if !ok {
			level = console.LevelInfo
		}
		if cfg.Debug && level > console.LevelDebug {
			level = console.LevelDebug
		}
		return console.NewProvider(console.Options{Writer: w, MinLevel: &level}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
}

// Config returns a copy of the module configuration.
func (m *Module) Config() Config {
	return m.config.Clone()
}

// Logger returns a logger scoped to module.
func (m *Module) Logger(module string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, module)
}

// Normalizer returns the configured display normalizer.
func (m *Module) Normalizer() *posts.Normalizer {
	return m.normalizer
}

// Ingester returns the configured ingestion boundary.
func (m *Module) Ingester() *posts.Ingester {
	return m.ingester
}

// Ingest validates raw entries; see posts.Ingester.IngestAll.
func (m *Module) Ingest(ctx context.Context, raws []RawEntry) IngestResult {
	return m.ingester.IngestAll(ctx, raws)
}

// Page returns a page of visible entries.
func (m *Module) Page(entries []Entry, number int) Page {
	return m.lister.Page(entries, number)
}

// Index returns the featured and recent entries for the home page.
func (m *Module) Index(entries []Entry) (featured, recent []Entry) {
	return m.lister.Index(entries)
}

// Archives groups visible entries by year and month in the site timezone.
// It returns nil when archives are disabled.
func (m *Module) Archives(entries []Entry) []YearGroup {
	if !m.config.Site.ShowArchives {
		return nil
	}
	return listing.Archives(m.lister.Visible(entries), m.config.Location())
}

// Tags returns the unique tags of visible entries.
func (m *Module) Tags(entries []Entry) []Tag {
	return listing.Tags(m.lister.Visible(entries))
}

// ByTag returns visible entries carrying tagSlug, newest first.
func (m *Module) ByTag(entries []Entry, tagSlug string) []Entry {
	return listing.ByTag(m.lister.Visible(entries), tagSlug)
}

// Theme resolves a variant of the site theme. A blank variant selects the
// configured default.
func (m *Module) Theme(variant string) (*ThemeSelection, error) {
	return m.theme.Select(variant)
}

// ThemeVariables returns the CSS custom properties of a theme variant.
func (m *Module) ThemeVariables(variant string) (map[string]string, error) {
	return m.theme.CSSVariables(variant)
}

// DarkModeSelector is the CSS selector that activates the dark variant.
func (m *Module) DarkModeSelector() string {
	return m.theme.DarkModeSelector()
}

// DatetimeOptions returns the date display options for the site locale.
func (m *Module) DatetimeOptions() posts.DatetimeOptions {
	return posts.DatetimeOptions{
		LangTag:  m.config.LangTag(),
		Location: m.config.Location(),
	}
}

// CardProps normalizes entry and builds its card props. The link points at
// basePath followed by the entry's path slug.
func (m *Module) CardProps(entry Entry, basePath string) CardProps {
	fields := m.normalizer.Normalize(entry.Record)
	return card.NewProps(postHref(basePath, entry.PathSlug()), fields, m.DatetimeOptions())
}

// Cards renders entries as a card list.
func (m *Module) Cards(entries []Entry, basePath string) templ.Component {
	items := make([]CardProps, 0, len(entries))
	for _, entry := range entries {
		items = append(items, m.CardProps(entry, basePath))
	}
	return card.List(items)
}

// Card renders a single card.
func Card(props CardProps) templ.Component {
	return card.Card(props)
}

func postHref(basePath, pathSlug string) string {
	if basePath == "" {
		basePath = "/posts/"
	}
	if basePath[len(basePath)-1] != '/' {
		basePath += "/"
	}
	return basePath + pathSlug
}
