package listing

import (
	"time"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/posts"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// Options configures a Lister.
type Options struct {
	PerPage          int
	PerIndex         int
	ScheduledMargin  time.Duration
	IncludeDrafts    bool
	IncludeScheduled bool
	Clock            func() time.Time
	Logger           interfaces.Logger
}

// Lister applies the site's listing rules to accepted entries.
type Lister struct {
	opts   Options
	logger interfaces.Logger
}

// NewLister builds a Lister. Missing clock and logger default to time.Now
// and a no-op logger; a non-positive PerPage becomes 1.
func NewLister(opts Options) *Lister {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.PerPage <= 0 {
		opts.PerPage = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Lister{opts: opts, logger: logger}
}

// Visible filters entries and sorts them newest first.
func (l *Lister) Visible(entries []posts.Entry) []posts.Entry {
	visible := Filter(entries, FilterOptions{
		Now:              l.opts.Clock(),
		ScheduledMargin:  l.opts.ScheduledMargin,
		IncludeDrafts:    l.opts.IncludeDrafts,
		IncludeScheduled: l.opts.IncludeScheduled,
	})
	if hidden := len(entries) - len(visible); hidden > 0 {
		l.logger.Debug("listing.hidden", "hidden", hidden, "visible", len(visible))
	}
	return Sort(visible)
}

// Page returns page number of the visible entries.
func (l *Lister) Page(entries []posts.Entry, number int) Page {
	return Paginate(l.Visible(entries), number, l.opts.PerPage)
}

// Index returns the featured and recent visible entries.
func (l *Lister) Index(entries []posts.Entry) (featured, recent []posts.Entry) {
	return Index(l.Visible(entries), l.opts.PerIndex)
}
