// Package listing selects, orders and groups accepted posts for index,
// paginated, archive and tag pages.
package listing

import (
	"slices"
	"strings"
	"time"

	"github.com/goliatone/go-folio/internal/posts"
	"github.com/goliatone/go-folio/internal/slug"
)

// FilterOptions controls which entries are visible.
type FilterOptions struct {
	Now time.Time
	// ScheduledMargin lets posts appear this long before their PubDatetime.
	ScheduledMargin time.Duration
	IncludeDrafts   bool
	// IncludeScheduled shows future posts regardless of the margin, as a
	// local preview would.
	IncludeScheduled bool
}

// Filter returns the visible entries in input order.
func Filter(entries []posts.Entry, opts FilterOptions) []posts.Entry {
	out := make([]posts.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Record.Draft && !opts.IncludeDrafts {
			continue
		}
		if !opts.IncludeScheduled && !isPublished(entry.Record, opts.Now, opts.ScheduledMargin) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func isPublished(record posts.Record, now time.Time, margin time.Duration) bool {
	return now.After(record.PubDatetime.Add(-margin))
}

// Sort returns a copy of entries ordered newest first by modification time,
// falling back to publication time. Ties are broken by title, then ID.
func Sort(entries []posts.Entry) []posts.Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b posts.Entry) int {
		left, right := a.Record.LastActivity(), b.Record.LastActivity()
		if c := right.Compare(left); c != 0 {
			return c
		}
		if c := strings.Compare(a.Record.Title, b.Record.Title); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out
}

// Page is one slice of a paginated listing.
type Page struct {
	Entries    []posts.Entry
	Number     int
	PerPage    int
	TotalPages int
	TotalItems int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Paginate returns page number (1-based) of entries. The number is clamped
// into [1, TotalPages]; an empty listing has a single empty page.
func Paginate(entries []posts.Entry, number, perPage int) Page {
	if perPage <= 0 {
		perPage = 1
	}
	total := len(entries)
	pages := max(1, (total+perPage-1)/perPage)
	number = min(max(number, 1), pages)

	start := min((number-1)*perPage, total)
	end := min(start+perPage, total)

	return Page{
		Entries:    slices.Clone(entries[start:end]),
		Number:     number,
		PerPage:    perPage,
		TotalPages: pages,
		TotalItems: total,
	}
}

// Index splits sorted entries into featured posts and the most recent
// non-featured posts, limited to perIndex. A negative perIndex means no limit.
func Index(entries []posts.Entry, perIndex int) (featured, recent []posts.Entry) {
	for _, entry := range entries {
		if entry.Record.Featured {
			featured = append(featured, entry)
			continue
		}
		if perIndex < 0 || len(recent) < perIndex {
			recent = append(recent, entry)
		}
	}
	return featured, recent
}

// Tag is a unique tag across posts.
type Tag struct {
	Slug string
	Name string
	// Count is the number of entries carrying the tag.
	Count int
}

// Tags returns unique tags keyed by their slug and sorted by it. The first
// spelling seen wins as Name. Tags that slug to "" are ignored.
func Tags(entries []posts.Entry) []Tag {
	index := map[string]int{}
	var out []Tag
	for _, entry := range entries {
		seen := map[string]struct{}{}
		for _, name := range entry.Record.Tags {
			key := slug.Derive(name)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if pos, ok := index[key]; ok {
				out[pos].Count++
				continue
			}
			index[key] = len(out)
			out = append(out, Tag{Slug: key, Name: strings.TrimSpace(name), Count: 1})
		}
	}
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.Slug, b.Slug) })
	return out
}

// ByTag returns the entries carrying a tag whose slug equals tagSlug.
func ByTag(entries []posts.Entry, tagSlug string) []posts.Entry {
	want := slug.Derive(tagSlug)
	var out []posts.Entry
	for _, entry := range entries {
		if slices.ContainsFunc(entry.Record.Tags, func(tag string) bool { return slug.Derive(tag) == want }) {
			out = append(out, entry)
		}
	}
	return out
}
