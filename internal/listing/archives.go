package listing

import (
	"slices"
	"time"

	"github.com/goliatone/go-folio/internal/posts"
)

// YearGroup holds a year's posts grouped by month, newest month first.
type YearGroup struct {
	Year   int
	Months []MonthGroup
}

// MonthGroup holds the posts published in one month, newest first.
type MonthGroup struct {
	Month   time.Month
	Entries []posts.Entry
}

// Archives groups entries by publication year and month. Groups and their
// entries are ordered newest first. Timestamps are read in loc (UTC when nil).
func Archives(entries []posts.Entry, loc *time.Location) []YearGroup {
	if loc == nil {
		loc = time.UTC
	}
	ordered := sortByPublished(entries)

	var years []YearGroup
	for _, entry := range ordered {
		ts := entry.Record.PubDatetime.In(loc)
		if len(years) == 0 || years[len(years)-1].Year != ts.Year() {
			years = append(years, YearGroup{Year: ts.Year()})
		}
		year := &years[len(years)-1]
		if len(year.Months) == 0 || year.Months[len(year.Months)-1].Month != ts.Month() {
			year.Months = append(year.Months, MonthGroup{Month: ts.Month()})
		}
		month := &year.Months[len(year.Months)-1]
		month.Entries = append(month.Entries, entry)
	}
	return years
}

func sortByPublished(entries []posts.Entry) []posts.Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b posts.Entry) int {
		return b.Record.PubDatetime.Compare(a.Record.PubDatetime)
	})
	return out
}
