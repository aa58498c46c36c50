package posts

import (
	"slices"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

const (
	layoutDate = "2 Jan 2006"
	layoutYear = "2006"
	layoutTime = "03:04 PM"
)

// DatetimeOptions controls how FormatDatetime renders a timestamp.
type DatetimeOptions struct {
	// LangTag is a BCP 47 tag such as "en-US" selecting month names.
	LangTag string
	// Location converts the timestamp before formatting. Nil keeps the
	// timestamp's own zone.
	Location *time.Location
}

// DatetimeView is the rendered timestamp of a post.
type DatetimeView struct {
	ISO      string
	Date     string
	Time     string
	Modified bool
	Format   DateFormat
}

// Label returns "Updated" for modified posts and "Published" otherwise.
func (v DatetimeView) Label() string {
	if v.Modified {
		return "Updated"
	}
	return "Published"
}

// Text joins the date and time parts for plain text output.
func (v DatetimeView) Text() string {
	if v.Time == "" {
		return v.Date
	}
	return v.Date + " | " + v.Time
}

// FormatDatetime renders the timestamp shown on a card. The modification
// time is used when it is later than the publication time.
func FormatDatetime(fields DisplayFields, opts DatetimeOptions) DatetimeView {
	ts := fields.PubDatetime
	modified := false
	if fields.ModDatetime != nil && fields.ModDatetime.After(fields.PubDatetime) {
		ts = *fields.ModDatetime
		modified = true
	}
	if opts.Location != nil {
		ts = ts.In(opts.Location)
	}

	locale := ResolveLocale(opts.LangTag)
	view := DatetimeView{
		ISO:      ts.Format(time.RFC3339),
		Modified: modified,
		Format:   fields.DateFormat,
	}

	switch fields.DateFormat {
	case DateFormatYear:
		view.Date = monday.Format(ts, layoutYear, locale)
	case DateFormatDate:
		view.Date = monday.Format(ts, layoutDate, locale)
	default:
		view.Format = DateFormatFull
		view.Date = monday.Format(ts, layoutDate, locale)
		view.Time = monday.Format(ts, layoutTime, locale)
	}
	return view
}

// ResolveLocale maps a language tag to a monday locale. Tags with an unknown
// region fall back to the language's most likely region, and anything
// unsupported falls back to en_US.
func ResolveLocale(tag string) monday.Locale {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return monday.LocaleEnUS
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		base, _, _ := strings.Cut(tag, "-")
		if parsed, err = language.Parse(base); err != nil {
			return monday.LocaleEnUS
		}
	}

	base, _ := parsed.Base()
	region, _ := parsed.Region()
	candidate := monday.Locale(base.String() + "_" + region.String())

	supported := monday.ListLocales()
	if slices.Contains(supported, candidate) {
		return candidate
	}
	return monday.LocaleEnUS
}
