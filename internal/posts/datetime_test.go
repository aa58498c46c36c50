package posts

import (
	"testing"
	"time"

	"github.com/goodsign/monday"
)

func TestFormatDatetimeFull(t *testing.T) {
	view := FormatDatetime(Normalize(Record{Title: "x", PubDatetime: pub}), DatetimeOptions{LangTag: "en-EN"})

	if view.Date != "5 Mar 2024" || view.Time != "02:07 PM" {
		t.Fatalf("unexpected full format %q %q", view.Date, view.Time)
	}
	if view.ISO != "2024-03-05T14:07:00Z" {
		t.Fatalf("unexpected ISO %q", view.ISO)
	}
	if view.Modified || view.Label() != "Published" {
		t.Fatalf("expected published label, got %q", view.Label())
	}
	if view.Text() != "5 Mar 2024 | 02:07 PM" {
		t.Fatalf("unexpected text %q", view.Text())
	}
}

func TestFormatDatetimeShortForms(t *testing.T) {
	date := FormatDatetime(Normalize(Record{Title: "x", PubDatetime: pub, Format: Ptr(DateFormatDate)}), DatetimeOptions{})
	if date.Date != "5 Mar 2024" || date.Time != "" || date.Text() != "5 Mar 2024" {
		t.Fatalf("unexpected date format %+v", date)
	}

	year := FormatDatetime(Normalize(Record{Title: "x", PubDatetime: pub, Format: Ptr(DateFormatYear)}), DatetimeOptions{})
	if year.Date != "2024" || year.Time != "" {
		t.Fatalf("unexpected year format %+v", year)
	}
}

func TestFormatDatetimePrefersLaterModification(t *testing.T) {
	mod := pub.AddDate(0, 1, 0)
	view := FormatDatetime(Normalize(Record{Title: "x", PubDatetime: pub, ModDatetime: &mod, Format: Ptr(DateFormatDate)}), DatetimeOptions{})
	if !view.Modified || view.Label() != "Updated" || view.Date != "5 Apr 2024" {
		t.Fatalf("expected updated view, got %+v", view)
	}

	same := pub
	view = FormatDatetime(Normalize(Record{Title: "x", PubDatetime: pub, ModDatetime: &same}), DatetimeOptions{})
	if view.Modified {
		t.Fatal("expected equal modification time to count as published")
	}
}

func TestFormatDatetimeConvertsLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	view := FormatDatetime(Normalize(Record{Title: "x", PubDatetime: pub}), DatetimeOptions{Location: tokyo})
	if view.Time != "11:07 PM" || view.ISO != "2024-03-05T23:07:00+09:00" {
		t.Fatalf("unexpected converted view %+v", view)
	}
}

func TestFormatDatetimeUnknownFormatFallsBackToFull(t *testing.T) {
	view := FormatDatetime(DisplayFields{PubDatetime: pub, DateFormat: "weird"}, DatetimeOptions{})
	if view.Format != DateFormatFull || view.Time == "" {
		t.Fatalf("expected full fallback, got %+v", view)
	}
}

func TestResolveLocale(t *testing.T) {
	cases := map[string]monday.Locale{
		"":      monday.LocaleEnUS,
		"en":    monday.LocaleEnUS,
		"en-EN": monday.LocaleEnUS,
		"en_US": monday.LocaleEnUS,
		"zz-ZZ": monday.LocaleEnUS,
	}
	for tag, want := range cases {
		if got := ResolveLocale(tag); got != want {
			t.Fatalf("ResolveLocale(%q): expected %s, got %s", tag, want, got)
		}
	}
}
