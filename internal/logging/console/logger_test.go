package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 3, 14, 15, 9, 26, 535897000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		Clock:    func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("folio.ingest")
	logger = logging.WithFields(logger, map[string]any{"module": "folio.ingest"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"build_id": "b-42",
	})
	logger = logger.WithContext(ctx)

	logger.Warn("post.rejected",
		"source", "posts/draft.md",
		"pub_datetime", time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		"error", errors.New("title is required"),
	)

	got := strings.TrimSpace(buf.String())
	want := `2024-03-14T15:09:26.535897Z WARN post.rejected build_id=b-42 error="title is required" logger=folio.ingest module=folio.ingest pub_datetime=2024-03-15T08:00:00Z source=posts/draft.md`
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		Clock:    time.Now,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("folio.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
}

func TestConsoleLogger_DanglingArgument(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{
		Writer: &buf,
		Clock:  func() time.Time { return time.Unix(0, 0) },
	})

	provider.GetLogger("x").Info("msg", "k", 1, "orphan")

	got := strings.TrimSpace(buf.String())
	want := "1970-01-01T00:00:00Z INFO msg field_1=orphan k=1 logger=x"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]console.Level{
		"trace":   console.LevelTrace,
		" DEBUG ": console.LevelDebug,
		"warning": console.LevelWarn,
		"error":   console.LevelError,
	}
	for input, want := range cases {
		got, ok := console.ParseLevel(input)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q): expected %s, got %s (ok=%v)", input, want, got, ok)
		}
	}
	if _, ok := console.ParseLevel("loud"); ok {
		t.Fatalf("expected unknown level to be rejected")
	}
}

func TestConsoleLogger_FormatsFolioValues(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{
		Writer: &buf,
		Clock:  func() time.Time { return time.Unix(0, 0) },
	})

	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	provider.GetLogger("folio.ingest").Debug("post.accepted",
		"id", id,
		"hidden", 2,
		"debug", true,
		"heading", "Hello, World!",
		"journal", "",
		"missing", nil,
	)

	got := strings.TrimSpace(buf.String())
	want := `1970-01-01T00:00:00Z DEBUG post.accepted debug=true heading="Hello, World!" hidden=2 id=6ba7b810-9dad-11d1-80b4-00c04fd430c8 journal="" logger=folio.ingest missing=null`
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}
