package card

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-folio/internal/posts"
)

var pub = time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)

func render(t *testing.T, props Props) string {
	t.Helper()
	var sb strings.Builder
	if err := Card(props).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func TestCardRendersFullMarkup(t *testing.T) {
	fields := posts.Normalize(posts.Record{
		Title:       "A/B Testing",
		PubDatetime: pub,
		Description: "Notes & results.",
		Image:       posts.Ptr("/img/ab.png"),
		Journal:     posts.Ptr("Journal of Things"),
		Format:      posts.Ptr(posts.DateFormatDate),
	})

	got := render(t, NewProps("/posts/a-b-testing", fields, posts.DatetimeOptions{}))

	want := `<li class="my-6 flex items-start space-x-4">` +
		`<img src="/img/ab.png" alt="A/B Testing" class="w-48 h-48 object-cover rounded-lg shadow-sm">` +
		`<div><a href="/posts/a-b-testing" class="inline-block text-lg font-medium text-skin-accent decoration-dashed underline-offset-4 focus-visible:no-underline focus-visible:underline-offset-0">` +
		`<h2 style="view-transition-name: a-b-testing" class="text-lg font-medium decoration-dashed hover:underline">A/B Testing</h2></a>` +
		`<div class="flex items-end space-x-2 opacity-80"><span class="sr-only">Published:</span><time datetime="2024-03-05T14:07:00Z">5 Mar 2024</time></div>` +
		`<p class="italic opacity-80">Journal of Things</p>` +
		`<p>Notes &amp; results.</p></div></li>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\ngot:  %s", want, got)
	}
}

func TestCardMinimal(t *testing.T) {
	fields := posts.Normalize(posts.Record{Title: "Hello, World!", PubDatetime: pub})
	got := render(t, NewProps("", fields, posts.DatetimeOptions{}))

	if strings.Contains(got, "<img") {
		t.Fatalf("expected no image, got %s", got)
	}
	if strings.Contains(got, "href=") {
		t.Fatalf("expected anchor without href, got %s", got)
	}
	if strings.Contains(got, "italic") {
		t.Fatalf("expected no journal line, got %s", got)
	}
	if !strings.Contains(got, `view-transition-name: hello-world`) {
		t.Fatalf("expected slug style, got %s", got)
	}
	if !strings.Contains(got, "<p></p>") {
		t.Fatalf("expected empty description paragraph, got %s", got)
	}
	if !strings.Contains(got, `5 Mar 2024<span aria-hidden="true"> | </span>02:07 PM`) {
		t.Fatalf("expected full datetime, got %s", got)
	}
}

func TestCardSubHeadingAndEscaping(t *testing.T) {
	fields := posts.Normalize(posts.Record{Title: `<script>"x"</script>`, PubDatetime: pub})
	props := NewProps("javascript:alert(1)", fields, posts.DatetimeOptions{})
	props.SubHeading = true

	got := render(t, props)
	if !strings.Contains(got, "<h3") || strings.Contains(got, "<h2") {
		t.Fatalf("expected h3 heading, got %s", got)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected title to be escaped, got %s", got)
	}
	if strings.Contains(got, "javascript:") || !strings.Contains(got, `href="#ZgotmplZ"`) {
		t.Fatalf("expected unsafe href to be sanitized, got %s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;&#34;x&#34;&lt;/script&gt;</h3>") {
		t.Fatalf("expected escaped heading text, got %s", got)
	}
}

func TestCardKeepsSlugStyleForCSSKeywords(t *testing.T) {
	fields := posts.Normalize(posts.Record{Title: "Expression Trees", PubDatetime: pub})
	got := render(t, NewProps("/x", fields, posts.DatetimeOptions{}))
	if !strings.Contains(got, `style="view-transition-name: expression-trees"`) {
		t.Fatalf("expected slug style, got %s", got)
	}
}

func TestCardStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fields := posts.Normalize(posts.Record{Title: "A", PubDatetime: pub})
	var sb strings.Builder
	if err := Card(NewProps("/a", fields, posts.DatetimeOptions{})).Render(ctx, &sb); err == nil {
		t.Fatal("expected context error")
	}
	if sb.Len() != 0 {
		t.Fatalf("expected no output, got %s", sb.String())
	}
}

func TestCardOmitsStyleForEmptySlug(t *testing.T) {
	fields := posts.Normalize(posts.Record{Title: "!!!", PubDatetime: pub})
	if got := render(t, NewProps("/x", fields, posts.DatetimeOptions{})); strings.Contains(got, "style=") {
		t.Fatalf("expected no style attribute, got %s", got)
	}
}

func TestCardShowsUpdatedLabel(t *testing.T) {
	mod := pub.AddDate(0, 0, 3)
	fields := posts.Normalize(posts.Record{Title: "Edited", PubDatetime: pub, ModDatetime: &mod})
	got := render(t, NewProps("/edited", fields, posts.DatetimeOptions{}))
	if !strings.Contains(got, "Updated:") || !strings.Contains(got, "8 Mar 2024") {
		t.Fatalf("expected updated datetime, got %s", got)
	}
}

func TestListWrapsCards(t *testing.T) {
	items := []Props{
		NewProps("/a", posts.Normalize(posts.Record{Title: "A", PubDatetime: pub}), posts.DatetimeOptions{}),
		NewProps("/b", posts.Normalize(posts.Record{Title: "B", PubDatetime: pub}), posts.DatetimeOptions{}),
	}
	var sb strings.Builder
	if err := List(items).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := sb.String()
	if got != "<ul>"+render(t, items[0])+render(t, items[1])+"</ul>" {
		t.Fatalf("expected list of rendered cards, got %s", got)
	}
	if !strings.HasPrefix(got, "<ul><li") || !strings.HasSuffix(got, "</li></ul>") || strings.Count(got, "<li") != 2 {
		t.Fatalf("unexpected list markup %s", got)
	}
}
