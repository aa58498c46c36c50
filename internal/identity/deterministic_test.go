package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestPostUUIDIsStable(t *testing.T) {
	first := PostUUID("posts/hello-world.md")
	second := PostUUID("posts/hello-world.md")
	if first == uuid.Nil {
		t.Fatal("expected non-nil id")
	}
	if first != second {
		t.Fatalf("expected stable id, got %s and %s", first, second)
	}
}

func TestPostUUIDNormalizesSeparators(t *testing.T) {
	if PostUUID(`posts\hello.md`) != PostUUID("posts/hello.md") {
		t.Fatal("expected separator-insensitive ids")
	}
}

func TestPostUUIDDistinguishesSources(t *testing.T) {
	if PostUUID("posts/a.md") == PostUUID("posts/b.md") {
		t.Fatal("expected distinct ids for distinct sources")
	}
}

func TestBlankKeysMapToNil(t *testing.T) {
	if UUID("   ") != uuid.Nil {
		t.Fatal("expected nil uuid for blank key")
	}
	if PostUUID("") != uuid.Nil {
		t.Fatal("expected nil uuid for blank source")
	}
}

func TestUUIDKeepsKeysDistinct(t *testing.T) {
	pairs := [][2]string{
		{"posts/a_b.md", "posts/ab.md"},
		{"posts/Post.md", "posts/post.md"},
		{"folio:title:日本語", "folio:title:Ελληνικά"},
	}
	for _, pair := range pairs {
		if UUID(pair[0]) == UUID(pair[1]) {
			t.Fatalf("expected distinct ids for %q and %q", pair[0], pair[1])
		}
	}
}

func TestTitleUUID(t *testing.T) {
	if TitleUUID("日本語") == TitleUUID("Ελληνικά") {
		t.Fatal("expected distinct ids for distinct titles")
	}
	if TitleUUID(" 日本語 ") != TitleUUID("日本語") {
		t.Fatal("expected surrounding whitespace to be ignored")
	}
	if TitleUUID("notes.md") == PostUUID("notes.md") {
		t.Fatal("expected title and source keys not to collide")
	}
	if TitleUUID("") != uuid.Nil {
		t.Fatal("expected nil uuid for blank title")
	}
}

func TestToken(t *testing.T) {
	id := PostUUID("posts/hello.md")
	token := Token(id)
	if len(token) != 12 {
		t.Fatalf("expected 12 character token, got %q", token)
	}
	for _, r := range token {
		if !(r >= '0' && r <= '9') && !(r >= 'a' && r <= 'f') {
			t.Fatalf("expected lowercase hex token, got %q", token)
		}
	}
	if Token(id) != token {
		t.Fatal("expected stable token")
	}
	if Token(uuid.Nil) != "" {
		t.Fatal("expected empty token for nil uuid")
	}
}
