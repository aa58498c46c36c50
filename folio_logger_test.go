package folio

import (
	"testing"

	"github.com/goliatone/go-folio/internal/logging/gologger"
)

func TestNewUsesGoLoggerProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "json"

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := module.provider.(*gologger.Provider); !ok {
		t.Fatalf("expected gologger provider, got %T", module.provider)
	}
}

func TestNewPrefersInjectedProvider(t *testing.T) {
	provider, err := gologger.NewProvider(gologger.Config{Level: "info"})
	if err != nil {
		t.Fatalf("provider: %v", err)
	}

	module, err := New(DefaultConfig(), WithLoggerProvider(provider))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if module.provider != provider {
		t.Fatalf("expected injected provider")
	}
}

func TestPostHref(t *testing.T) {
	cases := map[string]string{
		"":        "/posts/slug",
		"/blog":   "/blog/slug",
		"/notes/": "/notes/slug",
	}
	for base, want := range cases {
		if got := postHref(base, "slug"); got != want {
			t.Fatalf("postHref(%q): expected %q, got %q", base, want, got)
		}
	}
}
