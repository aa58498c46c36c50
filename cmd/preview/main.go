package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	folio "github.com/goliatone/go-folio"
)

var moduleBuilder = folio.New

type postFixture struct {
	Source   string         `yaml:"source"`
	Metadata map[string]any `yaml:"metadata"`
}

type options struct {
	configPath string
	postsPath  string
	page       int
	drafts     bool
	basePath   string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("preview: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg := folio.DefaultConfig()
	if opts.configPath != "" {
		if cfg, err = folio.LoadConfig(opts.configPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	module, err := moduleBuilder(cfg, folio.WithLogWriter(stderr), folio.WithPreview(opts.drafts))
	if err != nil {
		return fmt.Errorf("configure module: %w", err)
	}

	fixtures, err := loadPosts(opts.postsPath)
	if err != nil {
		return err
	}

	raws := make([]folio.RawEntry, 0, len(fixtures))
	for _, fixture := range fixtures {
		raws = append(raws, folio.RawEntry{Source: fixture.Source, Metadata: fixture.Metadata})
	}

	result := module.Ingest(ctx, raws)
	for _, diag := range result.Diagnostics {
		fmt.Fprintf(stderr, "rejected %s: %v\n", diag.Source, diag.Err)
	}

	page := module.Page(result.Entries, opts.page)
	if err := module.Cards(page.Entries, opts.basePath).Render(ctx, stdout); err != nil {
		return fmt.Errorf("render cards: %w", err)
	}
	fmt.Fprintf(stdout, "\n<!-- page %d of %d, %d posts -->\n", page.Number, page.TotalPages, page.TotalItems)
	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "Path to the site YAML configuration (defaults are used when empty)")
	fs.StringVar(&opts.postsPath, "posts", "", "Path to a YAML list of {source, metadata} post fixtures")
	fs.IntVar(&opts.page, "page", 1, "Page number to render")
	fs.BoolVar(&opts.drafts, "drafts", false, "Include drafts and scheduled posts")
	fs.StringVar(&opts.basePath, "base-path", "/posts/", "Path prefix for post links")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.postsPath == "" {
		return options{}, errors.New("--posts is required")
	}
	return opts, nil
}

func loadPosts(path string) ([]postFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read posts: %w", err)
	}
	var fixtures []postFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return fixtures, nil
}
