package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	ErrSiteTitleRequired       = errors.New("folio config: site title is required")
	ErrSiteURLInvalid          = errors.New("folio config: site url is invalid")
	ErrPostsPerPageInvalid     = errors.New("folio config: posts per page must be positive")
	ErrPostsPerIndexInvalid    = errors.New("folio config: posts per index must be zero or positive")
	ErrScheduledMarginInvalid  = errors.New("folio config: scheduled post margin must be zero or positive")
	ErrTimezoneInvalid         = errors.New("folio config: timezone is invalid")
	ErrEditPostURLInvalid      = errors.New("folio config: edit post url is invalid")
	ErrLocaleLangRequired      = errors.New("folio config: locale lang is required")
	ErrLogoDimensionsInvalid   = errors.New("folio config: logo width and height must be positive when the logo is enabled")
	ErrSocialInvalid           = errors.New("folio config: social link is invalid")
	ErrThemeInvalid            = errors.New("folio config: theme is invalid")
	ErrLoggingProviderRequired = errors.New("folio config: logging provider is required")
	ErrLoggingProviderUnknown  = errors.New("folio config: logging provider is invalid")
	ErrLoggingLevelInvalid     = errors.New("folio config: logging level is invalid")
	ErrLoggingFormatInvalid    = errors.New("folio config: logging format is invalid")
)

// Config is the site-wide configuration. It is built once at startup and
// handed around by value; use Clone before mutating nested slices or maps.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Locale  LocaleConfig  `yaml:"locale"`
	Logo    LogoConfig    `yaml:"logo"`
	Socials []Social      `yaml:"socials"`
	Theme   ThemeConfig   `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`
	// Debug enables per-post normalization traces at DEBUG level.
	Debug bool `yaml:"debug"`
}

// SiteConfig holds site metadata and listing behaviour.
type SiteConfig struct {
	Website             string         `yaml:"website"`
	Author              string         `yaml:"author"`
	Profile             string         `yaml:"profile"`
	Description         string         `yaml:"desc"`
	Title               string         `yaml:"title"`
	OGImage             string         `yaml:"ogImage"`
	LightAndDarkMode    bool           `yaml:"lightAndDarkMode"`
	PostPerIndex        int            `yaml:"postPerIndex"`
	PostPerPage         int            `yaml:"postPerPage"`
	ScheduledPostMargin time.Duration  `yaml:"scheduledPostMargin"`
	ShowArchives        bool           `yaml:"showArchives"`
	Timezone            string         `yaml:"timezone"`
	EditPost            EditPostConfig `yaml:"editPost"`
}

// EditPostConfig describes the "suggest changes" link shown on posts.
type EditPostConfig struct {
	URL            string `yaml:"url"`
	Text           string `yaml:"text"`
	AppendFilePath bool   `yaml:"appendFilePath"`
}

// LocaleConfig selects the document language and date locale.
type LocaleConfig struct {
	Lang     string   `yaml:"lang"`
	LangTags []string `yaml:"langTag"`
}

// LogoConfig describes the header logo.
type LogoConfig struct {
	Enable bool `yaml:"enable"`
	SVG    bool `yaml:"svg"`
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
}

// LoggingConfig selects the logger provider.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"addSource"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns defaults suitable for local previews.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Title:               "folio",
			Description:         "A personal website.",
			OGImage:             "/assets/og.png",
			LightAndDarkMode:    true,
			PostPerIndex:        4,
			PostPerPage:         3,
			ScheduledPostMargin: 15 * time.Minute,
			ShowArchives:        true,
			Timezone:            "UTC",
			EditPost: EditPostConfig{
				Text:           "Suggest Changes",
				AppendFilePath: true,
			},
		},
		Locale: LocaleConfig{
			Lang:     "en",
			LangTags: []string{"en-EN"},
		},
		Logo: LogoConfig{
			Enable: false,
			SVG:    true,
			Width:  216,
			Height: 46,
		},
		Theme: DefaultTheme(),
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate checks the configuration and returns the first problem found.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Site.Title) == "" {
		return ErrSiteTitleRequired
	}
	if website := strings.TrimSpace(cfg.Site.Website); website != "" && !isAbsoluteURL(website) {
		return fmt.Errorf("%w: %s", ErrSiteURLInvalid, website)
	}
	if cfg.Site.PostPerPage <= 0 {
		return fmt.Errorf("%w: %d", ErrPostsPerPageInvalid, cfg.Site.PostPerPage)
	}
	if cfg.Site.PostPerIndex < 0 {
		return fmt.Errorf("%w: %d", ErrPostsPerIndexInvalid, cfg.Site.PostPerIndex)
	}
	if cfg.Site.ScheduledPostMargin < 0 {
		return fmt.Errorf("%w: %s", ErrScheduledMarginInvalid, cfg.Site.ScheduledPostMargin)
	}
	if _, err := time.LoadLocation(strings.TrimSpace(cfg.Site.Timezone)); err != nil {
		return fmt.Errorf("%w: %v", ErrTimezoneInvalid, err)
	}
	if editURL := strings.TrimSpace(cfg.Site.EditPost.URL); editURL != "" && !isAbsoluteURL(editURL) {
		return fmt.Errorf("%w: %s", ErrEditPostURLInvalid, editURL)
	}
	if strings.TrimSpace(cfg.Locale.Lang) == "" {
		return ErrLocaleLangRequired
	}
	if cfg.Logo.Enable && (cfg.Logo.Width <= 0 || cfg.Logo.Height <= 0) {
		return ErrLogoDimensionsInvalid
	}
	if err := validateSocials(cfg.Socials); err != nil {
		return fmt.Errorf("%w: %v", ErrSocialInvalid, err)
	}
	if err := cfg.Theme.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrThemeInvalid, err)
	}
	return cfg.Logging.validate()
}

func (l LoggingConfig) validate() error {
	provider := NormalizeProvider(l.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(l.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(l.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// Location returns the configured timezone, UTC when unset or invalid.
func (cfg Config) Location() *time.Location {
	loc, err := time.LoadLocation(strings.TrimSpace(cfg.Site.Timezone))
	if err != nil {
		return time.UTC
	}
	return loc
}

// LangTag returns the preferred BCP 47 tag, falling back to Lang.
func (cfg Config) LangTag() string {
	for _, tag := range cfg.Locale.LangTags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			return trimmed
		}
	}
	return strings.TrimSpace(cfg.Locale.Lang)
}

// EditURL returns the edit link for a post stored at filePath, or "" when no
// edit URL is configured.
func (cfg Config) EditURL(filePath string) string {
	base := strings.TrimSpace(cfg.Site.EditPost.URL)
	if base == "" {
		return ""
	}
	if !cfg.Site.EditPost.AppendFilePath {
		return base
	}
	filePath = strings.TrimSpace(filePath)
	if filePath == "" {
		return base
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(filePath, "/")
}

// Clone returns a deep copy of cfg.
func (cfg Config) Clone() Config {
	out := cfg
	out.Locale.LangTags = append([]string(nil), cfg.Locale.LangTags...)
	out.Socials = append([]Social(nil), cfg.Socials...)
	out.Theme = cfg.Theme.clone()
	out.Logging.Focus = append([]string(nil), cfg.Logging.Focus...)
	return out
}

// NormalizeProvider lowercases and trims a logging provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

func isAbsoluteURL(value string) bool {
	parsed, err := url.Parse(value)
	return err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
