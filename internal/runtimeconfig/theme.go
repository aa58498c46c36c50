package runtimeconfig

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	gotheme "github.com/goliatone/go-theme"
)

// Theme variant names every folio theme must define.
const (
	VariantLight = "light"
	VariantDark  = "dark"
)

// Color tokens each variant carries as "r, g, b" triplets.
var colorTokens = []string{
	"color-text-base",
	"color-accent",
	"color-fill",
	"color-card",
	"color-card-muted",
	"color-border",
}

const breakpointPrefix = "breakpoint-"

var breakpointPattern = regexp.MustCompile(`^[0-9]+(px|rem|em)$`)

// ThemeConfig is a go-theme manifest plus the page level switches folio
// needs. Base tokens hold breakpoints; the light and dark variants hold the
// color tokens. Folio validates and exposes the tokens; it does not generate
// CSS.
type ThemeConfig struct {
	DarkModeSelector string `yaml:"darkModeSelector"`
	DefaultVariant   string `yaml:"defaultVariant"`

	gotheme.Manifest `yaml:",inline"`
}

// DefaultTheme returns the stock light and dark palettes.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		DarkModeSelector: "[data-theme='dark']",
		DefaultVariant:   VariantLight,
		Manifest: gotheme.Manifest{
			Name:        "folio",
			Version:     "1.0.0",
			Description: "Stock folio palette",
			Tokens: map[string]string{
				breakpointPrefix + "sm": "640px",
			},
			Fonts: map[string]string{
				"body":    "Inter, sans-serif",
				"code":    "Menlo, monospace",
				"heading": "Montserrat, sans-serif",
			},
			Variants: map[string]gotheme.Variant{
				VariantLight: {Tokens: map[string]string{
					"color-text-base":  "40, 39, 40",
					"color-accent":     "0, 108, 172",
					"color-fill":       "251, 254, 251",
					"color-card":       "230, 230, 230",
					"color-card-muted": "205, 205, 205",
					"color-border":     "236, 233, 233",
				}},
				VariantDark: {Tokens: map[string]string{
					"color-text-base":  "234, 237, 243",
					"color-accent":     "255, 107, 1",
					"color-fill":       "33, 39, 55",
					"color-card":       "52, 63, 96",
					"color-card-muted": "138, 51, 2",
					"color-border":     "171, 75, 8",
				}},
			},
		},
	}
}

// Validate runs the go-theme manifest checks, then folio's own rules for
// the selector, breakpoints, variants, colors and fonts.
func (t ThemeConfig) Validate() error {
	manifest := t.Manifest
	if err := manifest.Validate(); err != nil {
		return err
	}

	err := validation.ValidateStruct(&t,
		validation.Field(&t.DarkModeSelector, validation.Required),
		validation.Field(&t.DefaultVariant, validation.Required, validation.In(VariantLight, VariantDark)),
	)
	if err != nil {
		return err
	}

	for name, width := range t.Tokens {
		if !strings.HasPrefix(name, breakpointPrefix) {
			continue
		}
		if err := validation.Validate(strings.TrimSpace(width), validation.Match(breakpointPattern)); err != nil {
			return fmt.Errorf("breakpoint %q: %w", strings.TrimPrefix(name, breakpointPrefix), err)
		}
	}

	for _, variant := range []string{VariantLight, VariantDark} {
		if err := validateColors(variant, t.Variants[variant].Tokens); err != nil {
			return err
		}
	}

	for _, font := range []string{"body", "heading"} {
		if strings.TrimSpace(t.Fonts[font]) == "" {
			return fmt.Errorf("fonts: %s is required", font)
		}
	}
	return nil
}

func validateColors(variant string, tokens map[string]string) error {
	if tokens == nil {
		return fmt.Errorf("variant %q is required", variant)
	}
	for _, name := range colorTokens {
		if err := validation.Validate(tokens[name], validation.Required, validation.By(rgbTriplet)); err != nil {
			return fmt.Errorf("%s.%s: %w", variant, name, err)
		}
	}
	return nil
}

// ColorTokens returns the color tokens of variant, keyed by token name.
func (t ThemeConfig) ColorTokens(variant string) map[string]string {
	out := make(map[string]string, len(colorTokens))
	for _, name := range colorTokens {
		if value, ok := t.Variants[variant].Tokens[name]; ok {
			out[name] = value
		}
	}
	return out
}

// VariantNames lists the variants in name order.
func (t ThemeConfig) VariantNames() []string {
	return slices.Sorted(maps.Keys(t.Variants))
}

func rgbTriplet(value any) error {
	s, _ := value.(string)
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return validation.NewError("validation_rgb_triplet", "must be an \"r, g, b\" triplet")
	}
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return validation.NewError("validation_rgb_triplet", "channels must be integers between 0 and 255")
		}
	}
	return nil
}

func (t ThemeConfig) clone() ThemeConfig {
	out := t
	out.Tokens = maps.Clone(t.Tokens)
	out.Fonts = maps.Clone(t.Fonts)
	out.Templates = maps.Clone(t.Templates)
	out.Assets.Files = maps.Clone(t.Assets.Files)
	if t.Variants != nil {
		out.Variants = make(map[string]gotheme.Variant, len(t.Variants))
		for name, variant := range t.Variants {
			variant.Tokens = maps.Clone(variant.Tokens)
			variant.Templates = maps.Clone(variant.Templates)
			variant.Assets.Files = maps.Clone(variant.Assets.Files)
			out.Variants[name] = variant
		}
	}
	return out
}
