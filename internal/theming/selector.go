// Package theming registers the site theme with go-theme and resolves the
// CSS custom properties for a light or dark variant.
package theming

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-folio/internal/runtimeconfig"
)

const (
	cssPrefix  = "--"
	fontPrefix = "--font-"
)

// ErrUnknownVariant is returned when a variant is not defined by the theme.
var ErrUnknownVariant = errors.New("theming: unknown variant")

// Selector resolves variants of the configured theme.
type Selector struct {
	registry     *gotheme.MemoryRegistry
	selector     gotheme.Selector
	darkSelector string
}

// NewSelector validates cfg and registers its manifest.
func NewSelector(cfg runtimeconfig.ThemeConfig) (*Selector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", runtimeconfig.ErrThemeInvalid, err)
	}

	manifest := cfg.Manifest
	registry := gotheme.NewRegistry()
	if err := registry.Register(&manifest); err != nil {
		return nil, fmt.Errorf("register theme %s: %w", manifest.Name, err)
	}

	return &Selector{
		registry: registry,
		selector: gotheme.Selector{
			Registry:       registry,
			DefaultTheme:   manifest.Name,
			DefaultVariant: cfg.DefaultVariant,
		},
		darkSelector: cfg.DarkModeSelector,
	}, nil
}

// Select returns the selection for variant. A blank variant selects the
// theme default.
func (s *Selector) Select(variant string) (*gotheme.Selection, error) {
	selection, err := s.selector.Select("", strings.TrimSpace(variant))
	if err != nil {
		return nil, err
	}
	if _, ok := selection.Manifest.Variants[selection.Variant]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, selection.Variant)
	}
	return selection, nil
}

// CSSVariables returns the custom properties for variant: the merged
// tokens as "--<token>" and the fonts as "--font-<name>".
func (s *Selector) CSSVariables(variant string) (map[string]string, error) {
	selection, err := s.Select(variant)
	if err != nil {
		return nil, err
	}
	vars := selection.CSSVariables(cssPrefix)
	for name, family := range selection.Manifest.Fonts {
		vars[fontPrefix+name] = family
	}
	return vars, nil
}

// DarkModeSelector is the CSS selector that switches to the dark variant.
func (s *Selector) DarkModeSelector() string {
	return s.darkSelector
}

// Themes lists the registered manifests.
func (s *Selector) Themes() []gotheme.ManifestRef {
	return s.registry.List()
}

// Tokens returns a copy of the merged tokens of variant.
func (s *Selector) Tokens(variant string) (map[string]string, error) {
	selection, err := s.Select(variant)
	if err != nil {
		return nil, err
	}
	return maps.Clone(selection.Tokens()), nil
}
