// Package slug derives URL-safe identifiers from post titles.
//
// Derived slugs use the alphabet a-z, 0-9 and single interior hyphens. They
// are computed on demand and never stored, so the same title always yields
// the same slug.
package slug

import (
	"strings"
	"sync"
	"unicode"

	goslug "github.com/goliatone/go-slug"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = '-'

// charMap is go-slug's transliteration table, loaded once and shared
// read-only across goroutines.
var charMap = sync.OnceValues(goslug.GetCharMap)

// Derive maps text to its slug. Letters are transliterated through the
// go-slug character map ("ß" to "ss", "Ж" to "zh", "&" to "and"), any
// remaining diacritics are stripped and the result is lowercased. Every run
// of characters outside a-z0-9 collapses into one hyphen and hyphens at
// either end are dropped. Input without alphanumeric content yields "".
func Derive(text string) string {
	if text == "" {
		return ""
	}

	folded := fold(transliterate(text))

	var b strings.Builder
	b.Grow(len(folded))
	pending := false
	for _, r := range folded {
		r = unicode.ToLower(r)
		if isSlugRune(r) {
			if pending && b.Len() > 0 {
				b.WriteRune(separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// FromOverride normalizes an explicit slug supplied by an author. The value
// goes through go-slug first and the result is re-derived so it always
// satisfies the Derive alphabet.
func FromOverride(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	normalized, err := goslug.Normalize(trimmed)
	if err != nil || normalized == "" {
		return Derive(trimmed)
	}
	return Derive(normalized)
}

// IsNormalized reports whether value is already a derived slug.
func IsNormalized(value string) bool {
	return value != "" && Derive(value) == value
}

// transliterate applies the go-slug character map. Apostrophes, dots and
// the other characters go-slug drops are removed rather than turned into
// separators; underscores are kept as word breaks.
func transliterate(text string) string {
	mapping, err := charMap()
	if err != nil {
		return text
	}
	out, err := goslug.HashNormalizeWithCharMap(strings.ReplaceAll(text, "_", " "), mapping)
	if err != nil {
		return text
	}
	return out
}

// fold decomposes text and removes combining marks so "é" becomes "e".
func fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
