package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText lowercases a string and strips accents and diacritics so
// that search matching treats "Café" and "cafe" as equal.
func NormalizeText(s string) string {
	if s == "" {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, s)
	if err != nil {
		normalized = s
	}

	return strings.ToLower(normalized)
}

// NormalizeTags normalizes every tag in a list. Nil stays nil.
func NormalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	result := make([]string, len(tags))
	for i, tag := range tags {
		result[i] = NormalizeText(tag)
	}
	return result
}
