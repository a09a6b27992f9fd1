package services

import "strings"

// NormalizeTag canonicalizes a free-text tag into a comparable slug:
// surrounding whitespace trimmed, lowercased, internal whitespace runs
// collapsed to single hyphens. Returns "" for empty or whitespace-only input.
func NormalizeTag(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(trimmed)), "-")
}

// NormalizeTags slugifies a tag list, dropping entries that normalize to nothing
func NormalizeTags(raw []string) []string {
	var slugs []string
	for _, tag := range raw {
		if slug := NormalizeTag(tag); slug != "" {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}
