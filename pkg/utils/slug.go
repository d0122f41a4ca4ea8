package utils

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	htmlTags     = regexp.MustCompile(`<[^>]+>`)
)

// Slugify converts a title to a lowercase, hyphen-separated identifier.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonSlugChars.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// StripTags removes HTML tags, used to derive an excerpt from rich content.
func StripTags(s string) string {
	return strings.TrimSpace(htmlTags.ReplaceAllString(s, ""))
}

// Excerpt returns the first n runes of the tag-stripped content.
func Excerpt(content string, n int) string {
	plain := StripTags(content)
	runes := []rune(plain)
	if len(runes) <= n {
		return plain
	}

	return string(runes[:n])
}
