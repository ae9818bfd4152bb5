// AngelaMos | 2026
// slug.go

package core

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces     = regexp.MustCompile(`\s+`)
	slugHyphens    = regexp.MustCompile(`-+`)
)

// Slugify derives a URL slug from a title. Non-ASCII letters are dropped,
// not transliterated: "Café México!" becomes "caf-mxico".
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugHyphens.ReplaceAllString(s, "-")
}

func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
