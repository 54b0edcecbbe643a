package site

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

/*
	Slug helpers
	------------
	- Slugs are the public identifiers of exhibitions and events.
	- Only lowercase ascii letters, digits and single dashes.
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
	validSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// MakeSlug generates a URL-safe slug from a title.
// Example: "Café Nights: Blue Period" -> "cafe-nights-blue-period"
func MakeSlug(title string) string {
	base, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		strings.TrimSpace(title),
	)
	if err != nil {
		base = title
	}
	base = strings.ToLower(base)
	base = strings.Join(strings.Fields(base), "-")
	base = nonSlug.ReplaceAllString(base, "-")
	base = multiDash.ReplaceAllString(base, "-")
	return strings.Trim(base, "-")
}

// ValidSlug reports whether s is already in slug form.
func ValidSlug(s string) bool {
	return validSlug.MatchString(s)
}
