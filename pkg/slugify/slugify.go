package slugify

import (
	"strings"
)

// transliterate maps the accented characters that appear in brand names to
// their ASCII equivalents before slugging.
var transliterate = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
	"é", "e", "è", "e",
	"ë", "e", "Ë", "e",
	"á", "a", "à", "a",
)

// Slug derives the icon-CDN lookup key for a brand display name: lowercase,
// with spaces, dots and slashes collapsed, diacritics transliterated, and any
// remaining character outside [a-z0-9-] dropped.
func Slug(name string) string {
	s := transliterate.Replace(name)
	s = strings.ToLower(s)
	s = strings.NewReplacer(" ", "-", ".", "dot", "/", "-").Replace(s)

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
