// Package slug provides URL-friendly slug normalization. Submitted slugs
// are normalized on every write so stored slugs are always routable.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// accents transliterates the Portuguese accented letters that show up in
// category names and post titles before the non-ASCII strip runs.
var accents = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Educação & Cultura" → "educacao-cultura"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = accents.Replace(result)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}
