// Package sanitize cleans user-provided text before storage. Listing titles,
// descriptions, and lifestyle tags are rendered back to other users, so
// markup is stripped on the way in.
package sanitize

import (
	"regexp"
	"strings"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// Text strips HTML tags and trims surrounding whitespace. Entities are
// decoded and the result re-stripped to catch encoded tags.
func Text(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", `"`,
		"&#39;", "'",
	).Replace(result)
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}
