package models

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify derives the canonical identifier for tags and categories from a
// display title: lower-cased, with each run of whitespace replaced by a single
// hyphen. Applying Slugify to its own output is a no-op, so re-deriving an id
// from the same title is idempotent.
func Slugify(title string) string {
	trimmed := strings.TrimSpace(title)
	return whitespaceRun.ReplaceAllString(strings.ToLower(trimmed), "-")
}
