package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var multiSpace = regexp.MustCompile(`\s+`)

// TitleName trims, collapses whitespace, and title-cases a person-name
// field. Returns nil if the result is empty. Casing follows Unicode word
// segmentation: hyphens start a new word ("Mary-Jane") but an apostrophe
// does not, so "o'brien" becomes "O'brien", not "O'Brien".
func TitleName(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = multiSpace.ReplaceAllString(s, " ")
	// cases.Caser is stateful, so build one per call.
	s = cases.Title(language.English).String(s)
	return &s
}

// TrimField trims whitespace and returns nil for empty input. Used for
// free-text fields that need no further normalization.
func TrimField(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}
