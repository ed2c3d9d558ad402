package normalize

import (
	"regexp"
	"strings"
)

var (
	commaSpacing       = regexp.MustCompile(`\s*,[\s,]*`)
	addressPlaceholder = regexp.MustCompile(`(?i)\b(unknown|none)\b`)
)

// CleanAddress trims quotes and whitespace, collapses internal whitespace
// runs, and normalizes comma runs to a single ", " with no leading or
// trailing commas. Addresses containing the standalone words "unknown" or "none" are
// treated as placeholders and dropped. The address stays a single opaque
// string; no street/city/zip splitting is attempted.
func CleanAddress(raw string) *string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"'`)
	if s == "" {
		return nil
	}

	s = commaSpacing.ReplaceAllString(s, ", ")
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.Trim(s, ", ")
	if s == "" {
		return nil
	}

	if addressPlaceholder.MatchString(s) {
		return nil
	}
	return &s
}
