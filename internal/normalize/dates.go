package normalize

import (
	"strings"
	"time"
)

// Date formats observed in source files, attempted in order: month-name
// forms first, then year-first numerics, then month-first numerics. Purely
// numeric ambiguous dates are therefore read month-first; no locale
// detection is attempted.
var dateFormats = []string{
	"January 2 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"2006-1-2",
	"2006/1/2",
	"1-2-2006",
	"1/2/2006",
}

// ParseDate attempts to parse a date string in multiple common formats.
// Empty strings and the placeholder tokens "none"/"unknown" yield nil, as
// does unparseable input; a bad date empties the field rather than failing
// the row.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	switch strings.ToLower(s) {
	case "none", "unknown":
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
