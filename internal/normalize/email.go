package normalize

import "strings"

// CleanEmail lowercases and trims an email, folding the "[at]" and "(at)"
// spellings seen in the wild into "@". Returns nil when the input is empty
// or the result contains no "@" at all. Stricter syntax checking happens at
// the validator layer, not here.
func CleanEmail(raw string) *string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "[at]", "@")
	s = strings.ReplaceAll(s, "(at)", "@")
	if !strings.Contains(s, "@") {
		return nil
	}
	return &s
}
