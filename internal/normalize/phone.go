package normalize

import (
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

// Placeholder sequences that show up as fake phone numbers in source files.
var phonePlaceholders = map[string]bool{
	"1234567890": true,
	"0123456789": true,
	"9876543210": true,
}

// CleanPhone normalizes a phone number to +1XXXXXXXXXX for confidently-valid
// 10-digit US numbers. Partial numbers (7-9 digits, e.g. missing an area
// code) are preserved as bare digit strings rather than discarded.
// International "+" numbers that are not US 11-digit form are returned as
// bare digits, unrewritten. Without a "+", any run of 11 or more digits
// with a leading 1 is kept whole under a "+" prefix. Repeated-digit and
// placeholder sequences with at least 7 significant digits are rejected
// outright.
func CleanPhone(raw string) *string {
	s := strings.TrimSpace(raw)
	startsPlus := strings.HasPrefix(s, "+")
	digits := nonDigit.ReplaceAllString(s, "")
	if digits == "" {
		return nil
	}

	core := digits
	if len(digits) > 10 {
		core = digits[len(digits)-10:]
	}
	if len(core) >= 7 {
		if repeatedDigit(core) || phonePlaceholders[core] {
			return nil
		}
	}

	switch {
	case startsPlus:
		if strings.HasPrefix(digits, "1") && len(digits) == 11 {
			return strPtr("+" + digits)
		}
		return strPtr(digits)
	case len(digits) >= 11 && strings.HasPrefix(digits, "1"):
		return strPtr("+" + digits)
	case len(digits) == 10:
		return strPtr("+1" + digits)
	case len(digits) >= 7 && len(digits) <= 9:
		return strPtr(digits)
	}
	return nil
}

// ContactablePhone reports whether a phone's digit-only form is a dialable
// US number: exactly 10 digits, or 11 digits with a leading 1.
func ContactablePhone(phone string) bool {
	digits := nonDigit.ReplaceAllString(phone, "")
	return len(digits) == 10 || (len(digits) == 11 && strings.HasPrefix(digits, "1"))
}

func repeatedDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func strPtr(s string) *string { return &s }
