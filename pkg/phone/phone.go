// Package phone normalizes member phone numbers before they are handed to
// the SMS delivery provider.
package phone

import "strings"

// Normalize returns an E.164-style number. Bare 10-digit local numbers get
// the default country code prepended; numbers that already carry a "+"
// prefix pass through with separators stripped.
func Normalize(raw, defaultCountryCode string) string {
	hasPlus := strings.HasPrefix(strings.TrimSpace(raw), "+")
	digits := strip(raw)
	if digits == "" {
		return ""
	}
	if hasPlus {
		return "+" + digits
	}
	if len(digits) == 10 {
		return defaultCountryCode + digits
	}
	return "+" + digits
}

func strip(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
