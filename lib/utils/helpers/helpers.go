package helpers

import (
	"strings"
	"time"
	"unicode"
)

// DigitsOnly strips everything except ASCII digits. Applied on entry to
// id-card, phone and zipcode fields, so the stored value never holds
// separators a user may have typed. Idempotent on digit-only input.
func DigitsOnly(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HasThaiRune reports whether the string contains at least one character of
// the Thai unicode block (U+0E00-U+0E7F).
func HasThaiRune(value string) bool {
	for _, r := range value {
		if r >= 0x0E00 && r <= 0x0E7F {
			return true
		}
	}
	return false
}

// IsEnglishFullName accepts latin letters and spaces only, and requires an
// internal space, so a lone first name does not pass.
func IsEnglishFullName(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r != ' ' && !unicode.IsLetter(r) {
			return false
		}
		if r > unicode.MaxASCII {
			return false
		}
	}
	return strings.Contains(strings.TrimSpace(value), " ")
}

// IsEmail checks the local@domain.tld shape: a single @, at least one dot
// after it, no whitespace.
func IsEmail(value string) bool {
	if value == "" || strings.ContainsAny(value, " \t\r\n") {
		return false
	}
	at := strings.Index(value, "@")
	if at <= 0 || at != strings.LastIndex(value, "@") {
		return false
	}
	domain := value[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// DateNow returns the date part of the current time, the format the
// applicant record stores for submission and signature dates.
func DateNow() string {
	return time.Now().Format("2006-01-02")
}
