package pipeline

import (
	"net/url"
	"strings"
	"unicode"
)

// NormalizePhone strips a phone field down to its digits. Spaces,
// parentheses, dashes, and any other characters are discarded.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WebLink builds the wa.me deep link with the message body pre-filled as a
// query parameter. Suited to browser targets that accept long URIs.
func WebLink(phone, body string) string {
	return "https://wa.me/" + NormalizePhone(phone) + "?text=" + url.QueryEscape(body)
}

// AppLink builds the native whatsapp:// link. The message body is omitted:
// some app builds truncate or reject over-long URIs, so the caller sends the
// text separately. The country code is prepended unless already present.
func AppLink(phone, countryCode string) string {
	digits := NormalizePhone(phone)
	if countryCode != "" && !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return "whatsapp://send?phone=" + digits
}
