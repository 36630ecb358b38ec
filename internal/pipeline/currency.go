package pipeline

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// ParseBRL parses Brazilian-formatted monetary text: optional "R$" marker,
// period as thousands separator, comma as decimal separator.
func ParseBRL(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatBRL re-renders monetary text as "R$ 1.234,50" with exactly two
// decimal digits and pt-BR separators. Unparsable input is returned
// unchanged rather than dropped; downstream display keeps whatever the
// report carried.
func FormatBRL(raw string) string {
	v, ok := ParseBRL(raw)
	if !ok {
		return raw
	}
	return "R$ " + brlPrinter.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}
