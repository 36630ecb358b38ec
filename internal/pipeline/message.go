package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jumbo-cdp/leadqual/internal/config"
)

// substitutionPoint is the only placeholder recognized in message templates.
const substitutionPoint = "{first_name}"

// defaultFallback is used when no fallback name is configured.
const defaultFallback = "Cliente"

// Composer renders personalized outreach messages. The template is injected
// configuration, so copy variants swap without touching name extraction.
type Composer struct {
	template string
	fallback string
}

// NewComposer builds a Composer from message configuration.
func NewComposer(cfg config.MessageConfig) Composer {
	c := Composer{template: cfg.Template, fallback: cfg.Fallback}
	if c.template == "" {
		c.template = config.DefaultTemplate
	}
	if c.fallback == "" {
		c.fallback = defaultFallback
	}
	return c
}

// FirstName extracts the display first name: the first whitespace-delimited
// token of the trimmed full name with its leading rune upcased. The rest of
// the token keeps its original case. Empty or whitespace-only input yields
// the fallback name; this never returns "".
func (c Composer) FirstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return c.fallback
	}

	token := fields[0]
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError {
		return c.fallback
	}
	return string(unicode.ToUpper(r)) + token[size:]
}

// Compose returns the display first name and the fully rendered message body.
func (c Composer) Compose(fullName string) (firstName, body string) {
	firstName = c.FirstName(fullName)
	body = strings.ReplaceAll(c.template, substitutionPoint, firstName)
	return firstName, body
}
