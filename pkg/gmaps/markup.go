package gmaps

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup removes HTML tags from a Directions instruction and decodes
// character entities, leaving plain text. The Directions API embeds markup
// such as <b> and <div> in html_instructions.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			// Text tokens arrive with entities already decoded.
			b.Write(tok.Text())
		}
	}
}
