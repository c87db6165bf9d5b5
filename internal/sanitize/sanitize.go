// Package sanitize strips unsafe markup and control characters from text
// before it enters position-sensitive processing.
package sanitize

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Clean normalizes raw text from users or models: markup is reduced to its
// text content, control characters are removed, line endings become LF and
// surrounding whitespace is trimmed. Clean is pure and idempotent.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	text := normalizeNewlines(raw)
	text = stripMarkup(text)
	text = stripControl(text)
	return strings.TrimSpace(text)
}

// normalizeNewlines converts CRLF and bare CR to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// stripMarkup removes HTML tags and attributes, keeping text content only.
// Script and style bodies are dropped entirely so model-injected code never
// reaches the client. Input without a '<' is returned untouched, which also
// keeps entity references stable across repeated calls.
func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		// Unparseable input: fall back to dropping anything tag-shaped.
		return stripTagsFallback(s)
	}
	doc.Find("script, style").Remove()
	return doc.Text()
}

// stripTagsFallback removes <...> spans without parsing. Only used when the
// HTML parser itself fails.
func stripTagsFallback(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripControl drops control and zero-width characters that would corrupt
// offset arithmetic downstream. Newlines and tabs survive.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		switch r {
		case '\u200b', '\u200c', '\u200d', '\ufeff':
			return -1
		}
		return r
	}, s)
}
