package domain

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripTagsPolicy = bluemonday.StripTagsPolicy()

// NormalizeText trims surrounding whitespace from user-supplied text. The
// rest of the text is stored exactly as written; renderers escape it.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}

// IsBlank reports whether text has no visible characters.
func IsBlank(text string) bool {
	return NormalizeText(text) == ""
}

// ContainsMarkup reports whether text carries HTML tags or comments, that is
// whether stripping markup would change what the user wrote. Entities such as
// "&lt;" and a bare "<" or "&" are plain text and do not count.
func ContainsMarkup(text string) bool {
	if !strings.Contains(text, "<") {
		return false
	}
	stripped := html.UnescapeString(stripTagsPolicy.Sanitize(text))
	return stripped != html.UnescapeString(normalizeNewlines(text))
}

// normalizeNewlines mirrors the HTML tokenizer, which reports "\r\n" and a
// lone "\r" as "\n".
func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
