package generation

import (
	"regexp"
	"strings"
)

// Fence markers are removed wherever they appear: ``` optionally followed
// by a json tag and trailing whitespace. Other words after a fence are kept.
var codeFence = regexp.MustCompile("(?i)```(?:json\\b)?\\s*")

// NormalizeResponse strips code fences and slices the text to the span
// between the first '{' and the last '}'. Text without such a span is
// returned trimmed and de-fenced. Braces inside prose or string values can
// mislead the slice; a parse failure then falls back to synthesis.
func NormalizeResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = codeFence.ReplaceAllString(cleaned, "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end > start {
		return cleaned[start : end+1]
	}
	return strings.TrimSpace(cleaned)
}
