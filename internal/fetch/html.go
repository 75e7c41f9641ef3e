package fetch

import (
	"html"
	"regexp"
	"strings"
)

var (
	scriptBlock = regexp.MustCompile(`(?is)<(script|style)\b.*?</(script|style)>`)
	blockBreak  = regexp.MustCompile(`(?i)</?(p|div|h[1-6]|li|tr|blockquote)\b[^>]*>|<br\s*/?>`)
	anyTag      = regexp.MustCompile(`(?s)<[^>]*>`)
	multiBlank  = regexp.MustCompile(`\n{3,}`)
	lineSpace   = regexp.MustCompile(`[ \t]+`)
)

// StripHTML reduces an HTML page to readable plain text. Block-level
// elements become line breaks; everything else is flattened.
func StripHTML(markup string) string {
	text := scriptBlock.ReplaceAllString(markup, "")
	text = blockBreak.ReplaceAllString(text, "\n")
	text = anyTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(lineSpace.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = multiBlank.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
