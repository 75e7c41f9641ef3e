// Package markdown renders lookup results as markdown strings for the
// tool transport and the CLI.
package markdown

import (
	"fmt"
	"strings"

	"theologai/core/crossref"
	"theologai/core/ref"
	"theologai/internal/fetch"
)

// Passage renders a scripture passage with its canonical heading.
func Passage(p *fetch.Passage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s (%s)\n\n", p.Reference, p.Translation)
	for _, line := range strings.Split(p.Text, "\n") {
		b.WriteString("> ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Commentary renders a commentary section with its source attribution.
func Commentary(c *fetch.Commentary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Commentary on %s\n\n", c.Reference)
	b.WriteString(c.Text)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "*Source: ccel.org/ccel/%s/%s.html*\n", c.Work, c.Section)
	return b.String()
}

// CrossReferences renders a vote-ordered cross-reference list.
func CrossReferences(r ref.Ref, refs []crossref.CrossRef) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Cross-references for %s\n\n", r.Display())
	if len(refs) == 0 {
		b.WriteString("No cross-references found.\n")
		return b.String()
	}
	for _, cr := range refs {
		fmt.Fprintf(&b, "- **%s** (%d votes)\n", cr.DisplayTo(), cr.Votes)
	}
	return b.String()
}

// ClassicSection renders a section of a classic work.
func ClassicSection(work, title, text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	b.WriteString(text)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "*Source: ccel.org (%s)*\n", work)
	return b.String()
}

// ConfessionSection renders one confession chapter section.
func ConfessionSection(document, chapterTitle string, chapter int, content string, topics []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s, Chapter %d: %s\n\n", document, chapter, chapterTitle)
	b.WriteString(content)
	b.WriteString("\n")
	if len(topics) > 0 {
		fmt.Fprintf(&b, "\n*Topics: %s*\n", strings.Join(topics, ", "))
	}
	return b.String()
}
