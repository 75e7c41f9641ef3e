package toc

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"theologai/core/xml"
)

// prefatoryMarker is the dotted segment CCEL uses for front matter. The
// filter flags only paths whose second segment is exactly this marker;
// a textual-prefix check would wrongly reject sections like "work.ii"
// that merely share the leading characters.
const prefatoryMarker = "i"

// tocClass matches the paragraph class carrying the nesting level, e.g.
// "TOC2".
var tocClass = regexp.MustCompile(`^TOC(\d+)$`)

// fallbackAnchor is the flat anchor scan used when the structured pattern
// yields nothing.
var (
	fallbackAnchor = regexp.MustCompile(`(?is)<a\s[^>]*href="([^"]+)"[^>]*>(.*?)</a>`)
	tagPattern     = regexp.MustCompile(`(?s)<[^>]*>`)
)

// Extract pulls the ordered table-of-contents entries out of scraped
// markup. The primary stage parses the document and walks the structured
// paragraph-anchor pattern; if that yields no entries at all (including
// when the markup does not parse), a simpler anchor scan produces flat
// level-1 entries. Extract never fails: an empty slice is a valid result
// for a page with nothing recognizable on it.
func Extract(markup string) []Entry {
	entries := extractStructured(markup)
	if len(entries) == 0 {
		entries = extractFallback(markup)
	}
	return entries
}

func extractStructured(markup string) []Entry {
	doc, err := xml.Parse(markup)
	if err != nil {
		return nil
	}
	anchors, err := doc.Query(`//p[starts-with(@class,"TOC")]//a[@href]`)
	if err != nil {
		return nil
	}

	var entries []Entry
	currentBook, currentPart := 0, 0
	for _, a := range anchors {
		section, ok := sectionID(a.Attr("href"))
		if !ok {
			continue
		}
		title := collapseSpace(a.Text())
		if title == "" || skipSection(section) {
			continue
		}

		e := Entry{
			Section: section,
			Title:   title,
			Level:   anchorLevel(a),
		}
		nums := titleNumbers(title)
		e.Book, e.Chapter, e.Part, e.Question, e.Article =
			nums.Book, nums.Chapter, nums.Part, nums.Question, nums.Article

		// Sticky inheritance, strictly in document order: a declared book
		// becomes current and is inherited by later chapter entries that
		// omit it; a declared part is inherited by chapter-less question
		// entries. Entries already emitted are never revisited.
		if e.Book != 0 {
			currentBook = e.Book
		} else if e.Chapter != 0 && currentBook != 0 {
			e.Book = currentBook
		}
		if e.Part != 0 {
			currentPart = e.Part
		} else if e.Question != 0 && e.Chapter == 0 && currentPart != 0 {
			e.Part = currentPart
		}

		entries = append(entries, e)
	}
	return entries
}

// extractFallback scans raw anchor tags: flat entries, level fixed at 1,
// title numbering but no inheritance, no filtering beyond empty titles and
// the contents page itself.
func extractFallback(markup string) []Entry {
	var entries []Entry
	for _, m := range fallbackAnchor.FindAllStringSubmatch(markup, -1) {
		section, ok := sectionID(m[1])
		if !ok {
			continue
		}
		title := collapseSpace(html.UnescapeString(tagPattern.ReplaceAllString(m[2], " ")))
		if title == "" || isContentsSection(section) {
			continue
		}

		e := Entry{Section: section, Title: title, Level: 1}
		nums := titleNumbers(title)
		e.Book, e.Chapter, e.Part, e.Question, e.Article =
			nums.Book, nums.Chapter, nums.Part, nums.Question, nums.Article
		entries = append(entries, e)
	}
	return entries
}

// sectionID strips the fragment and the known file suffix from an anchor
// target. Targets without the suffix are not section links.
func sectionID(href string) (string, bool) {
	target := href
	if i := strings.Index(target, "#"); i >= 0 {
		target = target[:i]
	}
	if !strings.HasSuffix(target, ".html") {
		return "", false
	}
	target = strings.TrimSuffix(target, ".html")
	if i := strings.LastIndex(target, "/"); i >= 0 {
		target = target[i+1:]
	}
	return target, target != ""
}

// anchorLevel reads the nesting level from the enclosing paragraph's TOC
// class. Unrecognized classes count as level 1.
func anchorLevel(a *xml.Node) int {
	for p := a.Parent(); p != nil; p = p.Parent() {
		if p.Name() != "p" {
			continue
		}
		if m := tocClass.FindStringSubmatch(p.Attr("class")); m != nil {
			if level, err := strconv.Atoi(m[1]); err == nil && level >= 1 {
				return level
			}
		}
		break
	}
	return 1
}

// skipSection drops the contents page itself, index pages, and prefatory
// material.
func skipSection(section string) bool {
	if isContentsSection(section) {
		return true
	}
	parts := strings.Split(section, ".")
	for _, p := range parts {
		if p == "index" || p == "indexes" {
			return true
		}
	}
	// Prefatory heuristic: the marker must be the second dotted segment.
	// Deeper segments under it are still prefatory.
	if len(parts) >= 2 && parts[1] == prefatoryMarker {
		return true
	}
	return false
}

func isContentsSection(section string) bool {
	for _, p := range strings.Split(section, ".") {
		if p == "toc" {
			return true
		}
	}
	return false
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
