// Package toc extracts structured table-of-contents entries from scraped
// classic-work pages and resolves free-text location queries against them.
package toc

import "time"

// Entry is one row of a work's table of contents. Section is the
// externally-assigned identifier (the target path minus its file suffix),
// Level the nesting depth (>= 1), and the number fields carry structural
// numbering inferred from the title text. A number field is zero unless
// the title (or sticky inheritance during extraction) asserted it; entries
// are never re-numbered after creation.
type Entry struct {
	Section  string
	Title    string
	Level    int
	Book     int
	Chapter  int
	Part     int
	Question int
	Article  int
}

// ParsedTOC is the result of one table-of-contents retrieval: the work
// identifier, the entries in document order, and the fetch timestamp.
// It is a value; it is never mutated after construction.
type ParsedTOC struct {
	Work      string
	Entries   []Entry
	FetchedAt time.Time
}

// NewParsedTOC builds a ParsedTOC stamped with the current time.
func NewParsedTOC(work string, entries []Entry) ParsedTOC {
	return ParsedTOC{Work: work, Entries: entries, FetchedAt: time.Now()}
}
