package toc

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Resolve matches a free-text location query against entries, in strict
// priority order: structured-number match, exact title substring, keyword
// match, then the first entry in document order. It returns nil only for
// an empty entry list.
func Resolve(entries []Entry, query string) *Entry {
	if len(entries) == 0 {
		return nil
	}

	if e := resolveStructured(entries, query); e != nil {
		return e
	}

	lowered := strings.ToLower(strings.TrimSpace(query))
	for i := range entries {
		if lowered != "" && strings.Contains(strings.ToLower(entries[i].Title), lowered) {
			return &entries[i]
		}
	}

	// Keyword fallback: any query token longer than three characters.
	var tokens []string
	for _, tok := range strings.Fields(lowered) {
		if len(tok) > 3 {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) > 0 {
		for i := range entries {
			title := strings.ToLower(entries[i].Title)
			for _, tok := range tokens {
				if strings.Contains(title, tok) {
					return &entries[i]
				}
			}
		}
	}

	// Typically the introduction.
	return &entries[0]
}

// resolveStructured filters on every number the query asserts. A query
// that names a chapter, question, or article only matches entries that
// actually carry that field; a book-only entry can never satisfy a
// chapter-specific query.
func resolveStructured(entries []Entry, query string) *Entry {
	q := queryNumbers(query)
	if !q.any() {
		return nil
	}

	var candidates []*Entry
	for i := range entries {
		e := &entries[i]
		if q.Book != 0 && e.Book != q.Book {
			continue
		}
		if q.Chapter != 0 && e.Chapter != q.Chapter {
			continue
		}
		if q.Part != 0 && e.Part != q.Part {
			continue
		}
		if q.Question != 0 && e.Question != q.Question {
			continue
		}
		if q.Article != 0 && e.Article != q.Article {
			continue
		}
		candidates = append(candidates, e)
	}
	if len(candidates) == 0 {
		return nil
	}

	// Prefer chapter over question over article matches, else document
	// order.
	if q.Chapter != 0 {
		for _, c := range candidates {
			if c.Chapter == q.Chapter {
				return c
			}
		}
	}
	if q.Question != 0 {
		for _, c := range candidates {
			if c.Question == q.Question {
				return c
			}
		}
	}
	if q.Article != 0 {
		for _, c := range candidates {
			if c.Article == q.Article {
				return c
			}
		}
	}
	return candidates[0]
}

// FindMatches returns up to limit entries whose title contains the query,
// in document order. It is independent of Resolve's priority chain.
func FindMatches(entries []Entry, query string, limit int) []Entry {
	lowered := strings.ToLower(strings.TrimSpace(query))
	var out []Entry
	for _, e := range entries {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(e.Title), lowered) {
			out = append(out, e)
		}
	}
	return out
}

// VerseRange is a scripture range recognized in a section title. End
// equals Start when the title names a single verse.
type VerseRange struct {
	Book    string
	Chapter int
	Start   int
	End     int
}

// titleRangeShape is the single accepted title shape:
// [ordinal] Book[...] chapter:verse[-verse2]
type titleRangeShape struct {
	Ordinal *int     `parser:"@Number?"`
	Words   []string `parser:"@Word+"`
	Chapter int      `parser:"@Number"`
	Verse   int      `parser:"':' @Number"`
	End     *int     `parser:"( '-' @Number )?"`
}

var titleRangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var titleRangeParser = participle.MustBuild[titleRangeShape](
	participle.Lexer(titleRangeLexer),
	participle.Elide("Whitespace"),
)

// ParseVerseRangeFromTitle recognizes sermon-style titles such as
// "1 Corinthians 13:1-13". Anything not matching the shape returns nil.
func ParseVerseRangeFromTitle(title string) *VerseRange {
	parsed, err := titleRangeParser.ParseString("", strings.TrimSpace(title))
	if err != nil {
		return nil
	}

	book := strings.Join(parsed.Words, " ")
	if parsed.Ordinal != nil {
		// Only the 1-3 ordinal prefix of composite book names is valid.
		if *parsed.Ordinal < 1 || *parsed.Ordinal > 3 {
			return nil
		}
		book = strconv.Itoa(*parsed.Ordinal) + " " + book
	}

	vr := &VerseRange{
		Book:    book,
		Chapter: parsed.Chapter,
		Start:   parsed.Verse,
		End:     parsed.Verse,
	}
	if parsed.End != nil {
		vr.End = *parsed.End
	}
	return vr
}
