package toc

import (
	"regexp"
	"strconv"
	"strings"
)

// titleRomans is the fixed roman-numeral set accepted in titles (I-XV).
var titleRomans = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5,
	"vi": 6, "vii": 7, "viii": 8, "ix": 9, "x": 10,
	"xi": 11, "xii": 12, "xiii": 13, "xiv": 14, "xv": 15,
}

// queryRomans is the narrower set accepted in queries (I-IV); anything
// wider produces too many false positives against free text.
var queryRomans = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4,
}

// ordinalWords maps the English ordinal words accepted for book and part
// numbering. Books rarely exceed single digits in these sources, so the
// table stops at eighth.
var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4,
	"fifth": 5, "sixth": 6, "seventh": 7, "eighth": 8,
}

// numberExtractor finds keyword-anchored numbering ("chapter iv",
// "book 2", "first book") in text. Each extractor accepts arabic numerals
// and a bounded roman set; word ordinals are enabled for book/part only.
type numberExtractor struct {
	after  *regexp.Regexp // "<keyword> <value>"
	before *regexp.Regexp // "<ordinal word> <keyword>", book/part only
	romans map[string]int
	words  bool
}

const ordinalAlternation = `first|second|third|fourth|fifth|sixth|seventh|eighth`

func newNumberExtractor(keyword string, romans map[string]int, words bool) *numberExtractor {
	value := `[0-9]+|[ivxl]+`
	if words {
		value += `|` + ordinalAlternation
	}
	e := &numberExtractor{
		after:  regexp.MustCompile(`\b` + keyword + `\.?\s+(` + value + `)\b`),
		romans: romans,
		words:  words,
	}
	if words {
		// "first book" / "second part" word order.
		e.before = regexp.MustCompile(`\b(` + ordinalAlternation + `)\s+` + keyword + `\b`)
	}
	return e
}

// extract returns the number asserted by the text, or 0 when absent.
// Matching is case-insensitive; the text is lowercased once by the caller.
func (e *numberExtractor) extract(lower string) int {
	if m := e.after.FindStringSubmatch(lower); m != nil {
		tok := m[1]
		if tok[0] >= '0' && tok[0] <= '9' {
			n, err := strconv.Atoi(tok)
			if err == nil {
				return n
			}
			return 0
		}
		if e.words {
			if n, ok := ordinalWords[tok]; ok {
				return n
			}
		}
		if n, ok := e.romans[tok]; ok {
			return n
		}
		return 0
	}
	if e.before != nil {
		if m := e.before.FindStringSubmatch(lower); m != nil {
			return ordinalWords[m[1]]
		}
	}
	return 0
}

// numbering is the set of structural numbers extracted from one title or
// query.
type numbering struct {
	Book     int
	Chapter  int
	Part     int
	Question int
	Article  int
}

func (n numbering) any() bool {
	return n.Book != 0 || n.Chapter != 0 || n.Part != 0 || n.Question != 0 || n.Article != 0
}

// Title extractors: roman numerals up to XV, word ordinals for book/part.
var (
	titleBook     = newNumberExtractor("book", titleRomans, true)
	titleChapter  = newNumberExtractor("chapter", titleRomans, false)
	titlePart     = newNumberExtractor("part", titleRomans, true)
	titleQuestion = newNumberExtractor("question", titleRomans, false)
	titleArticle  = newNumberExtractor("article", titleRomans, false)
)

// Query extractors: deliberately narrower roman set.
var (
	queryBook     = newNumberExtractor("book", queryRomans, true)
	queryChapter  = newNumberExtractor("chapter", queryRomans, false)
	queryPart     = newNumberExtractor("part", queryRomans, true)
	queryQuestion = newNumberExtractor("question", queryRomans, false)
	queryArticle  = newNumberExtractor("article", queryRomans, false)
)

func titleNumbers(title string) numbering {
	lower := strings.ToLower(title)
	return numbering{
		Book:     titleBook.extract(lower),
		Chapter:  titleChapter.extract(lower),
		Part:     titlePart.extract(lower),
		Question: titleQuestion.extract(lower),
		Article:  titleArticle.extract(lower),
	}
}

func queryNumbers(query string) numbering {
	lower := strings.ToLower(query)
	return numbering{
		Book:     queryBook.extract(lower),
		Chapter:  queryChapter.extract(lower),
		Part:     queryPart.extract(lower),
		Question: queryQuestion.extract(lower),
		Article:  queryArticle.extract(lower),
	}
}
