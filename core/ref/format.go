package ref

import (
	"fmt"
	"strconv"
)

// ESVQuery returns the passage query for the verse-text API. It is the
// display form, always derived from the full canonical book name (never
// from the alias the user typed).
func ESVQuery(r Ref) string {
	return r.Display()
}

// BibleAPIRef is the addressing triple for the bible-api provider.
type BibleAPIRef struct {
	BookName string `json:"bookName"`
	Code     string `json:"code"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse,omitempty"`
	VerseEnd int    `json:"verseEnd,omitempty"`
}

// ToBibleAPI derives the bible-api triple from a canonical reference.
func ToBibleAPI(r Ref) BibleAPIRef {
	return BibleAPIRef{
		BookName: r.Book.Name,
		Code:     r.Book.Code,
		Chapter:  r.Chapter,
		Verse:    r.Verse,
		VerseEnd: r.VerseEnd,
	}
}

// CCELPath addresses one chapter of a commentary volume in the CCEL
// archive, e.g. {Work: "henry/mhc5", Section: "mhc5.John.iii"}.
type CCELPath struct {
	Work    string `json:"work"`
	Section string `json:"section"`
}

// CommentaryEdition identifies one commentary work family on CCEL by its
// author directory and fixed work prefix. The volume number appended to the
// prefix is a per-book attribute from the catalog, not computed.
type CommentaryEdition struct {
	Author string
	Prefix string
}

// The commentary editions the system addresses.
var (
	EditionMatthewHenry        = CommentaryEdition{Author: "henry", Prefix: "mhc"}
	EditionMatthewHenryConcise = CommentaryEdition{Author: "henry", Prefix: "mhcc"}
	EditionCalvin              = CommentaryEdition{Author: "calvin", Prefix: "calcom"}
)

// ToCCELCommentary derives the archive path for one commentary edition.
// Only the roman-numeral conversion can fail, and only for chapters
// outside 1-150.
func ToCCELCommentary(ed CommentaryEdition, r Ref) (CCELPath, error) {
	roman, err := ToRoman(r.Chapter)
	if err != nil {
		return CCELPath{}, err
	}
	workID := fmt.Sprintf("%s%d", ed.Prefix, r.Book.Volume)
	return CCELPath{
		Work:    fmt.Sprintf("%s/%s", ed.Author, workID),
		Section: fmt.Sprintf("%s.%s.%s", workID, r.Book.WorkAbbrev, roman),
	}, nil
}

// ToMatthewHenry derives the Matthew Henry complete-commentary path.
func ToMatthewHenry(r Ref) (CCELPath, error) {
	return ToCCELCommentary(EditionMatthewHenry, r)
}

// MorphRef is the addressing triple for the morphology archive: a no-space
// book identifier with chapter and verse carried as strings.
type MorphRef struct {
	Book    string `json:"book"`
	Chapter string `json:"chapter"`
	Verse   string `json:"verse,omitempty"`
}

// ToMorphRef derives the morphology-archive triple.
func ToMorphRef(r Ref) MorphRef {
	m := MorphRef{
		Book:    r.Book.NoSpaceID,
		Chapter: strconv.Itoa(r.Chapter),
	}
	if r.Verse > 0 {
		m.Verse = strconv.Itoa(r.Verse)
	}
	return m
}

// ToDottedToken derives the dotted token used by the cross-reference
// dataset, e.g. "Gen.1.1". Chapter-only references yield "Gen.1".
func ToDottedToken(r Ref) string {
	token := fmt.Sprintf("%s.%d", r.Book.Abbrev, r.Chapter)
	if r.Verse > 0 {
		token += "." + strconv.Itoa(r.Verse)
	}
	return token
}
