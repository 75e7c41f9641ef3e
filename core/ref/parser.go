package ref

import (
	"regexp"
	"strconv"
	"strings"

	"theologai/core/books"
	cerrors "theologai/core/errors"
)

// The two accepted reference shapes, tried in order. Keeping them as
// separate staged patterns keeps the failure modes independently testable.
//
// The book portion may carry a leading ordinal digit and multiple words,
// and may use "." as a word separator ("Gen.1.1", "1 John 5:7",
// "Song of Solomon 2:1" are all valid).
var (
	// <book><sep><chapter>[:.]<verse>[-<verse2>]
	verseShape = regexp.MustCompile(`^(.+?)[\s.]+(\d+)[:.](\d+)(?:-(\d+))?$`)
	// <book><sep><chapter>
	chapterShape = regexp.MustCompile(`^(.+?)[\s.]+(\d+)$`)
)

// Parse resolves a free-text reference string into a canonical Ref.
// It fails with a MalformedReferenceError when the string matches neither
// accepted shape, and with an UnknownBookError (echoing the raw book text)
// when the book portion cannot be resolved.
func Parse(text string) (Ref, error) {
	trimmed := strings.TrimSpace(text)

	if m := verseShape.FindStringSubmatch(trimmed); m != nil {
		return buildRef(m[1], m[2], m[3], m[4])
	}
	if m := chapterShape.FindStringSubmatch(trimmed); m != nil {
		return buildRef(m[1], m[2], "", "")
	}
	return Ref{}, cerrors.NewMalformedReference(text)
}

// buildRef resolves the book portion and assembles the reference. Dots in
// the book text are folded to spaces only here, after the chapter/verse
// suffix has already been separated out, so dots acting as chapter/verse
// delimiters are never corrupted.
func buildRef(bookText, chapter, verse, verseEnd string) (Ref, error) {
	folded := strings.TrimSpace(strings.ReplaceAll(bookText, ".", " "))
	book, ok := books.FindByAlias(folded)
	if !ok {
		return Ref{}, cerrors.NewUnknownBook(strings.TrimSpace(bookText))
	}

	r := Ref{Book: book}

	var err error
	if r.Chapter, err = strconv.Atoi(chapter); err != nil {
		return Ref{}, cerrors.NewMalformedReference(bookText + " " + chapter)
	}
	if verse != "" {
		if r.Verse, err = strconv.Atoi(verse); err != nil {
			return Ref{}, cerrors.NewMalformedReference(verse)
		}
	}
	if verseEnd != "" {
		// The end value must be numerically parseable; ordering is left to
		// the caller via Validate.
		if r.VerseEnd, err = strconv.Atoi(verseEnd); err != nil {
			return Ref{}, cerrors.NewMalformedReference(verseEnd)
		}
	}
	return r, nil
}
