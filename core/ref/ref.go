// Package ref provides the canonical scripture reference type, the parser
// that resolves free-text references into it, and the converters that derive
// each provider's addressing scheme from it.
package ref

import (
	"fmt"
	"strings"

	"theologai/core/books"
	cerrors "theologai/core/errors"
)

// Ref is the canonical internal representation all provider addressing
// schemes are derived from. Verse and VerseEnd use 0 for "absent"; a Ref
// with no verse denotes an entire chapter.
type Ref struct {
	Book     books.Book
	Chapter  int
	Verse    int
	VerseEnd int
}

// Validate checks the structural invariants: chapter at least 1, an end
// verse only alongside a start verse, and end >= start within a chapter.
func (r Ref) Validate() error {
	if r.Chapter < 1 {
		return cerrors.NewMalformedReference(fmt.Sprintf("%s %d", r.Book.Name, r.Chapter))
	}
	if r.VerseEnd != 0 && r.Verse == 0 {
		return fmt.Errorf("reference has end verse %d without start verse", r.VerseEnd)
	}
	if r.VerseEnd != 0 && r.VerseEnd < r.Verse {
		return fmt.Errorf("reference verse range %d-%d is reversed", r.Verse, r.VerseEnd)
	}
	return nil
}

// IsChapterOnly reports whether the reference denotes an entire chapter.
func (r Ref) IsChapterOnly() bool {
	return r.Verse == 0
}

// Equal reports whether two references address the same passage.
func (r Ref) Equal(other Ref) bool {
	return r.Book.Number == other.Book.Number &&
		r.Chapter == other.Chapter &&
		r.Verse == other.Verse &&
		r.VerseEnd == other.VerseEnd
}

// Display returns the human-readable form, e.g. "Romans 8:28-30".
// The end verse is shown only when it differs from the start verse.
func (r Ref) Display() string {
	var sb strings.Builder
	sb.WriteString(r.Book.Name)
	sb.WriteString(fmt.Sprintf(" %d", r.Chapter))
	if r.Verse > 0 {
		sb.WriteString(fmt.Sprintf(":%d", r.Verse))
		if r.VerseEnd > 0 && r.VerseEnd != r.Verse {
			sb.WriteString(fmt.Sprintf("-%d", r.VerseEnd))
		}
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (r Ref) String() string {
	return r.Display()
}
