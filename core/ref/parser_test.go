package ref

import (
	"errors"
	"testing"

	cerrors "theologai/core/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		book     string
		number   int
		chapter  int
		verse    int
		verseEnd int
	}{
		{"John 3:16", "John", 43, 3, 16, 0},
		{"Jn 3:16", "John", 43, 3, 16, 0},
		{"Gen.1.1", "Genesis", 1, 1, 1, 0},
		{"Gen. 1:1", "Genesis", 1, 1, 1, 0},
		{"1 John 5:7", "1 John", 62, 5, 7, 0},
		{"1.John.5.7", "1 John", 62, 5, 7, 0},
		{"Romans 8:28-30", "Romans", 45, 8, 28, 30},
		{"Ps.148.4-5", "Psalms", 19, 148, 4, 5},
		{"Psalms 23", "Psalms", 19, 23, 0, 0},
		{"Song of Solomon 2:1", "Song of Solomon", 22, 2, 1, 0},
		{"  Genesis 1  ", "Genesis", 1, 1, 0, 0},
		{"2 Cor 5:17", "2 Corinthians", 47, 5, 17, 0},
	}
	for _, tt := range tests {
		r, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if r.Book.Name != tt.book || r.Book.Number != tt.number {
			t.Errorf("Parse(%q) book = %s(%d); want %s(%d)", tt.input, r.Book.Name, r.Book.Number, tt.book, tt.number)
		}
		if r.Chapter != tt.chapter || r.Verse != tt.verse || r.VerseEnd != tt.verseEnd {
			t.Errorf("Parse(%q) = %d:%d-%d; want %d:%d-%d",
				tt.input, r.Chapter, r.Verse, r.VerseEnd, tt.chapter, tt.verse, tt.verseEnd)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{"", "Genesis", "3:16", "Genesis 1:1-2:5", "just some words"} {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) should fail", input)
			continue
		}
		if !errors.Is(err, cerrors.ErrMalformedReference) {
			t.Errorf("Parse(%q) error = %v; want ErrMalformedReference", input, err)
		}
	}
}

func TestParse_UnknownBookEchoesRawText(t *testing.T) {
	_, err := Parse("Gondor 3:16")
	if !errors.Is(err, cerrors.ErrUnknownBook) {
		t.Fatalf("Parse(Gondor 3:16) error = %v; want ErrUnknownBook", err)
	}
	var ube *cerrors.UnknownBookError
	if !errors.As(err, &ube) {
		t.Fatal("error should be an UnknownBookError")
	}
	if ube.Raw != "Gondor" {
		t.Errorf("Raw = %q; want %q", ube.Raw, "Gondor")
	}
}

func TestParse_RangeOrderingLeftToValidate(t *testing.T) {
	// The parser accepts a reversed range; Validate rejects it.
	r, err := Parse("John 3:18-16")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if r.Verse != 18 || r.VerseEnd != 16 {
		t.Fatalf("parsed range = %d-%d; want 18-16", r.Verse, r.VerseEnd)
	}
	if r.Validate() == nil {
		t.Error("Validate should reject a reversed range")
	}
}

func TestParse_DisplayRoundTrip(t *testing.T) {
	inputs := []string{"John 3:16", "Romans 8:28-30", "Psalms 23", "1 John 5:7", "Song of Solomon 2:1"}
	for _, input := range inputs {
		r, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}
		again, err := Parse(r.Display())
		if err != nil {
			t.Fatalf("Parse(Display(%q)) error: %v", input, err)
		}
		if !again.Equal(r) {
			t.Errorf("round trip of %q: %+v != %+v", input, again, r)
		}
	}
}

func TestValidate(t *testing.T) {
	gen, _ := Parse("Genesis 1:1")
	if err := gen.Validate(); err != nil {
		t.Errorf("valid reference rejected: %v", err)
	}

	bad := gen
	bad.Verse = 0
	bad.VerseEnd = 5
	if bad.Validate() == nil {
		t.Error("end verse without start verse should be rejected")
	}

	bad = gen
	bad.Chapter = 0
	if bad.Validate() == nil {
		t.Error("chapter 0 should be rejected")
	}
}
