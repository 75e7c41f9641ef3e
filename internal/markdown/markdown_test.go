package markdown

import (
	"strings"
	"testing"

	"theologai/core/books"
	"theologai/core/crossref"
	"theologai/core/ref"
	"theologai/internal/fetch"
)

func TestPassage(t *testing.T) {
	got := Passage(&fetch.Passage{
		Reference:   "John 3:16",
		Text:        "For God so loved the world,\nthat he gave his only Son.",
		Translation: "ESV",
	})

	if !strings.HasPrefix(got, "## John 3:16 (ESV)\n") {
		t.Errorf("missing heading:\n%s", got)
	}
	if !strings.Contains(got, "> For God so loved the world,\n> that he gave his only Son.") {
		t.Errorf("text should be blockquoted line by line:\n%s", got)
	}
}

func TestCommentary(t *testing.T) {
	got := Commentary(&fetch.Commentary{
		Reference: "John 3",
		Work:      "henry/mhc5",
		Section:   "mhc5.John.iii",
		Text:      "We have here the discourse with Nicodemus.",
	})

	if !strings.Contains(got, "## Commentary on John 3") {
		t.Errorf("missing heading:\n%s", got)
	}
	if !strings.Contains(got, "ccel.org/ccel/henry/mhc5/mhc5.John.iii.html") {
		t.Errorf("missing source attribution:\n%s", got)
	}
}

func TestCrossReferences(t *testing.T) {
	john, _ := books.FindByAlias("John")
	r := ref.Ref{Book: john, Chapter: 3, Verse: 16}

	got := CrossReferences(r, []crossref.CrossRef{
		{From: "John.3.16", To: "Rom.5.8", Votes: 50},
	})
	if !strings.Contains(got, "## Cross-references for John 3:16") {
		t.Errorf("missing heading:\n%s", got)
	}
	if !strings.Contains(got, "- **Romans 5:8** (50 votes)") {
		t.Errorf("target should be in display form:\n%s", got)
	}

	empty := CrossReferences(r, nil)
	if !strings.Contains(empty, "No cross-references found.") {
		t.Errorf("empty list should say so:\n%s", empty)
	}
}

func TestConfessionSection(t *testing.T) {
	got := ConfessionSection("Westminster Confession of Faith", "Of Holy Scripture", 1,
		"1. Although the light of nature...", []string{"scripture", "revelation"})

	if !strings.Contains(got, "## Westminster Confession of Faith, Chapter 1: Of Holy Scripture") {
		t.Errorf("missing heading:\n%s", got)
	}
	if !strings.Contains(got, "*Topics: scripture, revelation*") {
		t.Errorf("missing topics line:\n%s", got)
	}
}
