package toc

import "testing"

const institutesTOC = `<?xml version="1.0"?>
<html>
<body>
<p class="TOC1"><a href="institutes.toc.html">Table of Contents</a></p>
<p class="TOC1"><a href="institutes.i.html">Prefatory Address</a></p>
<p class="TOC2"><a href="institutes.i.ii.html">Dedication</a></p>
<p class="TOC1"><a href="institutes.ii.html">The First Book</a></p>
<p class="TOC2"><a href="institutes.ii.i.html">Chapter I: The Knowledge of God</a></p>
<p class="TOC2"><a href="institutes.ii.ii.html">Chapter II: What It Is to Know God</a></p>
<p class="TOC1"><a href="institutes.iii.html">Book Second</a></p>
<p class="TOC2"><a href="institutes.iii.i.html">Chapter I: The Fall of Adam</a></p>
<p class="TOC1"><a href="institutes.index.html">Index of Subjects</a></p>
</body>
</html>`

func TestExtract_Structured(t *testing.T) {
	entries := Extract(institutesTOC)
	if len(entries) != 5 {
		t.Fatalf("Extract returned %d entries; want 5: %+v", len(entries), entries)
	}

	first := entries[0]
	if first.Section != "institutes.ii" || first.Title != "The First Book" || first.Level != 1 {
		t.Errorf("first entry = %+v", first)
	}
	if first.Book != 1 {
		t.Errorf("first entry book = %d; want 1 (ordinal word)", first.Book)
	}

	chapter := entries[1]
	if chapter.Section != "institutes.ii.i" || chapter.Level != 2 || chapter.Chapter != 1 {
		t.Errorf("chapter entry = %+v", chapter)
	}
}

func TestExtract_StickyBookInheritance(t *testing.T) {
	entries := Extract(institutesTOC)

	// Chapter entries that declare no book inherit the current one, in
	// document order.
	if entries[1].Book != 1 || entries[2].Book != 1 {
		t.Errorf("book 1 chapters carry book %d, %d; want 1, 1", entries[1].Book, entries[2].Book)
	}
	if entries[3].Book != 2 {
		t.Errorf("second book entry = %+v; want book 2", entries[3])
	}
	if entries[4].Book != 2 {
		t.Errorf("chapter after book 2 carries book %d; want 2", entries[4].Book)
	}
	if entries[4].Chapter != 1 {
		t.Errorf("chapter after book 2 carries chapter %d; want 1", entries[4].Chapter)
	}
}

func TestExtract_FiltersTocIndexAndPrefatory(t *testing.T) {
	entries := Extract(institutesTOC)
	for _, e := range entries {
		switch e.Section {
		case "institutes.toc", "institutes.index", "institutes.i", "institutes.i.ii":
			t.Errorf("entry %q should have been filtered", e.Section)
		}
	}
}

func TestExtract_PrefatoryFilterIsSegmentWise(t *testing.T) {
	// "institutes.ii" shares the textual prefix "institutes.i" but is a
	// legitimate section; only second-segment "i" paths are prefatory.
	entries := Extract(institutesTOC)
	found := false
	for _, e := range entries {
		if e.Section == "institutes.ii" {
			found = true
		}
	}
	if !found {
		t.Error("institutes.ii was wrongly dropped by the prefatory filter")
	}
}

func TestExtract_StickyPartForQuestions(t *testing.T) {
	const summaTOC = `<?xml version="1.0"?>
<html><body>
<p class="TOC1"><a href="summa.ii.html">Part II</a></p>
<p class="TOC2"><a href="summa.ii.q1.html">Question 1. The Last End</a></p>
<p class="TOC2"><a href="summa.ii.q2.html">Question 2. Those Things in Which Happiness Consists</a></p>
</body></html>`
	entries := Extract(summaTOC)
	if len(entries) != 3 {
		t.Fatalf("Extract returned %d entries; want 3", len(entries))
	}
	if entries[0].Part != 2 {
		t.Errorf("part entry = %+v; want part 2", entries[0])
	}
	if entries[1].Part != 2 || entries[1].Question != 1 {
		t.Errorf("question 1 = %+v; want part 2 question 1", entries[1])
	}
	if entries[2].Part != 2 || entries[2].Question != 2 {
		t.Errorf("question 2 = %+v; want part 2 question 2", entries[2])
	}
}

func TestExtract_FallbackAnchorScan(t *testing.T) {
	// No structured TOC paragraphs at all: the flat anchor scan takes over.
	const flat = `<html><body>
<a href="work.toc.html">Contents</a>
<a href="work.ii.html">Chapter II</a>
<a href="work.iii.html"><b>Chapter III</b></a>
<a href="work.iv.html"></a>
<a href="elsewhere.pdf">Download</a>
</body></html>`
	entries := Extract(flat)
	if len(entries) != 2 {
		t.Fatalf("Extract returned %d entries; want 2: %+v", len(entries), entries)
	}
	for _, e := range entries {
		if e.Level != 1 {
			t.Errorf("fallback entry %q has level %d; want 1", e.Section, e.Level)
		}
	}
	if entries[0].Chapter != 2 || entries[1].Chapter != 3 {
		t.Errorf("fallback numbering = %d, %d; want 2, 3", entries[0].Chapter, entries[1].Chapter)
	}
}

func TestExtract_EmptyResultIsValid(t *testing.T) {
	if entries := Extract(""); len(entries) != 0 {
		t.Errorf("Extract(\"\") = %+v; want empty", entries)
	}
	if entries := Extract("<html><body><p>nothing here</p></body></html>"); len(entries) != 0 {
		t.Errorf("Extract of linkless page = %+v; want empty", entries)
	}
}

func TestSectionID(t *testing.T) {
	tests := []struct {
		href string
		want string
		ok   bool
	}{
		{"institutes.ii.html", "institutes.ii", true},
		{"institutes.ii.html#sect1", "institutes.ii", true},
		{"/ccel/calvin/institutes.ii.html", "institutes.ii", true},
		{"image.png", "", false},
		{".html", "", false},
	}
	for _, tt := range tests {
		got, ok := sectionID(tt.href)
		if got != tt.want || ok != tt.ok {
			t.Errorf("sectionID(%q) = %q, %v; want %q, %v", tt.href, got, ok, tt.want, tt.ok)
		}
	}
}
