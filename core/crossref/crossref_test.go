package crossref

import (
	"strings"
	"testing"
)

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"Gen.1.1", "Genesis 1:1"},
		{"Ps.148.4-Ps.148.5", "Psalms 148:4-5"},
		{"Jn.3.16", "John 3:16"},
		{"Gen.1.1-3", "Genesis 1:1-3"},
		// Different chapters stay as two formatted references.
		{"Ps.148.4-Ps.149.1", "Psalms 148:4-Psalms 149:1"},
		// Different books stay as two formatted references.
		{"Gen.1.1-Exod.2.3", "Genesis 1:1-Exodus 2:3"},
	}
	for _, tt := range tests {
		if got := NormalizeRange(tt.token); got != tt.want {
			t.Errorf("NormalizeRange(%q) = %q; want %q", tt.token, got, tt.want)
		}
	}
}

func TestNormalizeRange_BestEffort(t *testing.T) {
	// Unparseable tokens come back unchanged, never as an error.
	for _, token := range []string{"", "garbage", "Foo.1.1", "Gen.1.1-Foo.2.2", "1-2-3"} {
		if got := NormalizeRange(token); got != token {
			t.Errorf("NormalizeRange(%q) = %q; want the token unchanged", token, got)
		}
	}
}

func TestParseTSV(t *testing.T) {
	data := "From Verse\tTo Verse\tVotes\n" +
		"Gen.1.1\tJohn.1.1-John.1.3\t150\n" +
		"#comment line\n" +
		"\n" +
		"Gen.1.1\tHeb.11.3\tnot-a-number\n" +
		"short-row\n" +
		"Ps.148.4\tPs.148.5\t12\n"

	rows, err := ParseTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseTSV error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ParseTSV returned %d rows; want 3", len(rows))
	}
	if rows[0].From != "Gen.1.1" || rows[0].Votes != 150 {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if rows[1].Votes != 0 {
		t.Errorf("malformed votes should count as zero, got %d", rows[1].Votes)
	}
	if got := rows[2].DisplayTo(); got != "Psalms 148:5" {
		t.Errorf("DisplayTo = %q; want %q", got, "Psalms 148:5")
	}
}
