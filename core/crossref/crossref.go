// Package crossref handles the cross-reference dataset's dotted range
// tokens and normalizes them back into canonical display form.
package crossref

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"theologai/core/ref"
)

// NormalizeRange converts a dotted range token (a single dotted reference
// like "Gen.1.1", or two dotted references joined by a dash like
// "Ps.148.4-Ps.148.5") into canonical display form. Normalization is
// best-effort: any token that fails to parse is returned unchanged.
func NormalizeRange(token string) string {
	if r, err := ref.Parse(token); err == nil {
		return r.Display()
	}

	i := strings.Index(token, "-")
	if i < 0 {
		return token
	}
	first, errFirst := ref.Parse(token[:i])
	second, errSecond := ref.Parse(token[i+1:])
	if errFirst != nil || errSecond != nil {
		return token
	}

	// Same book and chapter collapses to a compact verse range.
	if first.Book.Number == second.Book.Number &&
		first.Chapter == second.Chapter &&
		first.Verse > 0 && second.Verse > 0 {
		compact := first
		compact.VerseEnd = second.Verse
		return compact.Display()
	}
	return first.Display() + "-" + second.Display()
}

// CrossRef is one row of the cross-reference dataset: a source verse, a
// target reference (possibly a range), and the community vote count.
type CrossRef struct {
	From  string
	To    string
	Votes int
}

// DisplayTo returns the target in canonical display form.
func (c CrossRef) DisplayTo() string {
	return NormalizeRange(c.To)
}

// ParseTSV reads the cross-reference dataset's tab-separated rows.
// Header and comment lines (leading '#') and short rows are skipped;
// a missing or malformed vote column counts as zero.
func ParseTSV(r io.Reader) ([]CrossRef, error) {
	var rows []CrossRef
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "From Verse") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		row := CrossRef{From: fields[0], To: fields[1]}
		if len(fields) >= 3 {
			if votes, err := strconv.Atoi(strings.TrimSpace(fields[2])); err == nil {
				row.Votes = votes
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
