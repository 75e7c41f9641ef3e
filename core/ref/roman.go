package ref

import (
	"fmt"
	"strings"

	cerrors "theologai/core/errors"
)

// romanMax is the highest chapter number any canonical book reaches
// (Psalms, 150). The converter refuses values outside 1..romanMax.
const romanMax = 150

// romanTable drives the greedy subtractive expansion. Ordered descending.
var romanTable = []struct {
	value   int
	numeral string
}{
	{100, "c"},
	{90, "xc"},
	{50, "l"},
	{40, "xl"},
	{10, "x"},
	{9, "ix"},
	{5, "v"},
	{4, "iv"},
	{1, "i"},
}

// ToRoman converts a chapter number to its lowercase roman numeral form,
// e.g. ToRoman(23) == "xxiii". Values outside 1-150 fail with a
// RomanRangeError.
func ToRoman(n int) (string, error) {
	if n < 1 || n > romanMax {
		return "", cerrors.NewRomanRange(n)
	}
	var sb strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			sb.WriteString(entry.numeral)
			n -= entry.value
		}
	}
	return sb.String(), nil
}

// ParseRoman converts a roman numeral (either case) back to an integer.
// It accepts the output of ToRoman for every value in 1-150.
func ParseRoman(s string) (int, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return 0, fmt.Errorf("empty roman numeral")
	}

	n := 0
	rest := lower
	for _, entry := range romanTable {
		for strings.HasPrefix(rest, entry.numeral) {
			n += entry.value
			rest = rest[len(entry.numeral):]
		}
	}
	if rest != "" {
		return 0, fmt.Errorf("invalid roman numeral %q", s)
	}
	if n > romanMax {
		return 0, cerrors.NewRomanRange(n)
	}
	return n, nil
}
