// Package inventory checks warehouse box IDs.
package inventory

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"chronal/internal/core"
)

var (
	// ErrMalformedID marks a box ID containing whitespace or non-ASCII text.
	ErrMalformedID = errors.New("inventory: malformed box id")
	// ErrNoMatch is returned when no two IDs differ by exactly one letter.
	ErrNoMatch = errors.New("inventory: no ids differ by exactly one position")
)

// Parse returns one box ID per non-blank line.
func Parse(input []byte) ([]string, error) {
	lines := core.Lines(input)
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.ContainsAny(line.Text, " \t") {
			return nil, line.Wrap(ErrMalformedID)
		}
		if i := strings.IndexFunc(line.Text, func(r rune) bool { return r >= utf8.RuneSelf }); i >= 0 {
			return nil, line.Wrap(fmt.Errorf("%w: non-ASCII byte at column %d", ErrMalformedID, i+1))
		}
		ids = append(ids, line.Text)
	}
	return ids, nil
}

// Checksum multiplies the number of IDs holding some letter exactly twice by
// the number holding some letter exactly three times.
func Checksum(ids []string) int {
	twos, threes := 0, 0
	for _, id := range ids {
		counts := make(map[rune]int, len(id))
		for _, r := range id {
			counts[r]++
		}
		two, three := false, false
		for _, n := range counts {
			switch n {
			case 2:
				two = true
			case 3:
				three = true
			}
		}
		if two {
			twos++
		}
		if three {
			threes++
		}
	}
	return twos * threes
}

// CommonLetters finds the first pair of equal-length IDs that differ at
// exactly one position and returns their shared letters.
func CommonLetters(ids []string) (string, error) {
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if len(a) != len(b) {
				continue
			}
			if pos, ok := singleDiff(a, b); ok {
				return a[:pos] + a[pos+1:], nil
			}
		}
	}
	return "", fmt.Errorf("%w (%d ids)", ErrNoMatch, len(ids))
}

func singleDiff(a, b string) (int, bool) {
	pos := -1
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if pos >= 0 {
			return 0, false
		}
		pos = i
	}
	return pos, pos >= 0
}

type puzzle struct{}

func (puzzle) Name() string { return "inventory" }

func (puzzle) Solve(input []byte) (core.Answers, error) {
	ids, err := Parse(input)
	if err != nil {
		return nil, err
	}
	common, err := CommonLetters(ids)
	if err != nil {
		return nil, err
	}
	return core.Answers{core.Part(1, Checksum(ids)), core.Part(2, common)}, nil
}

func init() {
	core.Register("inventory", func(map[string]string) core.Puzzle { return puzzle{} })
}
