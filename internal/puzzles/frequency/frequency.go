// Package frequency calibrates a device from a list of frequency changes.
package frequency

import (
	"errors"
	"fmt"
	"strconv"

	"chronal/internal/core"
)

var (
	// ErrMalformedChange marks a line that is not a signed integer.
	ErrMalformedChange = errors.New("frequency: malformed change")
	// ErrNoRepeat is returned when no frequency repeats within the pass limit.
	ErrNoRepeat = errors.New("frequency: no repeated frequency")
)

// Parse reads one signed change per line ("+3", "-7").
func Parse(input []byte) ([]int, error) {
	lines := core.Lines(input)
	changes := make([]int, 0, len(lines))
	for _, line := range lines {
		v, err := strconv.Atoi(line.Text)
		if err != nil {
			return nil, line.Wrap(ErrMalformedChange)
		}
		changes = append(changes, v)
	}
	return changes, nil
}

// Sum returns the frequency after applying every change once, starting at 0.
func Sum(changes []int) int {
	total := 0
	for _, c := range changes {
		total += c
	}
	return total
}

// FirstRepeat cycles through changes and returns the first running
// frequency reached twice. The starting frequency 0 counts as reached.
func FirstRepeat(changes []int, maxPasses int) (int, error) {
	if len(changes) == 0 {
		return 0, fmt.Errorf("%w: no changes", ErrNoRepeat)
	}
	seen := map[int]struct{}{0: {}}
	freq := 0
	for pass := 0; pass < maxPasses; pass++ {
		for _, c := range changes {
			freq += c
			if _, ok := seen[freq]; ok {
				return freq, nil
			}
			seen[freq] = struct{}{}
		}
	}
	return 0, fmt.Errorf("%w after %d passes", ErrNoRepeat, maxPasses)
}
