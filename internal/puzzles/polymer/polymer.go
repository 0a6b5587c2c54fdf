// Package polymer reduces chains of polymer units. Two adjacent units of
// the same type and opposite polarity (e.g. "a" and "A") destroy each other.
package polymer

import (
	"errors"
	"fmt"

	"chronal/internal/core"
)

// ErrMalformedPolymer marks input that is not a single line of ASCII letters.
var ErrMalformedPolymer = errors.New("polymer: malformed polymer")

// Parse returns the units of the single-line polymer.
func Parse(input []byte) ([]byte, error) {
	lines := core.Lines(input)
	if len(lines) > 1 {
		return nil, lines[1].Wrap(fmt.Errorf("%w: more than one line", ErrMalformedPolymer))
	}
	if len(lines) == 0 {
		return nil, nil
	}
	units := []byte(lines[0].Text)
	for _, u := range units {
		if !isLetter(u) {
			return nil, lines[0].Wrap(fmt.Errorf("%w: unit %q", ErrMalformedPolymer, u))
		}
	}
	return units, nil
}

func isLetter(u byte) bool { return (u|0x20) >= 'a' && (u|0x20) <= 'z' }

func reacts(a, b byte) bool { return a != b && a|0x20 == b|0x20 }

// Reduce fully reacts units and returns the remaining chain.
func Reduce(units []byte) []byte {
	stack := make([]byte, 0, len(units))
	for _, u := range units {
		if n := len(stack); n > 0 && reacts(stack[n-1], u) {
			stack = stack[:n-1]
			continue
		}
		stack = append(stack, u)
	}
	return stack
}

// Shortest removes every unit of one type (both polarities) in turn and
// returns the shortest fully reacted length.
func Shortest(units []byte) int {
	reduced := Reduce(units)
	best := len(reduced)
	var present [26]bool
	for _, u := range reduced {
		present[(u|0x20)-'a'] = true
	}
	filtered := make([]byte, 0, len(reduced))
	for i, ok := range present {
		if !ok {
			continue
		}
		kind := byte('a' + i)
		filtered = filtered[:0]
		for _, u := range reduced {
			if u|0x20 != kind {
				filtered = append(filtered, u)
			}
		}
		if n := len(Reduce(filtered)); n < best {
			best = n
		}
	}
	return best
}

type puzzle struct{}

func (puzzle) Name() string { return "polymer" }

func (puzzle) Solve(input []byte) (core.Answers, error) {
	units, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return core.Answers{
		core.Part(1, len(Reduce(units))),
		core.Part(2, Shortest(units)),
	}, nil
}

func init() {
	core.Register("polymer", func(map[string]string) core.Puzzle { return puzzle{} })
}
