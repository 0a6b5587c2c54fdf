package core

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrUnknownPuzzle is returned by Lookup for names that were never registered.
var ErrUnknownPuzzle = errors.New("core: unknown puzzle")

// Answer is one labelled result printed by a puzzle.
type Answer struct {
	Label string
	Value string
}

// Part labels v as the answer to the numbered puzzle part.
func Part(n int, v any) Answer {
	return Answer{Label: fmt.Sprintf("Part %d", n), Value: fmt.Sprint(v)}
}

// Answers is the ordered output of a single puzzle run.
type Answers []Answer

// String renders one "label: value" line per answer. Multi-line values
// start on their own line.
func (a Answers) String() string {
	var b strings.Builder
	for _, ans := range a {
		b.WriteString(ans.Label)
		if strings.Contains(ans.Value, "\n") {
			b.WriteString(":\n")
			b.WriteString(strings.TrimRight(ans.Value, "\n"))
		} else {
			b.WriteString(": ")
			b.WriteString(ans.Value)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Puzzle is the minimal contract every solver must implement.
type Puzzle interface {
	Name() string
	Solve(input []byte) (Answers, error)
}

// Describer is implemented by puzzles that expose tunable parameters.
type Describer interface {
	Parameters() ParameterSnapshot
}

// Factory constructs a Puzzle using an optional configuration map.
type Factory func(cfg map[string]string) Puzzle

var puzzles = map[string]Factory{}

// Register adds a puzzle factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	puzzles[name] = f
}

// Puzzles exposes the registry of available puzzle factories.
func Puzzles() map[string]Factory {
	return puzzles
}

// Names returns the registered puzzle names in lexical order.
func Names() []string {
	names := maps.Keys(puzzles)
	slices.Sort(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := puzzles[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPuzzle, name)
	}
	return f, nil
}
