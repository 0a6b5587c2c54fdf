// Package steps orders and schedules assembly steps that depend on each
// other. Steps are named by single uppercase letters.
package steps

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chronal/internal/core"
)

var (
	// ErrMalformedStep marks an input line that is not a step instruction.
	ErrMalformedStep = errors.New("steps: malformed instruction")
	// ErrUnknownStep indicates a lookup of a step that was never registered.
	ErrUnknownStep = errors.New("steps: unknown step")
	// ErrBadStepID indicates a step name outside A-Z.
	ErrBadStepID = errors.New("steps: step id must be a single letter A-Z")
)

var instructionPattern = regexp.MustCompile(`^Step ([A-Z]) must be finished before step ([A-Z]) can begin\.?$`)

// Graph maps every step to its direct prerequisites and direct dependents.
type Graph struct {
	prerequisites map[string]map[string]struct{}
	dependents    map[string]map[string]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		prerequisites: make(map[string]map[string]struct{}),
		dependents:    make(map[string]map[string]struct{}),
	}
}

// Parse builds a graph from lines of the form
// "Step C must be finished before step A can begin.".
func Parse(input []byte) (*Graph, error) {
	g := NewGraph()
	for _, line := range core.Lines(input) {
		m := instructionPattern.FindStringSubmatch(line.Text)
		if m == nil {
			return nil, line.Wrap(ErrMalformedStep)
		}
		g.AddEdge(m[1], m[2])
	}
	return g, nil
}

// AddStep registers id without any edges.
func (g *Graph) AddStep(id string) {
	if _, ok := g.prerequisites[id]; !ok {
		g.prerequisites[id] = make(map[string]struct{})
	}
	if _, ok := g.dependents[id]; !ok {
		g.dependents[id] = make(map[string]struct{})
	}
}

// AddEdge records that pre must finish before dep can begin.
func (g *Graph) AddEdge(pre, dep string) {
	g.AddStep(pre)
	g.AddStep(dep)
	g.dependents[pre][dep] = struct{}{}
	g.prerequisites[dep][pre] = struct{}{}
}

// Len returns the number of registered steps.
func (g *Graph) Len() int { return len(g.prerequisites) }

// Steps returns every step in lexical order.
func (g *Graph) Steps() []string {
	return sortedKeys(g.prerequisites)
}

// Roots returns the steps without prerequisites in lexical order.
func (g *Graph) Roots() []string {
	var roots []string
	for _, id := range g.Steps() {
		if len(g.prerequisites[id]) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

// Prerequisites returns the direct prerequisites of id in lexical order.
func (g *Graph) Prerequisites(id string) ([]string, error) {
	set, ok := g.prerequisites[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownStep, id)
	}
	return sortedKeys(set), nil
}

// Dependents returns the steps that directly wait on id in lexical order.
func (g *Graph) Dependents(id string) ([]string, error) {
	set, ok := g.dependents[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownStep, id)
	}
	return sortedKeys(set), nil
}

// Duration returns how long step id takes: base plus its position in the
// alphabet (A=1 ... Z=26).
func Duration(id string, base int) (int, error) {
	if len(id) != 1 || id[0] < 'A' || id[0] > 'Z' {
		return 0, fmt.Errorf("%w: %q", ErrBadStepID, id)
	}
	return base + int(id[0]-'A') + 1, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
