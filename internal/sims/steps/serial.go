package steps

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"chronal/internal/core"
)

// ErrCycle is returned when the remaining steps all wait on each other.
var ErrCycle = errors.New("steps: dependency cycle")

// Sorter processes one step per tick, always picking the lexically
// smallest step whose prerequisites are all processed.
type Sorter struct {
	g       *Graph
	ready   []string       // sorted; eligible and not yet processed
	waiting map[string]int // unprocessed prerequisite count per step
	order   []string
}

// NewSorter prepares a serial ordering of g.
func NewSorter(g *Graph) *Sorter {
	s := &Sorter{
		g:       g,
		ready:   g.Roots(),
		waiting: make(map[string]int, g.Len()),
		order:   make([]string, 0, g.Len()),
	}
	for id, pre := range g.prerequisites {
		s.waiting[id] = len(pre)
	}
	return s
}

// Name returns the simulation identifier.
func (s *Sorter) Name() string { return "steps-serial" }

// Done reports whether every step has been processed.
func (s *Sorter) Done() bool { return len(s.order) == s.g.Len() }

// Step processes the next eligible step.
func (s *Sorter) Step() error {
	if len(s.ready) == 0 {
		return fmt.Errorf("%w: %d steps unreachable", ErrCycle, s.g.Len()-len(s.order))
	}
	id := s.ready[0]
	s.ready = s.ready[1:]
	s.order = append(s.order, id)

	deps, err := s.g.Dependents(id)
	if err != nil {
		return err
	}
	for _, d := range deps {
		s.waiting[d]--
		if s.waiting[d] == 0 {
			i, _ := slices.BinarySearch(s.ready, d)
			s.ready = slices.Insert(s.ready, i, d)
		}
	}
	return nil
}

// Order returns the steps processed so far, concatenated.
func (s *Sorter) Order() string { return strings.Join(s.order, "") }

// SerialOrder returns the order in which a single worker completes g.
func SerialOrder(g *Graph, opts ...core.DriverOption) (string, error) {
	s := NewSorter(g)
	if _, err := core.NewDriver(s, opts...).Run(); err != nil {
		return "", err
	}
	return s.Order(), nil
}
