package steps

import (
	"errors"
	"fmt"

	"chronal/internal/core"
)

// ErrStalled is returned when steps remain but no worker is busy and no
// step is eligible, which only happens on a cyclic graph.
var ErrStalled = errors.New("steps: no eligible step and no work in flight")

// Worker is one slot of the simulated labor pool.
type Worker struct {
	Step      string // empty when idle
	Remaining int
}

// Idle reports whether the worker has no step.
func (w Worker) Idle() bool { return w.Step == "" }

// Scheduler simulates a pool of workers completing the steps of a graph,
// one time unit per tick.
type Scheduler struct {
	g    *Graph
	base int

	workers  []Worker
	assigned map[string]bool
	done     map[string]bool
	elapsed  int
}

// NewScheduler prepares a timed execution of g with cfg.Workers workers
// and cfg.BaseDuration added to every step.
func NewScheduler(g *Graph, cfg Config) *Scheduler {
	return &Scheduler{
		g:        g,
		base:     cfg.BaseDuration,
		workers:  make([]Worker, cfg.Workers),
		assigned: make(map[string]bool, g.Len()),
		done:     make(map[string]bool, g.Len()),
	}
}

// Name returns the simulation identifier.
func (s *Scheduler) Name() string { return "steps-timed" }

// Done reports whether every step has been handed to a worker.
func (s *Scheduler) Done() bool { return len(s.assigned) == s.g.Len() }

// Step runs one time unit: finished work is recorded, idle workers pick up
// eligible steps, then the clock advances.
func (s *Scheduler) Step() error {
	for i := range s.workers {
		w := &s.workers[i]
		if !w.Idle() && w.Remaining == 0 {
			s.done[w.Step] = true
			*w = Worker{}
		}
	}

	busy := 0
	for i := range s.workers {
		w := &s.workers[i]
		if w.Idle() {
			id, ok, err := s.nextEligible()
			if err != nil {
				return err
			}
			if ok {
				d, err := Duration(id, s.base)
				if err != nil {
					return err
				}
				*w = Worker{Step: id, Remaining: d}
				s.assigned[id] = true
			}
		}
		if !w.Idle() {
			busy++
		}
	}
	if busy == 0 {
		return fmt.Errorf("%w: %d steps left", ErrStalled, s.g.Len()-len(s.done))
	}

	s.elapsed++
	for i := range s.workers {
		if !s.workers[i].Idle() {
			s.workers[i].Remaining--
		}
	}
	return nil
}

// nextEligible finds the lexically first unassigned step whose
// prerequisites are all done.
func (s *Scheduler) nextEligible() (string, bool, error) {
	for _, id := range s.g.Steps() {
		if s.assigned[id] {
			continue
		}
		pre, err := s.g.Prerequisites(id)
		if err != nil {
			return "", false, err
		}
		ready := true
		for _, p := range pre {
			if !s.done[p] {
				ready = false
				break
			}
		}
		if ready {
			return id, true, nil
		}
	}
	return "", false, nil
}

// Workers returns a snapshot of the labor pool.
func (s *Scheduler) Workers() []Worker { return append([]Worker(nil), s.workers...) }

// Total returns the elapsed time plus the longest remaining in-flight work,
// which is the completion time once Done reports true.
func (s *Scheduler) Total() int {
	longest := 0
	for _, w := range s.workers {
		if !w.Idle() && w.Remaining > longest {
			longest = w.Remaining
		}
	}
	return s.elapsed + longest
}

// TimedExecution returns the time needed to complete g with cfg.
func TimedExecution(g *Graph, cfg Config, opts ...core.DriverOption) (int, error) {
	s := NewScheduler(g, cfg)
	if _, err := core.NewDriver(s, opts...).Run(); err != nil {
		return 0, err
	}
	return s.Total(), nil
}
