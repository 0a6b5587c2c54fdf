package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Sim is a discrete tick simulation. Step applies exactly one tick with
// exclusive access to the state; Done is the termination predicate.
type Sim interface {
	Name() string
	Step() error
	Done() bool
}

// DriverOption configures a Driver before it runs.
type DriverOption func(*Driver)

// WithMaxTicks stops the run after n ticks. Zero means no limit.
func WithMaxTicks(n int) DriverOption {
	return func(d *Driver) {
		if n >= 0 {
			d.maxTicks = n
		}
	}
}

// WithObserver installs fn to be called after every tick with the number of
// ticks applied so far. A non-nil error aborts the run.
func WithObserver(fn func(tick int) error) DriverOption {
	return func(d *Driver) {
		if fn != nil {
			d.observers = append(d.observers, fn)
		}
	}
}

// WithLogger routes driver diagnostics to l.
func WithLogger(l *log.Logger) DriverOption {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// Driver owns a Sim for the duration of one run.
type Driver struct {
	sim       Sim
	maxTicks  int
	observers []func(tick int) error
	logger    *log.Logger
	ticks     int
}

// NewDriver prepares a run of sim.
func NewDriver(sim Sim, opts ...DriverOption) *Driver {
	d := &Driver{sim: sim, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Ticks reports how many ticks the driver has applied.
func (d *Driver) Ticks() int { return d.ticks }

// Run steps the simulation until it reports Done or the tick limit is hit.
// It returns the number of ticks applied during this call.
func (d *Driver) Run() (int, error) {
	name := d.sim.Name()
	d.logger.Debug("run started", "sim", name, "max_ticks", d.maxTicks)

	applied := 0
	for !d.sim.Done() {
		if d.maxTicks > 0 && applied >= d.maxTicks {
			break
		}
		if err := d.sim.Step(); err != nil {
			return applied, fmt.Errorf("core: %s tick %d: %w", name, d.ticks+1, err)
		}
		applied++
		d.ticks++
		for _, fn := range d.observers {
			if err := fn(d.ticks); err != nil {
				return applied, fmt.Errorf("core: %s observer at tick %d: %w", name, d.ticks, err)
			}
		}
	}

	d.logger.Debug("run finished", "sim", name, "ticks", applied, "done", d.sim.Done())
	return applied, nil
}
