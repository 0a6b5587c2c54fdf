package lights

import (
	"errors"
	"fmt"

	"chronal/internal/core"
)

// ErrNoConvergence is returned when the field keeps shrinking past the tick limit.
var ErrNoConvergence = errors.New("lights: bounding box still shrinking")

// aligner steps a sky until its bounding box stops shrinking.
type aligner struct {
	sky   *Sky
	prev  core.Bounds
	grown bool
}

func (a *aligner) Name() string { return "lights-align" }
func (a *aligner) Done() bool   { return a.grown }

func (a *aligner) Step() error {
	if err := a.sky.Step(); err != nil {
		return err
	}
	b := a.sky.Bounds()
	if b.CompareArea(a.prev) >= 0 {
		a.grown = true
		return nil
	}
	a.prev = b
	return nil
}

// Align advances sky to the tick with the smallest bounding box, which is
// where the lights spell out their message, and returns that tick. At most
// limit ticks are tried.
func Align(sky *Sky, limit int, opts ...core.DriverOption) (int, error) {
	a := &aligner{sky: sky, prev: sky.Bounds()}
	opts = append(opts, core.WithMaxTicks(limit))
	if _, err := core.NewDriver(a, opts...).Run(); err != nil {
		return sky.Tick(), err
	}
	if !a.grown {
		return sky.Tick(), fmt.Errorf("%w after %d ticks", ErrNoConvergence, limit)
	}
	sky.Back()
	return sky.Tick(), nil
}
