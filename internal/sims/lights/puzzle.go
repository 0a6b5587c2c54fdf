package lights

import (
	"fmt"

	"chronal/internal/core"
)

// Puzzle renders the light field either frame by frame or at alignment.
type Puzzle struct {
	cfg Config
}

// NewPuzzle returns a lights puzzle using cfg.
func NewPuzzle(cfg Config) *Puzzle { return &Puzzle{cfg: cfg} }

// Name returns the puzzle identifier.
func (p *Puzzle) Name() string { return "lights" }

// Parameters exposes the active configuration.
func (p *Puzzle) Parameters() core.ParameterSnapshot { return p.cfg.Parameters() }

// Solve parses the sky and renders it.
func (p *Puzzle) Solve(input []byte) (core.Answers, error) {
	sky, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if p.cfg.Ticks > 0 {
		return p.frames(sky)
	}

	tick, err := Align(sky, p.cfg.AlignLimit)
	if err != nil {
		return nil, err
	}
	frame, err := sky.Render(p.cfg.MaxArea)
	if err != nil {
		return nil, err
	}
	return core.Answers{
		{Label: "Part 1", Value: frame},
		core.Part(2, tick),
	}, nil
}

// frames renders the initial sky and the sky after each configured tick.
func (p *Puzzle) frames(sky *Sky) (core.Answers, error) {
	out := make(core.Answers, 0, p.cfg.Ticks+1)
	capture := func(tick int) error {
		frame, err := sky.Render(p.cfg.MaxArea)
		if err != nil {
			return err
		}
		out = append(out, core.Answer{Label: fmt.Sprintf("Tick %d", tick), Value: frame})
		return nil
	}
	if err := capture(0); err != nil {
		return nil, err
	}
	d := core.NewDriver(sky, core.WithMaxTicks(p.cfg.Ticks), core.WithObserver(capture))
	if _, err := d.Run(); err != nil {
		return nil, err
	}
	return out, nil
}

func init() {
	core.Register("lights", func(cfg map[string]string) core.Puzzle {
		return NewPuzzle(FromMap(cfg))
	})
}
