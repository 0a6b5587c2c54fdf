package steps

import "chronal/internal/core"

// Puzzle reports the serial step order and the timed completion.
type Puzzle struct {
	cfg Config
}

// NewPuzzle returns a steps puzzle using cfg.
func NewPuzzle(cfg Config) *Puzzle { return &Puzzle{cfg: cfg} }

// Name returns the puzzle identifier.
func (p *Puzzle) Name() string { return "steps" }

// Parameters exposes the active configuration.
func (p *Puzzle) Parameters() core.ParameterSnapshot { return p.cfg.Parameters() }

// Solve parses the instructions and runs both simulations.
func (p *Puzzle) Solve(input []byte) (core.Answers, error) {
	g, err := Parse(input)
	if err != nil {
		return nil, err
	}
	order, err := SerialOrder(g)
	if err != nil {
		return nil, err
	}
	total, err := TimedExecution(g, p.cfg)
	if err != nil {
		return nil, err
	}
	return core.Answers{core.Part(1, order), core.Part(2, total)}, nil
}

func init() {
	core.Register("steps", func(cfg map[string]string) core.Puzzle {
		return NewPuzzle(FromMap(cfg))
	})
}
