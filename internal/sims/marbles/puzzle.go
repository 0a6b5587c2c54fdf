package marbles

import "chronal/internal/core"

// Puzzle reports the winning score for the configured game and for a game
// Factor times longer.
type Puzzle struct {
	cfg Config
}

// NewPuzzle returns a marbles puzzle using cfg.
func NewPuzzle(cfg Config) *Puzzle { return &Puzzle{cfg: cfg} }

// Name returns the puzzle identifier.
func (p *Puzzle) Name() string { return "marbles" }

// Parameters exposes the active configuration.
func (p *Puzzle) Parameters() core.ParameterSnapshot { return p.cfg.Parameters() }

// Solve ignores input; the game is fully described by its parameters.
func (p *Puzzle) Solve([]byte) (core.Answers, error) {
	part1, err := Play(p.cfg.Players, p.cfg.Marbles)
	if err != nil {
		return nil, err
	}
	part2, err := Play(p.cfg.Players, p.cfg.Marbles*p.cfg.Factor)
	if err != nil {
		return nil, err
	}
	return core.Answers{core.Part(1, part1), core.Part(2, part2)}, nil
}

func init() {
	core.Register("marbles", func(cfg map[string]string) core.Puzzle {
		return NewPuzzle(FromMap(cfg))
	})
}
