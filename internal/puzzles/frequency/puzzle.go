package frequency

import "chronal/internal/core"

// Config bounds the search for a repeated frequency.
type Config struct {
	MaxPasses int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config { return Config{MaxPasses: 1000} }

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "max_passes", 1, &c.MaxPasses)
	return c
}

// Parameters lists the tunables for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Search",
		Params: []core.Parameter{core.IntParam("max_passes", "Passes over the list", c.MaxPasses)},
	}}}
}

type puzzle struct{ cfg Config }

func (p puzzle) Name() string                       { return "frequency" }
func (p puzzle) Parameters() core.ParameterSnapshot { return p.cfg.Parameters() }

func (p puzzle) Solve(input []byte) (core.Answers, error) {
	changes, err := Parse(input)
	if err != nil {
		return nil, err
	}
	repeat, err := FirstRepeat(changes, p.cfg.MaxPasses)
	if err != nil {
		return nil, err
	}
	return core.Answers{core.Part(1, Sum(changes)), core.Part(2, repeat)}, nil
}

func init() {
	core.Register("frequency", func(cfg map[string]string) core.Puzzle {
		return puzzle{cfg: FromMap(cfg)}
	})
}
