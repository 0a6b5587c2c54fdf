package marbles

import "chronal/internal/core"

// Config holds the game parameters. The puzzle takes no input file.
type Config struct {
	Players int
	Marbles int
	// Factor scales the last marble for the second part.
	Factor int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Players: 455, Marbles: 71223, Factor: 100}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "players", 1, &c.Players)
	core.IntFromMap(cfg, "marbles", 0, &c.Marbles)
	core.IntFromMap(cfg, "factor", 1, &c.Factor)
	return c
}

// Parameters lists the tunables for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Game",
		Params: []core.Parameter{
			core.IntParam("players", "Players", c.Players),
			core.IntParam("marbles", "Last marble", c.Marbles),
			core.IntParam("factor", "Part 2 marble factor", c.Factor),
		},
	}}}
}
