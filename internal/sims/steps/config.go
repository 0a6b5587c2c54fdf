package steps

import "chronal/internal/core"

// Config controls the timed execution.
type Config struct {
	Workers      int
	BaseDuration int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Workers: 5, BaseDuration: 60}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "workers", 1, &c.Workers)
	core.IntFromMap(cfg, "base", 0, &c.BaseDuration)
	return c
}

// Parameters lists the tunables for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Workers",
		Params: []core.Parameter{
			core.IntParam("workers", "Worker count", c.Workers),
			core.IntParam("base", "Base step duration", c.BaseDuration),
		},
	}}}
}
