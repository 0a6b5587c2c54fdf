package lights

import "chronal/internal/core"

// Config controls how the lights puzzle drives the sky.
type Config struct {
	// Ticks renders a frame after each of the first Ticks ticks. Zero
	// switches to align mode, which renders only the tightest frame.
	Ticks int
	// MaxArea guards rendering against huge bounding boxes.
	MaxArea int
	// AlignLimit caps the number of ticks tried in align mode.
	AlignLimit int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Ticks:      0,
		MaxArea:    250_000,
		AlignLimit: 1_000_000,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntFromMap(cfg, "ticks", 0, &c.Ticks)
	core.IntFromMap(cfg, "max_area", 1, &c.MaxArea)
	core.IntFromMap(cfg, "align_limit", 1, &c.AlignLimit)
	return c
}

// Parameters lists the tunables for display.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Lights",
		Params: []core.Parameter{
			core.IntParam("ticks", "Frames to render (0 = align)", c.Ticks),
			core.IntParam("max_area", "Render area limit", c.MaxArea),
			core.IntParam("align_limit", "Align tick limit", c.AlignLimit),
		},
	}}}
}
