package app

import (
	"flag"

	"chronal/internal/sims/lights"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Input   string
	Width   int
	Height  int
	TPS     int
	Tick    int
	MaxArea int
	Panel   int

	AlignLimit int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := lights.DefaultConfig()
	return &Config{Width: 800, Height: 600, TPS: 10, MaxArea: lc.MaxArea, Panel: 180, AlignLimit: lc.AlignLimit}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "light field input file")
	fs.IntVar(&c.Width, "width", c.Width, "field view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "field view height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Tick, "tick", c.Tick, "tick to start at")
	fs.IntVar(&c.MaxArea, "max-area", c.MaxArea, "largest bounding box drawn as a raster")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.AlignLimit, "align-limit", c.AlignLimit, "most ticks tried when aligning")
}

// Lights returns the light field settings the viewer runs with.
func (c *Config) Lights() lights.Config {
	lc := lights.DefaultConfig()
	lc.MaxArea = c.MaxArea
	lc.AlignLimit = c.AlignLimit
	return lc
}
