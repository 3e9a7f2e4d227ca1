package app

import "github.com/spf13/pflag"

// Config holds the window options for the GUI shell.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int
	Hardness int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 6, TPS: 60, HUDWidth: 220, Hardness: 50}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the parameter panel in pixels, 0 hides it")
	fs.IntVar(&c.Hardness, "probe-hardness", c.Hardness, "hardness of the traced probe point")
}

// Normalize clamps the options to usable values.
func (c *Config) Normalize() {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
}
