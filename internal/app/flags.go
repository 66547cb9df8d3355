package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Pattern string
	HUD     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 40, Height: 40, Scale: 20, TPS: 10, HUD: 160}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial state (0 uses process entropy)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in starting pattern (glider, pentadecathlon, pulsar); overrides -w and -h")
	fs.IntVar(&c.HUD, "hud", c.HUD, "status panel width in pixels (0 hides it)")
}

// SimOptions converts the grid settings into a factory configuration map.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w": strconv.Itoa(c.Width),
		"h": strconv.Itoa(c.Height),
	}
	if c.Seed != 0 {
		opts["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	if c.Pattern != "" {
		opts["pattern"] = c.Pattern
	}
	return opts
}
