package life

import (
	"strconv"

	"torus-life/pkg/core"
)

// Config holds parameters for a Life grid.
type Config struct {
	Width  int
	Height int
	// Seed selects a deterministic initial state; zero draws from process entropy.
	Seed int64
	// Pattern names a built-in starting state. When set it replaces the
	// random start and the grid takes the pattern's dimensions.
	Pattern string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 40, Height: 40}
}

// FromMap populates a Config from a string map. Invalid entries are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if p, err := LookupPattern(v); err == nil {
			c.Pattern = p.Name
		}
	}
	return c
}

// NewWithConfig builds a grid from cfg.
func NewWithConfig(cfg Config) (*Grid, error) {
	if cfg.Pattern != "" {
		p, err := LookupPattern(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		return NewFromPattern(p)
	}
	if cfg.Seed == 0 {
		return New(cfg.Width, cfg.Height)
	}
	return NewWithSource(cfg.Width, cfg.Height, core.NewRNG(cfg.Seed))
}

// Parameters exposes the grid's dimensions and live statistics.
func (g *Grid) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "World",
				Params: []core.Parameter{
					core.IntParam("w", "Width", g.width),
					core.IntParam("h", "Height", g.height),
					core.BoolParam("wrap", "Toroidal", true),
				},
			},
			{
				Name: "Run",
				Params: []core.Parameter{
					core.IntParam("step", "Generation", g.Generation()),
					core.IntParam("alive", "Alive", g.Population()),
				},
			},
		},
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		g, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			// FromMap only yields positive dimensions and known patterns.
			panic(err)
		}
		return g
	})
}
