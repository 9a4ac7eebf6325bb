package fluid

import "strconv"

// Config controls the fluid grid dimensions and flow policies.
type Config struct {
	// Width and Height are the display area in pixels.
	Width  int
	Height int
	// CellSize is the edge length of one cell in pixels.
	CellSize int

	// Substeps is the number of ticks run per Step.
	Substeps int
	// Clamp keeps water levels within [0,1] after every tick.
	Clamp bool
	// SolidsBlock stops water from flowing into a solid cell below it.
	SolidsBlock bool
}

// DefaultConfig returns the standard 900x600 display with 20 pixel cells.
func DefaultConfig() Config {
	return Config{
		Width:       900,
		Height:      600,
		CellSize:    20,
		Substeps:    1,
		Clamp:       false,
		SolidsBlock: true,
	}
}

// Columns returns the number of grid columns covering the display width.
func (c Config) Columns() int { return c.Width / c.CellSize }

// Rows returns the number of grid rows covering the display height.
func (c Config) Rows() int { return c.Height / c.CellSize }

// FromMap populates a Config from a string map (flag-style key/value pairs).
// The "rows" and "cols" keys size the grid directly and take precedence over
// the pixel dimensions.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
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
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed * c.CellSize
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed * c.CellSize
		}
	}
	if c.Width < c.CellSize {
		c.Width = c.CellSize
	}
	if c.Height < c.CellSize {
		c.Height = c.CellSize
	}
	if v, ok := cfg["substeps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Substeps = parsed
		}
	}
	if v, ok := cfg["clamp"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Clamp = parsed
		}
	}
	if v, ok := cfg["solids_block"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.SolidsBlock = parsed
		}
	}
	return c
}
