package app

import (
	"flag"
	"fmt"
	"strconv"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Height   int
	CellSize int
	TPS      int
	HUDWidth int
	Substeps int
	Clamp    bool
	Leaky    bool
}

// NewConfig returns a Config populated with sensible defaults. 20 ticks per
// second gives the 50ms frame delay.
func NewConfig() *Config {
	return &Config{
		Sim:      "fluid",
		Width:    900,
		Height:   600,
		CellSize: 20,
		TPS:      20,
		HUDWidth: 220,
		Substeps: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "display width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "display height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge length in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.IntVar(&c.Substeps, "substeps", c.Substeps, "ticks per frame")
	fs.BoolVar(&c.Clamp, "clamp", c.Clamp, "clamp water levels to [0,1] after each tick")
	fs.BoolVar(&c.Leaky, "leaky", c.Leaky, "let solids absorb water falling onto them")
}

// Validate reports the first configuration value that cannot be used.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return fmt.Errorf("sim name must not be empty")
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Width < c.CellSize || c.Height < c.CellSize {
		return fmt.Errorf("display %dx%d is smaller than one %d pixel cell", c.Width, c.Height, c.CellSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.HUDWidth < 0 {
		return fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	if c.Substeps < 0 {
		return fmt.Errorf("substeps must not be negative, got %d", c.Substeps)
	}
	return nil
}

// FrameDelay returns the fixed delay between frames.
func (c *Config) FrameDelay() time.Duration {
	if c.TPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TPS)
}

// Options converts the configuration into the key/value map understood by
// sim factories.
func (c *Config) Options() map[string]string {
	return map[string]string{
		"w":            strconv.Itoa(c.Width),
		"h":            strconv.Itoa(c.Height),
		"cell":         strconv.Itoa(c.CellSize),
		"substeps":     strconv.Itoa(c.Substeps),
		"clamp":        strconv.FormatBool(c.Clamp),
		"solids_block": strconv.FormatBool(!c.Leaky),
	}
}
