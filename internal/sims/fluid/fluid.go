// Package fluid implements a cell grid where water falls one cell per tick.
package fluid

import (
	"strings"

	"cellflow/internal/core"
)

// Cell is one grid location.
type Cell struct {
	Material core.Material
	// Level is the water fill, 0 (empty) to 1 (full). Solid cells are drawn
	// full regardless of it.
	Level float64
	X, Y  int
}

// Sim owns the cell grid and advances the vertical flow update.
type Sim struct {
	cfg Config

	rows, cols int

	grid *core.Grid[Cell]
	flow *core.Grid[float64]

	display []uint8
	levels  []float64
	ticks   int
}

// New returns a fluid grid sized from cfg with every cell empty water.
func New(cfg Config) *Sim {
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultConfig().CellSize
	}
	rows, cols := cfg.Rows(), cfg.Columns()
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	s := &Sim{
		cfg:  cfg,
		rows: rows,
		cols: cols,
		grid: core.NewGrid[Cell](cols, rows),
		flow: core.NewGrid[float64](cols, rows),
	}
	total := rows * cols
	s.display = make([]uint8, total)
	s.levels = make([]float64, total)
	s.Reset()
	return s
}

// NewGrid is a convenience constructor for a rows x cols grid with 1 pixel
// cells and default policies.
func NewGrid(rows, cols int) *Sim {
	cfg := DefaultConfig()
	cfg.CellSize = 1
	cfg.Width = cols
	cfg.Height = rows
	return New(cfg)
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "fluid" }

// Size returns the grid dimensions in cells.
func (s *Sim) Size() core.Size { return core.Size{W: s.cols, H: s.rows} }

// Rows returns the number of grid rows.
func (s *Sim) Rows() int { return s.rows }

// Columns returns the number of grid columns.
func (s *Sim) Columns() int { return s.cols }

// CellSize returns the edge length of one cell in pixels.
func (s *Sim) CellSize() int { return s.cfg.CellSize }

// Config returns the active configuration.
func (s *Sim) Config() Config { return s.cfg }

// Ticks returns the number of ticks applied since the last Reset.
func (s *Sim) Ticks() int { return s.ticks }

// Reset makes every cell empty water positioned at its (column, row).
func (s *Sim) Reset() {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			s.grid.Set(x, y, Cell{Material: core.Water, Level: 0, X: x, Y: y})
		}
	}
	s.flow.Fill(0)
	s.ticks = 0
	s.sync()
}

// Cell returns the cell at (col, row).
func (s *Sim) Cell(col, row int) (Cell, bool) {
	if !s.grid.InBounds(col, row) {
		return Cell{}, false
	}
	return s.grid.At(col, row), true
}

// ApplyEdit paints the cell under the pixel (pixelX, pixelY). Erasing leaves
// empty water; otherwise the cell becomes brush at full level. Coordinates
// outside the grid are ignored.
func (s *Sim) ApplyEdit(pixelX, pixelY int, brush core.Material, erase bool) bool {
	if pixelX < 0 || pixelY < 0 {
		return false
	}
	return s.ApplyCellEdit(pixelX/s.cfg.CellSize, pixelY/s.cfg.CellSize, brush, erase)
}

// ApplyCellEdit is ApplyEdit in cell coordinates.
func (s *Sim) ApplyCellEdit(col, row int, brush core.Material, erase bool) bool {
	if !s.grid.InBounds(col, row) {
		return false
	}
	cell := Cell{Material: brush, Level: 1, X: col, Y: row}
	if erase {
		cell.Material = core.Water
		cell.Level = 0
	}
	s.grid.Set(col, row, cell)
	idx := s.grid.Index(col, row)
	s.display[idx] = uint8(cell.Material)
	s.levels[idx] = cell.Level
	return true
}

// Step advances the simulation by the configured number of ticks.
func (s *Sim) Step() {
	for i := 0; i < s.cfg.Substeps; i++ {
		s.Tick()
	}
}

// Tick moves water one cell down wherever a water cell holds any fill and is
// not in the bottom row. The transfer amount is always 1.
func (s *Sim) Tick() {
	cells := s.grid.Cells()
	flow := s.flow.Cells()
	w := s.cols

	for i := range flow {
		flow[i] = 0
	}
	for y := 0; y < s.rows-1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			c := cells[idx]
			if c.Material != core.Water || c.Level == 0 {
				continue
			}
			if s.cfg.SolidsBlock && cells[idx+w].Material == core.Solid {
				continue
			}
			flow[idx] = 1
		}
	}

	for y := 1; y < s.rows; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			above := idx - w
			if flow[above] == 0 {
				continue
			}
			cells[idx].Level += flow[above]
			cells[above].Level -= flow[above]
		}
	}

	if s.cfg.Clamp {
		for i := range cells {
			if cells[i].Material != core.Water {
				continue
			}
			cells[i].Level = clamp01(cells[i].Level)
		}
	}

	s.ticks++
	s.sync()
}

// Cells exposes the per-cell material buffer (0 water, 1 solid).
func (s *Sim) Cells() []uint8 { return s.display }

// FillLevels exposes the per-cell fill level buffer.
func (s *Sim) FillLevels() []float64 { return s.levels }

// Flow exposes the downward flow computed by the last tick.
func (s *Sim) Flow() []float64 { return s.flow.Cells() }

// TotalWater sums the fill level of every water cell.
func (s *Sim) TotalWater() float64 {
	total := 0.0
	for _, c := range s.grid.Cells() {
		if c.Material == core.Water {
			total += c.Level
		}
	}
	return total
}

// String renders the grid as one text line per row.
func (s *Sim) String() string {
	var b strings.Builder
	b.Grow((s.cols + 1) * s.rows)
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			b.WriteByte(cellGlyph(s.grid.At(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellGlyph(c Cell) byte {
	if c.Material == core.Solid {
		return '#'
	}
	switch {
	case c.Level < 0:
		return '!'
	case c.Level == 0:
		return '.'
	case c.Level < 1:
		return '-'
	case c.Level == 1:
		return '~'
	default:
		return '+'
	}
}

func (s *Sim) sync() {
	for i, c := range s.grid.Cells() {
		s.display[i] = uint8(c.Material)
		s.levels[i] = c.Level
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func init() {
	core.Register("fluid", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
