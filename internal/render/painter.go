//go:build ebiten

package render

import (
	"cellflow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultLineWidth is the thickness of the grid overlay lines in pixels.
const DefaultLineWidth = 2

// GridPainter rasterizes a cell grid into a canvas and uploads it to a single
// ebiten image sized to the screen.
type GridPainter struct {
	size      core.Size
	cellSize  int
	lineWidth int
	canvas    *Canvas
	img       *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size cells, each cellSize
// pixels wide.
func NewGridPainter(size core.Size, cellSize int) *GridPainter {
	if cellSize <= 0 {
		cellSize = 1
	}
	w, h := size.W*cellSize, size.H*cellSize
	return &GridPainter{
		size:      size,
		cellSize:  cellSize,
		lineWidth: DefaultLineWidth,
		canvas:    NewCanvas(w, h),
		img:       ebiten.NewImage(w, h),
	}
}

// Blit draws the cells, optionally overlays the grid lines, and presents the
// result onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, levels []float64, showLines bool) {
	if len(cells) != gp.size.W*gp.size.H {
		return
	}
	DrawCells(gp.canvas, gp.size, cells, levels, gp.cellSize)
	if showLines {
		DrawGridLines(gp.canvas, gp.size, gp.cellSize, gp.lineWidth, ColorGridLine)
	}
	gp.img.WritePixels(gp.canvas.Pix)
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image in pixels.
func (gp *GridPainter) Size() (int, int) { return gp.canvas.W, gp.canvas.H }
