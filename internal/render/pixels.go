package render

import (
	"image/color"

	"cellflow/internal/core"
)

// DrawCells paints every cell of a size.W*size.H grid onto the canvas. Water
// is drawn as a bottom-aligned bar proportional to its level and solids fill
// the whole cell. A nil levels slice draws all water as empty.
func DrawCells(cv *Canvas, size core.Size, materials []uint8, levels []float64, cellSize int) {
	total := size.W * size.H
	if len(materials) != total || cellSize <= 0 {
		return
	}
	if levels != nil && len(levels) != total {
		return
	}
	for i, m := range materials {
		px := (i % size.W) * cellSize
		py := (i / size.W) * cellSize
		cv.FillRect(px, py, cellSize, cellSize, ColorBackground)

		switch core.Material(m) {
		case core.Solid:
			cv.FillRect(px, py, cellSize, cellSize, ColorSolid)
		case core.Water:
			if levels == nil {
				continue
			}
			level := levels[i]
			height := waterHeight(level, cellSize)
			cv.FillRect(px, py+cellSize-height, cellSize, height, WaterColor(level))
		}
	}
}

// DrawGridLines overlays one vertical line per column and one horizontal line
// per row, each lineWidth pixels thick and spanning the canvas.
func DrawGridLines(cv *Canvas, size core.Size, cellSize, lineWidth int, col color.RGBA) {
	if cellSize <= 0 || lineWidth <= 0 {
		return
	}
	for i := 0; i < size.W; i++ {
		cv.FillRect(i*cellSize, 0, lineWidth, cv.H, col)
	}
	for j := 0; j < size.H; j++ {
		cv.FillRect(0, j*cellSize, cv.W, lineWidth, col)
	}
}

func waterHeight(level float64, cellSize int) int {
	h := int(level * float64(cellSize))
	if h < 0 {
		return 0
	}
	if h > cellSize {
		return cellSize
	}
	return h
}
