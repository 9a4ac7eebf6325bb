package render

import (
	"image/color"
	"testing"

	"cellflow/internal/core"
)

func TestFillRectClipsToCanvas(t *testing.T) {
	cv := NewCanvas(4, 4)
	red := color.RGBA{R: 255, A: 255}
	cv.FillRect(-2, -2, 4, 4, red)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := color.RGBA{}
			if x < 2 && y < 2 {
				want = red
			}
			if got := cv.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	cv.FillRect(1, 1, 0, 3, color.RGBA{G: 255, A: 255})
	cv.FillRect(1, 1, 3, -1, color.RGBA{G: 255, A: 255})
	cv.FillRect(10, 10, 3, 3, color.RGBA{G: 255, A: 255})
	if got := cv.At(1, 1); got != red {
		t.Fatalf("empty rectangles must not draw, got %v", got)
	}
}

func TestDrawCellsWaterBarAndSolid(t *testing.T) {
	const cell = 10
	size := core.Size{W: 2, H: 1}
	cv := NewCanvas(size.W*cell, size.H*cell)
	cv.Fill(color.RGBA{R: 9, G: 9, B: 9, A: 255})

	materials := []uint8{uint8(core.Water), uint8(core.Solid)}
	levels := []float64{0.5, 0}
	DrawCells(cv, size, materials, levels, cell)

	if got := cv.At(3, 2); got != ColorBackground {
		t.Fatalf("empty part of a half-full cell should be background, got %v", got)
	}
	if got := cv.At(3, 4); got != ColorBackground {
		t.Fatalf("row above the water line should be background, got %v", got)
	}
	if got := cv.At(3, 5); got != ColorWater {
		t.Fatalf("lower half should be water, got %v", got)
	}
	if got := cv.At(3, 9); got != ColorWater {
		t.Fatalf("bottom row should be water, got %v", got)
	}
	for _, p := range [][2]int{{10, 0}, {19, 9}, {15, 5}} {
		if got := cv.At(p[0], p[1]); got != ColorSolid {
			t.Fatalf("solid cell pixel %v = %v, want %v", p, got, ColorSolid)
		}
	}
}

func TestDrawCellsClampsWaterHeight(t *testing.T) {
	const cell = 4
	size := core.Size{W: 1, H: 2}
	cv := NewCanvas(cell, 2*cell)
	materials := []uint8{uint8(core.Water), uint8(core.Water)}
	DrawCells(cv, size, materials, []float64{-0.5, 3}, cell)

	for y := 0; y < cell; y++ {
		if got := cv.At(0, y); got != ColorBackground {
			t.Fatalf("negative level must draw no water, row %d = %v", y, got)
		}
	}
	overfull := WaterColor(3)
	for y := cell; y < 2*cell; y++ {
		if got := cv.At(0, y); got != overfull {
			t.Fatalf("overfull water must stay inside its cell, row %d = %v", y, got)
		}
	}
}

func TestDrawCellsRejectsMismatchedBuffers(t *testing.T) {
	cv := NewCanvas(2, 2)
	DrawCells(cv, core.Size{W: 2, H: 2}, []uint8{1}, nil, 1)
	if got := cv.At(0, 0); got != (color.RGBA{}) {
		t.Fatalf("mismatched buffers must not draw, got %v", got)
	}
}

func TestDrawGridLines(t *testing.T) {
	const cell = 5
	size := core.Size{W: 3, H: 2}
	cv := NewCanvas(size.W*cell, size.H*cell)
	DrawGridLines(cv, size, cell, 2, ColorGridLine)

	lines := [][2]int{{0, 7}, {1, 7}, {5, 3}, {6, 9}, {10, 0}, {3, 0}, {3, 1}, {14, 5}, {14, 6}}
	for _, p := range lines {
		if got := cv.At(p[0], p[1]); got != ColorGridLine {
			t.Errorf("pixel %v should be a grid line, got %v", p, got)
		}
	}
	gaps := [][2]int{{2, 2}, {3, 3}, {8, 8}, {14, 9}}
	for _, p := range gaps {
		if got := cv.At(p[0], p[1]); got == ColorGridLine {
			t.Errorf("pixel %v should not be a grid line", p)
		}
	}
}

func TestWaterColorDarkensWhenOverfull(t *testing.T) {
	if WaterColor(0.3) != ColorWater || WaterColor(1) != ColorWater {
		t.Fatal("levels up to one cell use the base water colour")
	}
	brightness := func(c color.RGBA) int { return int(c.R) + int(c.G) + int(c.B) }
	prev := brightness(ColorWater)
	for _, level := range []float64{1.1, 1.6, 2.2, 3, 10, 100} {
		c := WaterColor(level)
		b := brightness(c)
		if b > prev {
			t.Fatalf("level %v is brighter (%d) than a lower level (%d)", level, b, prev)
		}
		if c.B <= c.R {
			t.Fatalf("level %v lost its blue hue: %v", level, c)
		}
		prev = b
	}
	if WaterColor(100) != overfullPalette[len(overfullPalette)-1] {
		t.Fatal("very high levels should use the darkest shade")
	}
}
