package render

import "image/color"

// Canvas is an RGBA pixel buffer that flat-colour rectangles are filled into.
type Canvas struct {
	W, H int
	Pix  []byte
}

// NewCanvas allocates a w*h canvas cleared to transparent black.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// FillRect fills the axis-aligned rectangle at (x, y) with size w*h. The
// rectangle is clipped to the canvas; empty or negative sizes draw nothing.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.W), min(y+h, c.H)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		row := py * c.W * 4
		for px := x0; px < x1; px++ {
			base := row + px*4
			c.Pix[base+0] = col.R
			c.Pix[base+1] = col.G
			c.Pix[base+2] = col.B
			c.Pix[base+3] = col.A
		}
	}
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(col color.RGBA) {
	c.FillRect(0, 0, c.W, c.H, col)
}

// At returns the colour of pixel (x, y), or transparent black outside the
// canvas.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return color.RGBA{}
	}
	base := (y*c.W + x) * 4
	return color.RGBA{R: c.Pix[base+0], G: c.Pix[base+1], B: c.Pix[base+2], A: c.Pix[base+3]}
}
