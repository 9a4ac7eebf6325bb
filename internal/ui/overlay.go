//go:build ebiten

package ui

import (
	"image/color"

	"cellflow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type flowProvider interface {
	Flow() []float64
}

// Overlay draws optional debugging visuals and the brush cursor on top of the
// grid.
type Overlay struct {
	sim      core.Sim
	cellSize int
	toast    *Toast

	showFlow bool
	maskImg  *ebiten.Image
	maskBuf  []byte

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, cellSize int, toast *Toast) *Overlay {
	o := &Overlay{sim: sim, cellSize: cellSize, toast: toast}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the flow view.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFlow = !o.showFlow
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, brush core.Material, erase bool) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	cs := o.cellSize
	if cs <= 0 {
		cs = 1
	}

	if o.showFlow {
		if provider, ok := o.sim.(flowProvider); ok {
			o.drawFlow(screen, provider.Flow(), size, cs)
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx >= 0 && my >= 0 {
		col, row := mx/cs, my/cs
		if col < size.W && row < size.H {
			o.drawCellOutline(screen, col*cs, row*cs, cs, cursorColor(brush, erase))
		}
	}

	if o.toast != nil && o.toast.Visible() {
		o.drawToast(screen, size.W*cs)
	}
}

func (o *Overlay) drawFlow(screen *ebiten.Image, flow []float64, size core.Size, cs int) {
	total := size.W * size.H
	if len(flow) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	for i, f := range flow {
		base := i * 4
		if f == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		// premultiplied alpha
		o.maskBuf[base+0] = 60
		o.maskBuf[base+1] = 110
		o.maskBuf[base+2] = 60
		o.maskBuf[base+3] = 110
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cs), float64(cs))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawCellOutline(screen *ebiten.Image, x, y, size int, col color.RGBA) {
	const thickness = 2
	o.drawRect(screen, x, y, size, thickness, col)
	o.drawRect(screen, x, y+size-thickness, size, thickness, col)
	o.drawRect(screen, x, y, thickness, size, col)
	o.drawRect(screen, x+size-thickness, y, thickness, size, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawToast(screen *ebiten.Image, viewWidth int) {
	face := basicfont.Face7x13
	msg := o.toast.Message()
	bounds := text.BoundString(face, msg)
	const pad = 8
	w := bounds.Dx() + 2*pad
	h := bounds.Dy() + 2*pad
	x := (viewWidth - w) / 2
	y := 16
	a := o.toast.Alpha()
	o.drawRect(screen, x, y, w, h, color.RGBA{R: 16, G: 16, B: 20, A: uint8(200 * a)})
	fg := color.NRGBA{R: 230, G: 230, B: 240, A: uint8(255 * a)}
	text.Draw(screen, msg, face, x+pad, y+pad-bounds.Min.Y, fg)
}

func cursorColor(brush core.Material, erase bool) color.RGBA {
	switch {
	case erase:
		return color.RGBA{R: 230, G: 70, B: 70, A: 255}
	case brush == core.Solid:
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	default:
		return color.RGBA{R: 120, G: 180, B: 255, A: 255}
	}
}
