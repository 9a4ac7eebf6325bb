package render

import (
	"image/color"

	"github.com/crazy3lf/colorconv"
)

var (
	// ColorBackground is drawn behind every cell.
	ColorBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	// ColorWater is the fill colour of water up to a full cell.
	ColorWater = color.RGBA{R: 0x42, G: 0x87, B: 0xf5, A: 0xff}
	// ColorSolid paints solid cells.
	ColorSolid = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// ColorGridLine paints the overlay grid lines.
	ColorGridLine = color.RGBA{R: 0x1f, G: 0x1f, B: 0x1f, A: 0xff}
)

const (
	waterHue        = 217.0
	waterSaturation = 0.73
	waterValue      = 0.96
	minWaterValue   = 0.35
	overfullShades  = 8
	// overfullStep is how much excess level maps to one darker shade.
	overfullStep = 0.5
)

var overfullPalette = buildOverfullPalette()

// buildOverfullPalette darkens the water hue for cells holding more than one
// cell's worth of water.
func buildOverfullPalette() []color.RGBA {
	palette := make([]color.RGBA, overfullShades)
	for i := range palette {
		v := waterValue * (1 - float64(i+1)/float64(overfullShades+1))
		if v < minWaterValue {
			v = minWaterValue
		}
		r, g, b, err := colorconv.HSVToRGB(waterHue, waterSaturation, v)
		if err != nil {
			palette[i] = ColorWater
			continue
		}
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return palette
}

// WaterColor returns the shade used for a water cell holding level.
func WaterColor(level float64) color.RGBA {
	if level <= 1 {
		return ColorWater
	}
	idx := int((level - 1) / overfullStep)
	if idx >= len(overfullPalette) {
		idx = len(overfullPalette) - 1
	}
	return overfullPalette[idx]
}
