// Package render rasterizes lattice snapshots into still images and
// animations.
package render

import "image/color"

// anchor colors for the state ramp, dark slate to warm gold.
var (
	rampLow  = color.RGBA{R: 0x1b, G: 0x1f, B: 0x3a, A: 0xff}
	rampHigh = color.RGBA{R: 0xff, G: 0xc6, B: 0x3e, A: 0xff}
)

// Palette returns one color per clock state, a linear ramp from rampLow to
// rampHigh indexed directly by cell value. Two states degenerate to the two
// anchors, which keeps the classic black-and-gold Ising look.
func Palette(states int) color.Palette {
	if states < 2 {
		states = 2
	}
	pal := make(color.Palette, states)
	for s := 0; s < states; s++ {
		t := float64(s) / float64(states-1)
		pal[s] = color.RGBA{
			R: lerp(rampLow.R, rampHigh.R, t),
			G: lerp(rampLow.G, rampHigh.G, t),
			B: lerp(rampLow.B, rampHigh.B, t),
			A: 0xff,
		}
	}
	return pal
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}
