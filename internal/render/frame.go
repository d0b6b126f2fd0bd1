package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/san-kum/spinlab/internal/lattice"
)

// Frame rasterizes a lattice into a paletted image, one cell by cell pixel
// block per site, with cell values indexing pal directly.
func Frame(lat *lattice.Lattice, cell int, pal color.Palette) *image.Paletted {
	if cell < 1 {
		cell = 1
	}
	size := lat.Size()
	img := image.NewPaletted(image.Rect(0, 0, size*cell, size*cell), pal)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := lat.At(x, y)
			baseX, baseY := x*cell, y*cell
			for py := 0; py < cell; py++ {
				for px := 0; px < cell; px++ {
					img.SetColorIndex(baseX+px, baseY+py, idx)
				}
			}
		}
	}
	return img
}

// RGBAFrame rasterizes a lattice into an RGBA image for encoders that do
// not take paletted input.
func RGBAFrame(lat *lattice.Lattice, cell int, pal color.Palette) *image.RGBA {
	src := Frame(lat, cell, pal)
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)
	return img
}

// WritePNG saves one lattice snapshot as a PNG file.
func WritePNG(path string, lat *lattice.Lattice, cell int, pal color.Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, Frame(lat, cell, pal))
}
