package qrcode

import (
	"image"
	"image/draw"
)

// rasterQuietZone is the unconditional quiet-zone width of raster output,
// in modules.
const rasterQuietZone = 1

// DefaultScale is the pixels-per-module factor used when callers do not
// choose one.
const DefaultScale = 8

// RenderImage maps the matrix to a pixel buffer. Each module becomes a
// scale×scale block of the dark or light color, and a one-module quiet
// zone of the light color surrounds the matrix, so the output measures
// (Size()+2)*scale pixels per side. Scale values below 1 are treated as 1.
func RenderImage(m *Matrix, scale int, colors ColorPair) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}

	side := (m.Size() + 2*rasterQuietZone) * scale
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(colors.Light.nrgba()), image.Point{}, draw.Src)

	dark := image.NewUniform(colors.Dark.nrgba())
	for y := 0; y < m.Size(); y++ {
		for x := 0; x < m.Size(); x++ {
			if !m.Dark(x, y) {
				continue
			}
			px := (x + rasterQuietZone) * scale
			py := (y + rasterQuietZone) * scale
			draw.Draw(img, image.Rect(px, py, px+scale, py+scale), dark, image.Point{}, draw.Src)
		}
	}
	return img
}
