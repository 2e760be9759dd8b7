package backend

import (
	"image"
	"image/draw"
)

// opaque copies img into an RGBA anchored at the origin.
func opaque(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
