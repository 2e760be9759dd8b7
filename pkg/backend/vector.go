package backend

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"

	"github.com/trashhalo/pwaicon/pkg/icon"
)

// pixelCentre moves integer pixel coordinates onto the centre of the pixel
// they name, so antialiased circles sit where the raster backend puts them.
const pixelCentre = 0.5

// Vector scan-converts circles with rasterx, producing antialiased edges.
type Vector struct{}

func (Vector) Name() string { return "vector" }

func (Vector) NewCanvas(size int, background color.Color) (icon.Canvas, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	return &vectorCanvas{
		img:    img,
		filler: rasterx.NewFiller(size, size, scanner),
	}, nil
}

type vectorCanvas struct {
	img    *image.RGBA
	filler *rasterx.Filler
}

func (c *vectorCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.filler.SetColor(clr)
	rasterx.AddCircle(cx+pixelCentre, cy+pixelCentre, r, c.filler)
	c.filler.Draw()
	c.filler.Clear()
}

func (c *vectorCanvas) Encode(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *vectorCanvas) Image() image.Image {
	return c.img
}
