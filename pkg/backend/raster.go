package backend

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/trashhalo/pwaicon/pkg/icon"
)

// Raster fills whole pixels without antialiasing: a pixel belongs to a circle
// when its integer coordinate lies within the radius.
type Raster struct{}

func (Raster) Name() string { return "raster" }

func (Raster) NewCanvas(size int, background color.Color) (icon.Canvas, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)
	return &rasterCanvas{img: img}, nil
}

type rasterCanvas struct {
	img *image.RGBA
}

func (c *rasterCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	b := c.img.Bounds()
	x0 := max(b.Min.X, int(math.Floor(cx-r)))
	x1 := min(b.Max.X-1, int(math.Ceil(cx+r)))
	y0 := max(b.Min.Y, int(math.Floor(cy-r)))
	y1 := min(b.Max.Y-1, int(math.Ceil(cy+r)))

	rr := r * r
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= rr {
				c.img.Set(x, y, clr)
			}
		}
	}
}

func (c *rasterCanvas) Encode(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *rasterCanvas) Image() image.Image {
	return c.img
}
