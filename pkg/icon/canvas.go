package icon

import (
	"image"
	"image/color"
	"io"
)

// Canvas is a square raster being drawn into.
type Canvas interface {
	FillCircle(cx, cy, r float64, c color.Color)
	// Encode writes the canvas as PNG.
	Encode(w io.Writer) error
}

// Backend allocates canvases. Implementations live in pkg/backend.
type Backend interface {
	Name() string
	NewCanvas(size int, background color.Color) (Canvas, error)
}

// Imager is implemented by canvases that can hand back their raster directly.
type Imager interface {
	Image() image.Image
}
