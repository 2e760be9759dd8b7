package backend

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/trashhalo/pwaicon/pkg/icon"
)

// SVG describes the icon as an SVG document and rasterizes it with oksvg.
type SVG struct{}

func (SVG) Name() string { return "svg" }

func (SVG) NewCanvas(size int, background color.Color) (icon.Canvas, error) {
	return &svgCanvas{svgDoc{size: size, background: background}}, nil
}

type svgCanvas struct {
	svgDoc
}

func (c *svgCanvas) rasterize() (*image.RGBA, error) {
	svgIcon, err := oksvg.ReadIconStream(strings.NewReader(c.String()), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	w, h := c.size, c.size
	svgIcon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	svgIcon.Draw(rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())), 1)
	return rgba, nil
}

func (c *svgCanvas) Encode(w io.Writer) error {
	rgba, err := c.rasterize()
	if err != nil {
		return err
	}
	return png.Encode(w, rgba)
}
