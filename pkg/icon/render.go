package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/trashhalo/pwaicon/log"
)

var ErrInvalidSize = errors.New("icon size must be positive")

type Renderer struct {
	backend Backend
}

func NewRenderer(b Backend) *Renderer {
	return &Renderer{backend: b}
}

func (r *Renderer) Backend() Backend {
	return r.backend
}

// Render draws the icon at size×size pixels and writes it to path as PNG,
// replacing any existing file.
func (r *Renderer) Render(size int, path string) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if err := checkWritable(path); err != nil {
		return err
	}

	c, err := r.compose(size)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return fmt.Errorf("encode %dx%d: %w", size, size, err)
	}
	if err := writeFile(path, buf.Bytes()); err != nil {
		return err
	}

	log.Debug().
		Int("size", size).
		Str("path", path).
		Str("backend", r.backend.Name()).
		Int("bytes", buf.Len()).
		Msg("icon written")
	return nil
}

// Draw composes the icon in memory.
func (r *Renderer) Draw(size int) (image.Image, error) {
	c, err := r.compose(size)
	if err != nil {
		return nil, err
	}
	if im, ok := c.(Imager); ok {
		return im.Image(), nil
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode %dx%d: %w", size, size, err)
	}
	return png.Decode(&buf)
}

func (r *Renderer) compose(size int) (Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	g := Layout(size)

	c, err := r.backend.NewCanvas(size, Background)
	if err != nil {
		return nil, fmt.Errorf("%s canvas: %w", r.backend.Name(), err)
	}
	// outer first so the core sits on top
	c.FillCircle(float64(g.CX), float64(g.CY), g.Outer, Ring)
	c.FillCircle(float64(g.CX), float64(g.CY), g.Inner, Core)
	return c, nil
}
