package backend

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/disintegration/imageorient"

	"github.com/trashhalo/pwaicon/pkg/icon"
)

const rsvgBinary = "rsvg-convert"

// Rsvg hands the SVG description of the icon to the rsvg-convert program.
// It is the only backend that can be missing at runtime.
type Rsvg struct {
	Binary string
}

func NewRsvg(binary string) Rsvg {
	if binary == "" {
		binary = rsvgBinary
	}
	return Rsvg{Binary: binary}
}

func (r Rsvg) Name() string { return "rsvg" }

func (r Rsvg) Available() error {
	if _, err := exec.LookPath(r.Binary); err != nil {
		return fmt.Errorf("rsvg: %w", err)
	}
	return nil
}

func (r Rsvg) NewCanvas(size int, background color.Color) (icon.Canvas, error) {
	path, err := exec.LookPath(r.Binary)
	if err != nil {
		return nil, err
	}
	return &rsvgCanvas{svgDoc: svgDoc{size: size, background: background}, path: path}, nil
}

type rsvgCanvas struct {
	svgDoc
	path string
}

func (c *rsvgCanvas) Encode(w io.Writer) error {
	size := strconv.Itoa(c.size)
	cmd := exec.Command(c.path, "--width", size, "--height", size, "--format", "png")
	cmd.Stdin = strings.NewReader(c.String())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w: %s", rsvgBinary, err, strings.TrimSpace(stderr.String()))
	}

	// rsvg-convert always writes RGBA; re-encode so opaque output stays 24-bit.
	img, _, err := imageorient.Decode(&stdout)
	if err != nil {
		return fmt.Errorf("%s output: %w", rsvgBinary, err)
	}
	return png.Encode(w, opaque(img))
}
