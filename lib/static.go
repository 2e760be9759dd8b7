package lib

import (
	"fmt"
	"image"
)

// StaticImage is an icon rendered in memory and never written.
type StaticImage struct {
	Label string
	Img   image.Image
}

func (s StaticImage) Image() (image.Image, error) {
	if s.Img == nil {
		return nil, fmt.Errorf("%s: no image", s.Label)
	}
	return s.Img, nil
}

func (s StaticImage) LoadingMsg() string {
	return fmt.Sprintf("Rendering %s ✨", s.Label)
}

func (s StaticImage) Footer() string {
	b := s.Img.Bounds()
	return fmt.Sprintf("%s (%dx%d, not written)", s.Label, b.Dx(), b.Dy())
}
