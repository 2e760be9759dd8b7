package lib

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/disintegration/imageorient"
)

// FileImage is an icon already written to disk.
type FileImage struct {
	Filename string
}

func (f FileImage) Image() (image.Image, error) {
	file, err := os.Open(f.Filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := imageorient.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Filename, err)
	}

	return img, nil
}

func (f FileImage) LoadingMsg() string {
	return fmt.Sprintf("Loading %s ✨", f.Filename)
}

func (f FileImage) Footer() string {
	return f.Filename
}
