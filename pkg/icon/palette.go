package icon

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// OuterRatio is the outer circle radius as a fraction of the edge length.
	OuterRatio = 0.35
	// InnerRatio is the inner circle radius as a fraction of the outer radius.
	InnerRatio = 0.8
)

var (
	Background = mustHex("#22c55e")
	Ring       = mustHex("#ffffff")
	Core       = mustHex("#0a0a0a")
)

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex formats an opaque color the way the palette is written.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
