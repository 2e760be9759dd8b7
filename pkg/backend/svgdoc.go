package backend

import (
	"bytes"
	"image/color"

	svg "github.com/ajstarks/svgo/float"

	"github.com/trashhalo/pwaicon/pkg/icon"
)

type circle struct {
	cx, cy, r float64
	fill      color.Color
}

// svgDoc accumulates drawing calls as an SVG document sized to the canvas.
// Like the vector backend it measures from pixel centres.
type svgDoc struct {
	size       int
	background color.Color
	circles    []circle
}

func (d *svgDoc) FillCircle(cx, cy, r float64, clr color.Color) {
	d.circles = append(d.circles, circle{cx: cx + pixelCentre, cy: cy + pixelCentre, r: r, fill: clr})
}

func (d *svgDoc) String() string {
	var buf bytes.Buffer
	size := float64(d.size)

	canvas := svg.New(&buf)
	canvas.Decimals = 4
	canvas.Startview(size, size, 0, 0, size, size)
	canvas.Rect(0, 0, size, size, fill(d.background))
	for _, c := range d.circles {
		canvas.Circle(c.cx, c.cy, c.r, fill(c.fill))
	}
	canvas.End()
	return buf.String()
}

func fill(c color.Color) string {
	return `fill="` + icon.Hex(c) + `"`
}
