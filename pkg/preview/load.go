package preview

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/nfnt/resize"

	"github.com/trashhalo/pwaicon/lib"
)

type loadMsg struct {
	source lib.Source
	img    image.Image
}

func load(s lib.Source) tea.Cmd {
	return func() tea.Msg {
		img, err := s.Image()
		if err != nil {
			return errMsg{err}
		}
		return loadMsg{source: s, img: img}
	}
}

func handleLoadMsg(m Model, msg loadMsg) (Model, tea.Cmd) {
	// a slow load may land after the user moved on
	if msg.source != m.sources[m.selected] {
		return m, nil
	}
	m.image = imageToString(m.width, m.height, msg.source.Footer(), msg.img, termenv.ColorProfile())
	return m, nil
}

// imageToString draws img with upper half blocks, two pixel rows per line.
func imageToString(width, height uint, footer string, img image.Image, p termenv.Profile) string {
	maxH := uint(2)
	if height > 2 {
		maxH = height*2 - 4
	}
	img = resize.Thumbnail(width, maxH, img, resize.Lanczos3)
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	str := strings.Builder{}
	for y := 0; y < h; y += 2 {
		for x := w; x < int(width); x = x + 2 {
			str.WriteString(" ")
		}
		for x := 0; x < w; x++ {
			c1, _ := colorful.MakeColor(img.At(b.Min.X+x, b.Min.Y+y))
			color1 := p.Color(c1.Hex())
			c2, _ := colorful.MakeColor(img.At(b.Min.X+x, b.Min.Y+y+1))
			color2 := p.Color(c2.Hex())
			str.WriteString(termenv.String("▀").
				Foreground(color1).
				Background(color2).
				String())
		}
		str.WriteString("\n")
	}
	str.WriteString(fmt.Sprintf("q to quit | j/k next/prev | %s\n", footer))
	return str.String()
}
