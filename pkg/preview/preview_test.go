package preview

import (
	"image"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/trashhalo/pwaicon/lib"
)

func square(size int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestImageToString(t *testing.T) {
	out := imageToString(80, 24, "pwa-4x4.png", square(4), termenv.Ascii)
	if got := strings.Count(out, "▀"); got != 8 {
		t.Errorf("got %d half blocks, want 8", got)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], strings.Repeat(" ", 38)) {
		t.Errorf("icon not centred: %q", lines[0])
	}
	if !strings.Contains(lines[2], "pwa-4x4.png") {
		t.Errorf("footer missing: %q", lines[2])
	}
}

func TestImageToStringShrinks(t *testing.T) {
	out := imageToString(40, 12, "big", square(512), termenv.Ascii)
	// 12 rows leave room for 20 pixel rows, so 10 lines of 20 blocks
	if got := strings.Count(out, "▀"); got != 200 {
		t.Errorf("got %d half blocks, want 200", got)
	}
}

func TestNavigation(t *testing.T) {
	sources := []lib.Source{
		lib.StaticImage{Label: "192", Img: square(8)},
		lib.StaticImage{Label: "512", Img: square(16)},
	}
	var m tea.Model = New(sources, 0)

	m, cmd := m.Update(key("j"))
	if got := m.(Model).selected; got != 1 {
		t.Fatalf("selected = %d, want 1", got)
	}
	m, _ = m.Update(cmd())
	if !strings.Contains(m.View(), "512") {
		t.Errorf("view does not show second icon:\n%s", m.View())
	}

	m, _ = m.Update(key("j"))
	if got := m.(Model).selected; got != 0 {
		t.Errorf("selected = %d, want wrap to 0", got)
	}
	m, _ = m.Update(key("k"))
	if got := m.(Model).selected; got != 1 {
		t.Errorf("selected = %d, want wrap to 1", got)
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestStaleLoadIgnored(t *testing.T) {
	sources := []lib.Source{
		lib.StaticImage{Label: "a", Img: square(4)},
		lib.StaticImage{Label: "b", Img: square(4)},
	}
	m := New(sources, 0)
	m.selected = 1
	m, _ = handleLoadMsg(m, loadMsg{source: sources[0], img: square(4)})
	if m.image != "" {
		t.Error("load for a different icon replaced the view")
	}
}

func TestLoadError(t *testing.T) {
	var m tea.Model = New([]lib.Source{lib.FileImage{Filename: "/nonexistent/pwa.png"}}, 0)
	msg := load(lib.FileImage{Filename: "/nonexistent/pwa.png"})()
	m, _ = m.Update(msg)
	if !strings.Contains(m.View(), "couldn't load") {
		t.Errorf("view = %q", m.View())
	}
	if _, cmd := m.Update(key("x")); cmd == nil {
		t.Error("any key should quit after an error")
	}
}

func TestCycleDisabled(t *testing.T) {
	if cmd := New([]lib.Source{lib.StaticImage{Label: "a", Img: square(4)}}, 0).startCycle(); cmd != nil {
		t.Error("cycle should be off without an interval")
	}
}
