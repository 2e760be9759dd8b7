package preview

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trashhalo/pwaicon/lib"
)

// Model is a bubbletea model that shows one icon at a time in the terminal.
type Model struct {
	selected int
	sources  []lib.Source
	image    string
	width    uint
	height   uint
	err      error

	cycle       time.Duration
	cancelCycle context.CancelFunc
}

// New previews sources in order. A non-zero cycle advances to the next icon
// on that interval.
func New(sources []lib.Source, cycle time.Duration) Model {
	return Model{
		sources: sources,
		width:   80,
		height:  24,
		cycle:   cycle,
	}
}

func (m Model) Init() tea.Cmd {
	if len(m.sources) == 0 {
		return wrapErrCmd(fmt.Errorf("nothing to preview"))
	}
	return tea.Batch(load(m.sources[m.selected]), m.startCycle())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
	}

	if len(m.sources) == 0 {
		if _, ok := msg.(errMsg); !ok {
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = uint(msg.Width)
		m.height = uint(msg.Height)
		return m, load(m.sources[m.selected])
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.cancelCycle != nil {
				m.cancelCycle()
			}
			return m, tea.Quit
		case "j", "down":
			m.selected = m.next()
			return m, load(m.sources[m.selected])
		case "k", "up":
			if m.selected-1 != -1 {
				m.selected--
			} else {
				m.selected = len(m.sources) - 1
			}
			return m, load(m.sources[m.selected])
		}
	case errMsg:
		m.err = msg
		return m, nil
	case loadMsg:
		return handleLoadMsg(m, msg)
	case cycleStartMsg:
		m.cancelCycle = msg.cancel
		return m, tick(msg.ctx, m.cycle)
	case tickMsg:
		return handleTickMsg(m, msg)
	}
	return m, nil
}

func (m Model) next() int {
	if m.selected+1 != len(m.sources) {
		return m.selected + 1
	}
	return 0
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("couldn't load icon(s): %v\n\npress any key to exit", m.err)
	}
	if m.image == "" {
		if len(m.sources) == 0 {
			return ""
		}
		return m.sources[m.selected].LoadingMsg()
	}
	return m.image
}

func wrapErrCmd(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err} }
}

type errMsg struct{ error }

// Run starts the preview on the alternate screen and blocks until quit.
func Run(sources []lib.Source, cycle time.Duration) error {
	p := tea.NewProgram(New(sources, cycle), tea.WithAltScreen())
	return p.Start()
}
