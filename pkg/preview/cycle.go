package preview

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type cycleStartMsg struct {
	ctx    context.Context
	cancel context.CancelFunc
}

type tickMsg struct {
	ctx context.Context
}

func (m Model) startCycle() tea.Cmd {
	if m.cycle <= 0 || len(m.sources) < 2 {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	return func() tea.Msg {
		return cycleStartMsg{ctx: ctx, cancel: cancel}
	}
}

func tick(ctx context.Context, d time.Duration) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(d):
			return tickMsg{ctx: ctx}
		}
	}
}

func handleTickMsg(m Model, msg tickMsg) (Model, tea.Cmd) {
	if msg.ctx.Err() != nil {
		return m, nil
	}
	m.selected = m.next()
	return m, tea.Batch(load(m.sources[m.selected]), tick(msg.ctx, m.cycle))
}
