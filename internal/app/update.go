package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.screen != ScreenScanning {
			return m, nil
		}
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		return m, tickCmd()

	case scanResult:
		m.statuses = msg.statuses
		m.scannedAt = m.opts.Now()
		if m.cursor >= len(m.statuses) {
			m.cursor = max(len(m.statuses)-1, 0)
		}
		m.screen = ScreenList
		return m, nil

	case dashboardWritten:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			m.message = ""
		} else {
			m.errorMessage = ""
			m.message = fmt.Sprintf("Dashboard written to %s", msg.path)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.shouldQuit = true
		return m, tea.Quit
	}

	// Ignore navigation until the first scan lands
	if m.screen == ScreenScanning {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.statuses)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Detail):
		if _, ok := m.selected(); ok {
			m.screen = ScreenDetail
		}
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenList
	case key.Matches(msg, m.keys.Rescan):
		m.screen = ScreenScanning
		m.message = ""
		m.errorMessage = ""
		return m, tea.Batch(tickCmd(), scanCmd(m.opts.Context, m.opts.Reconciler, m.opts.Links))
	case key.Matches(msg, m.keys.Dashboard):
		m.message = "Writing dashboard..."
		return m, writeDashboardCmd(m.opts.Dashboard, m.opts.DashboardPath, m.statuses, m.opts.Now())
	}

	return m, nil
}
