package app

import (
	"context"
	"time"

	"github.com/wahlandcase/repostatus/internal/models"
	"github.com/wahlandcase/repostatus/internal/reconcile"
	"github.com/wahlandcase/repostatus/internal/report"

	tea "github.com/charmbracelet/bubbletea"
)

// Options wires the interactive view to a scan
type Options struct {
	// Context cancels running scans; defaults to context.Background
	Context       context.Context
	Links         []models.RepoLink
	Reconciler    *reconcile.Reconciler
	Dashboard     report.Dashboard
	DashboardPath string
	// Now defaults to time.Now
	Now func() time.Time
}

// Model is the main application state
type Model struct {
	opts Options
	keys keyMap

	// Navigation
	screen     Screen
	cursor     int
	shouldQuit bool

	// Scan state
	statuses  []models.RepoStatus
	scannedAt time.Time

	// UI state
	spinnerFrame int
	message      string
	errorMessage string

	// Window size
	width  int
	height int
}

// New creates a new application model
func New(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return Model{
		opts:   opts,
		keys:   defaultKeyMap(),
		screen: ScreenScanning,
		width:  100,
		height: 30,
	}
}

// Init starts the first scan
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), scanCmd(m.opts.Context, m.opts.Reconciler, m.opts.Links))
}

// Statuses returns the most recent scan result
func (m Model) Statuses() []models.RepoStatus {
	return m.statuses
}

// tickMsg is sent on each tick for the spinner
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m Model) selected() (models.RepoStatus, bool) {
	if m.cursor < 0 || m.cursor >= len(m.statuses) {
		return models.RepoStatus{}, false
	}
	return m.statuses[m.cursor], true
}
