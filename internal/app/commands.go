package app

import (
	"context"
	"time"

	"github.com/wahlandcase/repostatus/internal/models"
	"github.com/wahlandcase/repostatus/internal/reconcile"
	"github.com/wahlandcase/repostatus/internal/report"

	tea "github.com/charmbracelet/bubbletea"
)

// Message types for async operations

type scanResult struct {
	statuses []models.RepoStatus
}

type dashboardWritten struct {
	path string
	err  error
}

// scanCmd reconciles all links in the background
func scanCmd(ctx context.Context, r *reconcile.Reconciler, links []models.RepoLink) tea.Cmd {
	return func() tea.Msg {
		return scanResult{statuses: r.Reconcile(ctx, links)}
	}
}

// writeDashboardCmd renders and writes the dashboard for the current statuses
func writeDashboardCmd(d report.Dashboard, path string, statuses []models.RepoStatus, now time.Time) tea.Cmd {
	return func() tea.Msg {
		content, err := d.Render(statuses, now)
		if err != nil {
			return dashboardWritten{path: path, err: err}
		}
		return dashboardWritten{path: path, err: report.Write(path, []byte(content))}
	}
}
