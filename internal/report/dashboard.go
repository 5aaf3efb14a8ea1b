// Package report renders reconciled repository statuses as a markdown
// dashboard and writes it to disk.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/wahlandcase/repostatus/internal/models"
	"github.com/wahlandcase/repostatus/internal/reconcile"
)

// DefaultTitle heads the dashboard
const DefaultTitle = "AJDIGITAL Infrastructure Status Dashboard"

// TimestampLayout formats the generation time (always UTC)
const TimestampLayout = "January 02, 2006 - 15:04 UTC"

//go:embed dashboard.md.tmpl
var dashboardTemplate string

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardTemplate))

type dashboardRow struct {
	Name       string
	SyncIcon   string
	LastSync   string
	Validation string
	Health     string
	Notes      string
}

type dashboardData struct {
	Title         string
	Timestamp     string
	Rows          []dashboardRow
	Total         int
	Healthy       int
	Available     int
	NeedAttention int
	HealthPercent int
	OverallIcon   string
	LinksIcon     string
}

// Dashboard renders the status dashboard
type Dashboard struct {
	Title string
}

// Render produces the markdown dashboard for statuses at time now
func (d Dashboard) Render(statuses []models.RepoStatus, now time.Time) (string, error) {
	title := d.Title
	if title == "" {
		title = DefaultTitle
	}

	total := len(statuses)
	healthy := reconcile.CountHealthy(statuses)
	available := reconcile.CountAvailable(statuses)

	data := dashboardData{
		Title:         title,
		Timestamp:     now.UTC().Format(TimestampLayout),
		Total:         total,
		Healthy:       healthy,
		Available:     available,
		NeedAttention: total - healthy,
		HealthPercent: HealthPercent(healthy, total),
		OverallIcon:   OverallIcon(healthy, total),
		LinksIcon:     "✅",
	}
	if available < total {
		data.LinksIcon = "⚠️"
	}

	for _, s := range statuses {
		data.Rows = append(data.Rows, row(s))
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering dashboard: %w", err)
	}
	return buf.String(), nil
}

func row(s models.RepoStatus) dashboardRow {
	r := dashboardRow{
		Name:       cell(s.RepoName),
		SyncIcon:   "⚠️",
		LastSync:   "Not synced",
		Validation: s.Validation.Icon() + " " + s.Validation.Display(),
		Health:     s.Health.Icon() + " " + s.Health.Display(),
		Notes:      cell(s.Notes),
	}
	if models.IsSynced(s.LastSync) && models.SyncDisplay(s.LastSync) != models.UnknownSync {
		r.SyncIcon = "✅"
		r.LastSync = cell(models.SyncDisplay(s.LastSync))
	}
	return r
}

// cell keeps a value from breaking the markdown table
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// HealthPercent is healthy/total as a percentage rounded to the nearest
// integer, 0 when there are no repos
func HealthPercent(healthy, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(healthy) / float64(total) * 100))
}

// OverallIcon is green when all repos are healthy, yellow above half
func OverallIcon(healthy, total int) string {
	switch {
	case total > 0 && healthy == total:
		return "🟢"
	case total > 0 && healthy*2 > total:
		return "🟡"
	default:
		return "🔴"
	}
}

// Write replaces the file at path with content, creating parent directories
func Write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
