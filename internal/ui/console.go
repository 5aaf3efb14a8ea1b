package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/wahlandcase/repostatus/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// WriteHeader prints the run header
func WriteHeader(w io.Writer) {
	fmt.Fprintln(w, "🚀 Repository Validator")
	fmt.Fprintln(w, strings.Repeat("=", 40))
}

// WriteValidation prints one availability line per repo and the tally
func WriteValidation(w io.Writer, statuses []models.RepoStatus) {
	available := 0
	for _, s := range statuses {
		if s.Available() {
			fmt.Fprintf(w, "✅ %s: %s (found locally)\n", s.Link.Name, s.RepoName)
			available++
		} else {
			fmt.Fprintf(w, "⚠️  %s: %s (not found locally)\n", s.Link.Name, s.RepoName)
		}
	}
	fmt.Fprintf(w, "📊 Validation complete: %d/%d repositories available\n", available, len(statuses))
}

// WriteDetails prints every field of every status
func WriteDetails(w io.Writer, statuses []models.RepoStatus) {
	nameStyle := lipgloss.NewStyle().Bold(true)
	healthy := 0
	for _, s := range statuses {
		fmt.Fprintf(w, "\n📁 %s:\n", nameStyle.Render(s.RepoName))
		for _, f := range DetailFields(s) {
			fmt.Fprintf(w, "  %s: %s\n", f[0], f[1])
		}
		if s.Health == models.Healthy {
			healthy++
		}
	}
	if len(statuses) > 0 {
		fmt.Fprintf(w, "\n💚 Health: %s\n", ProgressBar(healthy, len(statuses), 20))
	}
}

// DetailFields lists a status as ordered key/value pairs
func DetailFields(s models.RepoStatus) [][2]string {
	fields := [][2]string{
		{"link", s.Link.Name},
		{"path", s.Path},
		{"exists", fmt.Sprint(s.Exists)},
		{"is_git", fmt.Sprint(s.IsGit)},
		{"last_sync", models.SyncDisplay(s.LastSync)},
		{"validation", s.Validation.Display()},
		{"health", s.Health.Display()},
		{"notes", s.Notes},
	}
	if s.FileCount != nil {
		fields = append(fields, [2]string{"file_count", fmt.Sprint(*s.FileCount)})
	}
	if s.Branch != "" {
		fields = append(fields, [2]string{"branch", s.Branch})
	}
	if reason := models.SyncReason(s.LastSync); reason != "" {
		fields = append(fields, [2]string{"sync_error", reason})
	}
	return fields
}
