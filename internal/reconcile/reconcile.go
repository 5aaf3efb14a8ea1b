// Package reconcile compares declared links against the sibling checkouts
// on disk and classifies each one.
package reconcile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wahlandcase/repostatus/internal/git"
	"github.com/wahlandcase/repostatus/internal/models"

	"github.com/rs/zerolog/log"
)

// DefaultNotesMax bounds the error text kept in Notes
const DefaultNotesMax = 50

// Reconciler probes the checkouts for a set of links
type Reconciler struct {
	// ReposDir holds the sibling checkouts
	ReposDir string
	// Runner runs the git queries
	Runner git.Runner
	// Timeout bounds each git query; 0 means no bound
	Timeout time.Duration
	// NotesMax bounds error notes, in runes
	NotesMax int
}

// New creates a Reconciler using the git binary on PATH
func New(reposDir string, timeout time.Duration) *Reconciler {
	return &Reconciler{
		ReposDir: reposDir,
		Runner:   git.ExecRunner{},
		Timeout:  timeout,
		NotesMax: DefaultNotesMax,
	}
}

// Reconcile returns one status per link, in link order. Failures are
// recorded on the affected status and never stop the batch.
func (r *Reconciler) Reconcile(ctx context.Context, links []models.RepoLink) []models.RepoStatus {
	statuses := make([]models.RepoStatus, 0, len(links))
	for _, link := range links {
		statuses = append(statuses, r.Inspect(ctx, link))
	}
	return statuses
}

// Inspect reconciles a single link
func (r *Reconciler) Inspect(ctx context.Context, link models.RepoLink) models.RepoStatus {
	path := filepath.Join(r.ReposDir, link.RepoName())
	status := models.NewRepoStatus(link, path)

	// A URL ending in "/" names no directory
	if status.RepoName == "" {
		return status
	}

	if _, err := os.Stat(path); err == nil {
		status.Exists = true
		status.IsGit = git.HasMarker(path)
	}

	logger := log.With().Str("repo", status.RepoName).Str("path", path).Logger()
	if !status.Available() {
		logger.Debug().Bool("exists", status.Exists).Msg("repository not available")
		return status
	}

	status, err := r.probe(ctx, status)
	if err != nil {
		logger.Debug().Err(err).Msg("probe failed")
		status.Validation = models.ValidationError
		status.Health = models.HealthError
		status.Notes = "Git error: " + truncate(err.Error(), r.notesMax())
		return status
	}

	status.Branch = git.CurrentBranch(path)
	logger.Debug().Str("health", status.Health.Display()).Msg("repository checked")
	return status
}

func (r *Reconciler) probe(ctx context.Context, status models.RepoStatus) (models.RepoStatus, error) {
	queryCtx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	runner := r.Runner
	if runner == nil {
		runner = git.ExecRunner{}
	}

	sync, err := git.LastCommitDate(queryCtx, runner, status.Path)
	if err != nil {
		return status, err
	}
	status.LastSync = sync

	count, err := git.CountFiles(status.Path)
	if err != nil {
		return status, fmt.Errorf("counting files: %w", err)
	}
	status = status.WithFileCount(count)

	if count > 0 {
		status.Validation = models.Passed
		status.Health = models.Healthy
		status.Notes = fmt.Sprintf("%d files", count)
	} else {
		status.Validation = models.Warning
		status.Health = models.Empty
		status.Notes = "No files found"
	}
	return status, nil
}

func (r *Reconciler) notesMax() int {
	if r.NotesMax <= 0 {
		return DefaultNotesMax
	}
	return r.NotesMax
}

// truncate keeps at most n runes of s
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Available reports whether every repo is present and under git,
// regardless of health. An empty set is not available.
func Available(statuses []models.RepoStatus) bool {
	return len(statuses) > 0 && CountAvailable(statuses) == len(statuses)
}

// CountAvailable counts repos that are present and under git
func CountAvailable(statuses []models.RepoStatus) int {
	n := 0
	for _, s := range statuses {
		if s.Available() {
			n++
		}
	}
	return n
}

// CountHealthy counts repos classified Healthy
func CountHealthy(statuses []models.RepoStatus) int {
	n := 0
	for _, s := range statuses {
		if s.Health == models.Healthy {
			n++
		}
	}
	return n
}

// Filter narrows links to the one whose logical name or repo name matches
func Filter(links []models.RepoLink, name string) ([]models.RepoLink, error) {
	for _, l := range links {
		if l.Name == name {
			return []models.RepoLink{l}, nil
		}
	}
	for _, l := range links {
		if l.RepoName() == name {
			return []models.RepoLink{l}, nil
		}
	}
	return nil, &UnknownRepoError{Name: name}
}

// UnknownRepoError is a requested repo that is not declared in the links file
type UnknownRepoError struct {
	Name string
}

func (e *UnknownRepoError) Error() string {
	return fmt.Sprintf("repository %q is not declared in the links file", e.Name)
}
