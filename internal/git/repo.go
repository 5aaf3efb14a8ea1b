package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/wahlandcase/repostatus/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog/log"
)

// MarkerDir is the directory whose presence marks a git checkout
const MarkerDir = ".git"

// Runner runs a git subcommand in dir and returns trimmed stdout
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecRunner runs the git binary found on PATH
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	log.Debug().
		Str("dir", dir).
		Strs("args", args).
		Dur("took", time.Since(start)).
		Err(err).
		Msg("git")

	if err != nil {
		// A killed process also reports an ExitError, so check the context first
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("git %s: %w", subcommand(args), ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &GitError{
				Command:  subcommand(args),
				Output:   strings.TrimSpace(stderr.String()),
				ExitCode: exitErr.ExitCode(),
			}
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}

func subcommand(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// GitError is a git command that ran and exited non-zero
type GitError struct {
	Command  string
	Output   string
	ExitCode int
}

func (e *GitError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("git %s: exit status %d", e.Command, e.ExitCode)
	}
	return "git " + e.Command + ": " + e.Output
}

// HasMarker checks if path contains a .git entry (directory, or file for worktrees)
func HasMarker(path string) bool {
	_, err := os.Stat(filepath.Join(path, MarkerDir))
	return err == nil
}

// LastCommitDate asks git for the most recent commit date (YYYY-MM-DD).
// A git that exits non-zero gives a SyncFailed result and no error; a git
// that cannot be started or times out is returned as an error.
func LastCommitDate(ctx context.Context, r Runner, path string) (models.SyncResult, error) {
	out, err := r.Run(ctx, path, "log", "-1", "--format=%cd", "--date=short")
	if err != nil {
		var gitErr *GitError
		if errors.As(err, &gitErr) {
			return models.SyncFailed(gitErr.Error()), nil
		}
		return nil, err
	}
	return models.Synced(out), nil
}

// CountFiles counts regular files under path, skipping .git directories
func CountFiles(path string) (int, error) {
	count := 0
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == MarkerDir && p != path {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == MarkerDir {
			// Worktree marker file
			return nil
		}

		mode := d.Type()
		if mode&fs.ModeSymlink != 0 {
			// Follow links to files, like a stat would
			info, err := os.Stat(p)
			if err != nil {
				return nil
			}
			mode = info.Mode()
		}
		if mode.IsRegular() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CurrentBranch returns the checked out branch, "detached@<hash>" for a
// detached HEAD, or "" if the repository cannot be read
func CurrentBranch(path string) string {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		// Unborn branch or broken repo
		return ""
	}
	if head.Name().IsBranch() {
		return head.Name().Short()
	}
	return "detached@" + head.Hash().String()[:7]
}
