package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/wahlandcase/repostatus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	out string
	err error
}

func (f fakeRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	return f.out, f.err
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestHasMarker(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, HasMarker(dir))

	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	assert.True(t, HasMarker(dir))
}

func TestCountFilesSkipsMarker(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "HEAD"))
	writeFile(t, filepath.Join(dir, ".git", "objects", "ab", "cdef"))
	writeFile(t, filepath.Join(dir, "README.md"))
	writeFile(t, filepath.Join(dir, ".gitignore"))
	writeFile(t, filepath.Join(dir, "src", "main.go"))
	writeFile(t, filepath.Join(dir, "vendor", "lib", ".git", "config"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0755))

	n, err := CountFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCountFilesOnlyMarker(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "HEAD"))

	n, err := CountFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCountFilesMissingPath(t *testing.T) {
	_, err := CountFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLastCommitDate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		res, err := LastCommitDate(ctx, fakeRunner{out: "2024-05-01"}, "/repo")
		require.NoError(t, err)
		assert.True(t, models.IsSynced(res))
		assert.Equal(t, "2024-05-01", models.SyncDisplay(res))
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		gitErr := &GitError{Command: "log", Output: "fatal: bad default revision 'HEAD'", ExitCode: 128}
		res, err := LastCommitDate(ctx, fakeRunner{err: gitErr}, "/repo")
		require.NoError(t, err)
		assert.False(t, models.IsSynced(res))
		assert.Equal(t, models.UnknownSync, models.SyncDisplay(res))
		assert.Contains(t, models.SyncReason(res), "bad default revision")
	})

	t.Run("start failure is an error", func(t *testing.T) {
		_, err := LastCommitDate(ctx, fakeRunner{err: exec.ErrNotFound}, "/repo")
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})
}

func TestGitErrorMessage(t *testing.T) {
	assert.Equal(t, "git log: boom", (&GitError{Command: "log", Output: "boom", ExitCode: 1}).Error())
	assert.Equal(t, "git log: exit status 2", (&GitError{Command: "log", ExitCode: 2}).Error())
}

func TestCurrentBranchNotARepo(t *testing.T) {
	assert.Equal(t, "", CurrentBranch(t.TempDir()))
}

func TestExecRunnerAgainstRealGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	ctx := context.Background()
	dir := t.TempDir()
	r := ExecRunner{}

	_, err := r.Run(ctx, dir, "init")
	require.NoError(t, err)

	// No commits yet: git exits non-zero
	res, err := LastCommitDate(ctx, r, dir)
	require.NoError(t, err)
	assert.False(t, models.IsSynced(res))

	writeFile(t, filepath.Join(dir, "file.txt"))
	_, err = r.Run(ctx, dir, "add", ".")
	require.NoError(t, err)
	_, err = r.Run(ctx, dir, "-c", "user.name=test", "-c", "user.email=test@example.com", "commit", "-m", "init")
	require.NoError(t, err)

	res, err = LastCommitDate(ctx, r, dir)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), models.SyncDisplay(res))

	branch, err := r.Run(ctx, dir, "branch", "--show-current")
	require.NoError(t, err)
	assert.Equal(t, branch, CurrentBranch(dir))
}

func TestExecRunnerCancelled(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExecRunner{}.Run(ctx, t.TempDir(), "status")
	require.Error(t, err)
	var gitErr *GitError
	assert.False(t, errors.As(err, &gitErr))
}
