package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wahlandcase/repostatus/internal/models"
	"github.com/wahlandcase/repostatus/internal/reconcile"
	"github.com/wahlandcase/repostatus/internal/report"
	"github.com/wahlandcase/repostatus/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC)

func testStatuses() []models.RepoStatus {
	core := models.NewRepoStatus(models.NewRepoLink("core", "https://host/org/core-repo"), "/repos/core-repo")
	core.Exists, core.IsGit = true, true
	core.LastSync = models.Synced("2025-05-30")
	core.Validation, core.Health, core.Notes = models.Passed, models.Healthy, "4 files"
	core = core.WithFileCount(4)

	brand := models.NewRepoStatus(models.NewRepoLink("brand", "https://host/org/brand-repo"), "/repos/brand-repo")
	return []models.RepoStatus{core, brand}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(Options{
		Links: []models.RepoLink{
			models.NewRepoLink("core", "https://host/org/core-repo"),
			models.NewRepoLink("brand", "https://host/org/brand-repo"),
		},
		Reconciler:    &reconcile.Reconciler{ReposDir: t.TempDir()},
		DashboardPath: filepath.Join(t.TempDir(), "docs", "status-dashboard.md"),
		Now:           func() time.Time { return fixedNow },
	})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestScanResultShowsList(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, ScreenScanning, m.screen)
	assert.Contains(t, m.View(), "Scanning 2 repositories")

	m, _ = update(t, m, scanResult{statuses: testStatuses()})
	assert.Equal(t, ScreenList, m.screen)
	assert.Len(t, m.Statuses(), 2)
	assert.Equal(t, fixedNow, m.scannedAt)

	view := m.View()
	assert.Contains(t, view, "core-repo")
	assert.Contains(t, view, "brand-repo")
	assert.Contains(t, view, "Available: 1/2")
}

func TestInitScansLinks(t *testing.T) {
	m := newTestModel(t)
	require.NotNil(t, m.Init())

	// Run the scan directly; none of the repos exist under the temp dir
	msg := scanCmd(m.opts.Context, m.opts.Reconciler, m.opts.Links)()
	result, ok := msg.(scanResult)
	require.True(t, ok)
	require.Len(t, result.statuses, 2)
	assert.Equal(t, models.NotChecked, result.statuses[0].Validation)
}

func TestNavigationIsBounded(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, scanResult{statuses: testStatuses()})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, runeKey('j'))
	assert.Equal(t, 1, m.cursor)
}

func TestDetailAndBack(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, scanResult{statuses: testStatuses()})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ScreenDetail, m.screen)
	view := m.View()
	assert.Contains(t, view, "file_count")
	assert.Contains(t, view, "2025-05-30")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ScreenList, m.screen)
}

func TestKeysIgnoredWhileScanning(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ScreenScanning, m.screen)
	assert.Nil(t, cmd)
}

func TestRescanReturnsToScanning(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, scanResult{statuses: testStatuses()})

	m, cmd := update(t, m, runeKey('r'))
	assert.Equal(t, ScreenScanning, m.screen)
	assert.NotNil(t, cmd)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.True(t, m.shouldQuit)
	assert.Equal(t, "", m.View())

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestWriteDashboard(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, scanResult{statuses: testStatuses()})

	m, cmd := update(t, m, runeKey('d'))
	require.NotNil(t, cmd)

	msg := cmd()
	written, ok := msg.(dashboardWritten)
	require.True(t, ok)
	require.NoError(t, written.err)

	data, err := os.ReadFile(m.opts.DashboardPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# "+report.DefaultTitle)
	assert.Contains(t, string(data), "June 01, 2025 - 09:30 UTC")

	m, _ = update(t, m, msg)
	assert.Contains(t, m.message, "Dashboard written to")
	assert.Empty(t, m.errorMessage)
}

func TestDashboardWriteError(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, dashboardWritten{path: "x", err: assert.AnError})
	assert.Equal(t, assert.AnError.Error(), m.errorMessage)
	assert.Contains(t, m.View(), assert.AnError.Error())
}

func TestTickStopsAfterScan(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, tickMsg{})
	assert.Equal(t, 1, m.spinnerFrame)
	assert.NotNil(t, cmd)

	m, _ = update(t, m, scanResult{statuses: testStatuses()})
	_, cmd = update(t, m, tickMsg{})
	assert.Nil(t, cmd)
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "Detail", ScreenDetail.String())
	assert.Equal(t, "Unknown", Screen(99).String())
}

// ctxRunner fails once its context is done, like a killed git
type ctxRunner struct{}

func (ctxRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "2025-05-30", nil
}

func TestScanUsesOptionsContext(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "core-repo", ".git"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "core-repo", "main.go"), []byte("x"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	m := New(Options{
		Context:    ctx,
		Links:      []models.RepoLink{models.NewRepoLink("core", "https://host/org/core-repo")},
		Reconciler: &reconcile.Reconciler{ReposDir: root, Runner: ctxRunner{}},
	})

	result := scanCmd(m.opts.Context, m.opts.Reconciler, m.opts.Links)().(scanResult)
	require.Len(t, result.statuses, 1)
	assert.Equal(t, models.Healthy, result.statuses[0].Health)

	cancel()
	result = scanCmd(m.opts.Context, m.opts.Reconciler, m.opts.Links)().(scanResult)
	require.Len(t, result.statuses, 1)
	assert.Equal(t, models.HealthError, result.statuses[0].Health)
	assert.Contains(t, result.statuses[0].Notes, context.Canceled.Error())
}

func TestNewDefaultsContext(t *testing.T) {
	m := New(Options{})
	assert.NotNil(t, m.opts.Context)
}

func TestListShowsValidationColumn(t *testing.T) {
	ui.DisableColor()
	m := newTestModel(t)
	m, _ = update(t, m, scanResult{statuses: testStatuses()})

	view := m.View()
	assert.Contains(t, view, models.Passed.Display())
	assert.Contains(t, view, models.NotChecked.Display())
}
