package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/wahlandcase/repostatus/internal/config"
	"github.com/wahlandcase/repostatus/internal/links"
	"github.com/wahlandcase/repostatus/internal/models"
	"github.com/wahlandcase/repostatus/internal/reconcile"
	"github.com/wahlandcase/repostatus/internal/report"
	"github.com/wahlandcase/repostatus/internal/ui"

	"github.com/rs/zerolog/log"
)

// runCheck validates the declared links and optionally writes the dashboard
// and the per-repository dump. A single reconcile pass feeds all three.
func runCheck(ctx context.Context, out io.Writer, cfg *config.Config, opts *rootOptions) error {
	ui.WriteHeader(out)
	fmt.Fprintln(out, "🔍 Validating repo map...")

	loader := links.NewLoader(links.DetectCapability(cfg.Scan.Parser), out)
	declared, err := loader.Load(cfg.Paths.LinksFile)

	degraded := false
	switch {
	case errors.Is(err, links.ErrConfigNotFound):
		fmt.Fprintf(out, "❌ %s not found.\n", cfg.Paths.LinksFile)
		return ErrValidationFailed
	case errors.Is(err, links.ErrParsingUnavailable):
		degraded = true
	case err != nil:
		fmt.Fprintf(out, "❌ %v\n", err)
		return ErrValidationFailed
	}

	var statuses []models.RepoStatus
	success := true
	switch {
	case degraded:
		// Nothing to reconcile; the raw file has been shown
		log.Debug().Msg("links not parsed, skipping reconciliation")
	case len(declared) == 0:
		fmt.Fprintln(out, "❌ No repository links found in configuration")
		success = false
	default:
		if opts.repo != "" {
			declared, err = reconcile.Filter(declared, opts.repo)
			if err != nil {
				fmt.Fprintf(out, "❌ %v\n", err)
				return ErrValidationFailed
			}
		}

		r, err := newReconciler(cfg)
		if err != nil {
			return err
		}
		statuses = r.Reconcile(ctx, declared)
		ui.WriteValidation(out, statuses)
		success = reconcile.Available(statuses)
	}

	if opts.dashboard {
		if err := writeDashboard(out, cfg, opts, statuses); err != nil {
			fmt.Fprintf(out, "❌ %v\n", err)
			return ErrValidationFailed
		}
	}

	if opts.verbose {
		fmt.Fprintln(out, "\n🔍 Detailed repository status:")
		if len(statuses) == 0 {
			fmt.Fprintln(out, "⚠️  Cannot show detailed status without parsed repository links")
		} else {
			ui.WriteDetails(out, statuses)
		}
	}

	if !success {
		fmt.Fprintln(out, "\n⚠️ Validation complete")
		return ErrValidationFailed
	}
	fmt.Fprintln(out, "\n✅ Validation complete")
	return nil
}

func newReconciler(cfg *config.Config) (*reconcile.Reconciler, error) {
	dir, err := cfg.ReposDir()
	if err != nil {
		return nil, fmt.Errorf("resolving repos dir: %w", err)
	}
	r := reconcile.New(dir, cfg.GitTimeout())
	r.NotesMax = cfg.Scan.NotesMax
	log.Debug().Str("repos_dir", dir).Msg("reconciling")
	return r, nil
}

func writeDashboard(out io.Writer, cfg *config.Config, opts *rootOptions, statuses []models.RepoStatus) error {
	fmt.Fprintln(out, "\n📊 Generating status dashboard...")
	if len(statuses) == 0 {
		fmt.Fprintln(out, "⚠️  Cannot generate dashboard without parsed repository links")
		return nil
	}

	content, err := report.Dashboard{}.Render(statuses, opts.now())
	if err != nil {
		return err
	}
	if err := report.Write(cfg.Paths.Dashboard, []byte(content)); err != nil {
		return err
	}
	fmt.Fprintf(out, "✅ Dashboard generated: %s\n", cfg.Paths.Dashboard)
	fmt.Fprintf(out, "📈 Repository status: %d repositories processed\n", len(statuses))

	if opts.htmlOutput == "" {
		return nil
	}
	page, err := report.RenderHTML(report.DefaultTitle, []byte(content))
	if err != nil {
		return err
	}
	if err := report.Write(opts.htmlOutput, page); err != nil {
		return err
	}
	fmt.Fprintf(out, "✅ HTML dashboard generated: %s\n", opts.htmlOutput)
	return nil
}
