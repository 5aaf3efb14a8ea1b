package cli

import (
	"errors"
	"fmt"

	"github.com/wahlandcase/repostatus/internal/app"
	"github.com/wahlandcase/repostatus/internal/links"
	"github.com/wahlandcase/repostatus/internal/report"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse repository status interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}

			if links.DetectCapability(cfg.Scan.Parser) == links.Raw {
				return errors.New("the interactive view needs parsed links; set scan.parser to \"yaml\"")
			}
			declared, err := links.YAMLLoader{}.Load(cfg.Paths.LinksFile)
			if err != nil {
				return err
			}
			if len(declared) == 0 {
				return fmt.Errorf("no repository links found in %s", cfg.Paths.LinksFile)
			}

			r, err := newReconciler(cfg)
			if err != nil {
				return err
			}

			m := app.New(app.Options{
				Context:       cmd.Context(),
				Links:         declared,
				Reconciler:    r,
				Dashboard:     report.Dashboard{},
				DashboardPath: cfg.Paths.Dashboard,
				Now:           opts.now,
			})
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running interactive view: %w", err)
			}
			return nil
		},
	}
}
