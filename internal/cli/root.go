package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/wahlandcase/repostatus/internal/config"
	"github.com/wahlandcase/repostatus/internal/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned after a run whose failure was already
// reported to the operator; main exits 1 without printing it again.
var ErrValidationFailed = errors.New("validation failed")

type rootOptions struct {
	settingsPath string
	linksFile    string
	output       string
	htmlOutput   string
	reposDir     string
	timeout      time.Duration
	dashboard    bool
	verbose      bool
	repo         string
	debug        bool
	noColor      bool

	now func() time.Time
}

// NewRootCommand builds the command tree
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{now: time.Now}

	rootCmd := &cobra.Command{
		Use:           "repostatus",
		Short:         "Validate sibling repositories and generate a status dashboard",
		Long:          `Reads the declared repository links, checks each sibling checkout for presence, git history and files, and reports their health.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.debug, opts.noColor)
			if opts.noColor {
				ui.DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.settingsPath, "settings", "", "Settings file (default <user config dir>/repostatus.toml)")
	pf.StringVar(&opts.linksFile, "links", "", "Repository links file (default .ajdlink.yaml)")
	pf.StringVar(&opts.output, "output", "", "Dashboard output path (default docs/status-dashboard.md)")
	pf.StringVar(&opts.reposDir, "repos-dir", "", "Directory holding the checkouts (default parent of working directory)")
	pf.DurationVar(&opts.timeout, "timeout", 0, "Bound on each git query, 0 to disable (default 30s)")
	pf.BoolVar(&opts.debug, "debug", false, "Log diagnostic details to stderr")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	f := rootCmd.Flags()
	f.BoolVar(&opts.dashboard, "dashboard", false, "Generate status dashboard")
	f.BoolVar(&opts.verbose, "verbose", false, "Show detailed status per repository")
	f.StringVar(&opts.repo, "repo", "", "Check a single repository by link name or repository name")
	f.StringVar(&opts.htmlOutput, "html", "", "Also write the dashboard as HTML to this path")

	rootCmd.AddCommand(newTUICommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

// Execute runs the root command; Ctrl-C cancels running git queries
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand(version).ExecuteContext(ctx)
}

func setupLogging(w io.Writer, debug, noColor bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()
}

// loadSettings reads the settings file and applies flag overrides
func loadSettings(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.settingsPath != "" {
		cfg, err = config.LoadFrom(opts.settingsPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("links") {
		cfg.Paths.LinksFile = opts.linksFile
	}
	if flags.Changed("output") {
		cfg.Paths.Dashboard = opts.output
	}
	if flags.Changed("repos-dir") {
		cfg.Paths.ReposDir = opts.reposDir
	}
	if flags.Changed("timeout") {
		cfg.SetGitTimeout(opts.timeout)
	}

	log.Debug().
		Str("links", cfg.Paths.LinksFile).
		Str("dashboard", cfg.Paths.Dashboard).
		Str("parser", cfg.Scan.Parser).
		Dur("git_timeout", cfg.GitTimeout()).
		Msg("settings loaded")
	return cfg, nil
}
