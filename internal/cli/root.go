package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"flashfind/internal/actions"
	"flashfind/internal/config"
	"flashfind/internal/domain"
	"flashfind/internal/finder"
	"flashfind/internal/logging"
	"flashfind/internal/platform"
	"flashfind/internal/results"
	"flashfind/internal/ui"
)

// e2eEnv makes the TUI print a marker once the program is about to start
const e2eEnv = "FLASHFIND_E2E_TEST"

var version = "dev"

type options struct {
	configPath string
	logPath    string
	dir        string
	fdBinary   string
	regex      bool
	debug      bool
}

// app holds what both the TUI and the headless search need
type app struct {
	cfg       *config.Config
	configSvc config.ConfigService
	log       zerolog.Logger
	closer    io.Closer
	searcher  *finder.Executor
}

func (a *app) Close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "flashfind [query]",
		Short:        "Interactive front-end for the fd file finder",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runTUI(cmd, a, query)
		},
	}
	cmd.Version = version

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/flashfind/config.toml)")
	pf.StringVar(&opts.logPath, "log-file", "", "log file (default $XDG_CACHE_HOME/flashfind/flashfind.log)")
	pf.StringVarP(&opts.dir, "dir", "d", "", "directory to search in (default: current directory)")
	pf.StringVar(&opts.fdBinary, "fd", "", "fd executable name or path")
	pf.BoolVar(&opts.regex, "regex", false, "treat the query as a regular expression")
	pf.BoolVar(&opts.debug, "debug", false, "write debug output to the log file")

	cmd.AddCommand(newSearchCmd(opts))
	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the config, applies flag overrides and opens the log
func setup(cmd *cobra.Command, opts *options) (*app, error) {
	svc := config.NewConfigService()
	if opts.configPath != "" {
		svc = config.NewConfigServiceAt(opts.configPath)
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}
	logPath := opts.logPath
	if logPath == "" {
		logPath = logging.DefaultPath()
	}
	logger, closer, err := logging.Open(logPath, level)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
	}
	logger.Info().Str("config", svc.Path()).Str("fd", cfg.FdBinary).Str("dir", cfg.SearchDir).Msg("starting")

	return &app{
		cfg:       cfg,
		configSvc: svc,
		log:       logger,
		closer:    closer,
		searcher: finder.New(finder.Options{
			Binary:    cfg.FdBinary,
			Dir:       cfg.SearchDir,
			ExtraArgs: cfg.ExtraArgs,
			Logger:    logging.Component(logger, "finder"),
		}),
	}, nil
}

// applyFlags overrides config values with the flags the user set
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("fd") {
		cfg.FdBinary = opts.fdBinary
	}
	if flags.Changed("regex") {
		cfg.Regex = opts.regex
	}
	if flags.Changed("dir") {
		cfg.SearchDir = opts.dir
	}
	if cfg.SearchDir == "" {
		return nil
	}

	abs, err := filepath.Abs(cfg.SearchDir)
	if err != nil {
		return fmt.Errorf("resolve search directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("search directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("search directory %s is not a directory", abs)
	}
	cfg.SearchDir = abs
	return nil
}

func runTUI(cmd *cobra.Command, a *app, query string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	clip := platform.SystemClipboard{}
	if !clip.Available() {
		a.log.Warn().Msg("no clipboard utility found, copy will fail")
	}
	svc := actions.New(
		results.NewStore(),
		platform.NewSystemOpener(logging.Component(a.log, "platform")),
		clip,
		logging.Component(a.log, "actions"),
	)

	model := ui.NewModel(ui.Options{
		Config:        a.cfg,
		ConfigService: a.configSvc,
		Searcher:      a.searcher,
		Actions:       svc,
		Logger:        logging.Component(a.log, "ui"),
		InitialQuery:  query,
		Context:       ctx,
	})

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, progOpts...)
	model.SetProgram(p)

	if os.Getenv(e2eEnv) == "1" {
		fmt.Fprintln(cmd.OutOrStdout(), "__READY__")
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			a.log.Info().Msg("interrupted")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	a.log.Info().Msg("exiting")
	return nil
}

// noticeError carries the user-facing wording of a failure out of RunE
type noticeError struct {
	notice domain.Notice
	err    error
}

func newNoticeError(err error) *noticeError {
	return &noticeError{notice: domain.NoticeFor(err), err: err}
}

func (e *noticeError) Error() string { return e.notice.Message }

func (e *noticeError) Unwrap() error { return e.err }
