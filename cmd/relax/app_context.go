package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/relax/internal/api"
	"github.com/alexisbeaulieu97/relax/internal/breathing"
	"github.com/alexisbeaulieu97/relax/internal/config"
	"github.com/alexisbeaulieu97/relax/internal/logger"
	"github.com/alexisbeaulieu97/relax/internal/metrics"
	"github.com/alexisbeaulieu97/relax/internal/theme"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Client  *api.Client
	Metrics *metrics.Metrics
	Theme   *theme.Controller

	closeLog func() error
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	if a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

// NewSession builds a breathing session on the real clock.
func (a *AppContext) NewSession() *breathing.Session {
	return breathing.NewSession(breathing.Options{
		MaxCycles: a.Config.Breathing.MaxCycles,
		Logger:    a.Logger,
	})
}

// newAppContext loads configuration and wires services. Subcommands log to
// stderr; the dashboard owns the terminal and logs to a file instead.
func newAppContext(cmd *cobra.Command, flags *rootFlags, logToFile bool) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath, flags.configPath != "")
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	app := &AppContext{Config: cfg, Metrics: metrics.New()}

	opts := logger.Options{Level: level}
	switch {
	case logToFile && cfg.LogPath() != "":
		file, err := openLogFile(cfg.LogPath())
		if err != nil {
			return nil, err
		}
		opts.Writer = file
		app.closeLog = file.Close
	case logToFile:
		opts.Writer = io.Discard
	default:
		opts.Writer = cmd.ErrOrStderr()
		opts.HumanReadable = isTerminal(opts.Writer)
	}

	log, err := logger.New(opts)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	app.Logger = log

	client, err := api.NewClient(api.Options{
		BaseURL: cfg.BaseURL,
		Timeouts: api.Timeouts{
			Quote: cfg.Timeouts.Quote,
			Media: cfg.Timeouts.Media,
		},
		UserAgent: "relax/" + version,
		Logger:    log,
	})
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Client = client

	app.Theme = theme.NewController(theme.Options{
		Store:    theme.NewFileStore(cfg.ThemePath()),
		System:   theme.SystemDetector(os.Stdout),
		Override: theme.NoColorOverride(nil),
		Logger:   log,
		Metrics:  app.Metrics,
	})

	return app, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
