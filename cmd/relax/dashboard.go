package main

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/relax/internal/metrics"
	"github.com/alexisbeaulieu97/relax/internal/relief"
	"github.com/alexisbeaulieu97/relax/internal/tui/app"
)

var errNoTerminal = errors.New("the dashboard needs an interactive terminal; try `relax quote` or `relax breathe`")

func runDashboard(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
		return errNoTerminal
	}

	appCtx, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	addr := flags.metricsAddr
	if addr == "" {
		addr = appCtx.Config.Metrics.Addr
	}
	if addr != "" {
		go func() {
			if err := metrics.Serve(ctx, addr, appCtx.Metrics, appCtx.Logger); err != nil {
				appCtx.Logger.Error(err, "metrics listener failed")
			}
		}()
	}

	model := app.NewModel(app.Deps{
		Quotes: appCtx.Client,
		Dispatcher: relief.NewDispatcher(relief.Options{
			Source:  appCtx.Client,
			Logger:  appCtx.Logger,
			Metrics: appCtx.Metrics,
		}),
		Theme:            appCtx.Theme,
		NewSession:       appCtx.NewSession,
		CompletionOnStop: appCtx.Config.Breathing.CompletionOnStop,
		Logger:           appCtx.Logger,
		Metrics:          appCtx.Metrics,
	})

	appCtx.Logger.Info("launching dashboard")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		appCtx.Logger.Error(err, "dashboard exited with error")
		return err
	}
	return nil
}
