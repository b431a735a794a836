package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/relax/internal/breathing"
	"github.com/alexisbeaulieu97/relax/internal/config"
	"github.com/alexisbeaulieu97/relax/internal/content"
)

func newBreatheCmd(flags *rootFlags) *cobra.Command {
	var cycles int

	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "Run the guided breathing exercise in plain text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer appCtx.Close()

			if cmd.Flags().Changed("cycles") {
				appCtx.Config.Breathing.MaxCycles = cycles
				if err := config.ValidateConfig(appCtx.Config); err != nil {
					return fmt.Errorf("invalid --cycles: %w", err)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			outcome := runBreathing(ctx, cmd.OutOrStdout(), appCtx.NewSession(), appCtx.Config.Breathing.CompletionOnStop)
			appCtx.Metrics.BreathingFinished(outcome.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&cycles, "cycles", 0, "Number of cycles, 1 to 10 (default from config)")
	return cmd
}

// runBreathing prints one line per phase until the session completes or ctx
// is cancelled, and returns how the session ended. A cancelled session ends
// with the completion card only when completionOnStop is set.
func runBreathing(ctx context.Context, out io.Writer, session *breathing.Session, completionOnStop bool) breathing.EventKind {
	events := make(chan breathing.Event, 16)
	session.Subscribe(func(e breathing.Event) {
		select {
		case events <- e:
		default:
		}
	})

	if err := session.Start(); err != nil {
		fmt.Fprintf(out, "could not start: %v\n", err)
		return breathing.EventStopped
	}

	for {
		select {
		case <-ctx.Done():
			_ = session.Stop()
			if completionOnStop {
				printCompletion(out)
			} else {
				fmt.Fprintln(out, "\nBreathing stopped.")
			}
			return breathing.EventStopped
		case e := <-events:
			switch e.Kind {
			case breathing.EventPhase:
				fmt.Fprintf(out, "%-12s %-11s (%s)\n", e.Phase.Instruction(), e.Label(), e.Duration)
			case breathing.EventCompleted:
				printCompletion(out)
				return breathing.EventCompleted
			}
		}
	}
}

func printCompletion(out io.Writer) {
	card := content.Completion()
	fmt.Fprintf(out, "\n%s %s\n%s\n", card.Icon, card.Title, card.Text)
}
