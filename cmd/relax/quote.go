package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/relax/internal/content"
)

func newQuoteCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a motivational quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer appCtx.Close()

			quote, err := appCtx.Client.FetchQuote(cmd.Context())
			if err != nil {
				appCtx.Logger.Error(err, "quote fetch failed")
				return fmt.Errorf("could not load quote: %w", err)
			}
			state := content.RenderQuote(quote, nil)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%q\n  - %s\n", state.Text, state.Author)
			if quote.Source != "" && flags.verbose {
				fmt.Fprintf(out, "  (via %s)\n", quote.Source)
			}
			return nil
		},
	}

	return cmd
}
