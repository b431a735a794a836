package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	verbose     bool
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "relax",
		Short:         "Relax brings a quote, a calming visual or a breathing exercise to your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while the dashboard runs")

	cmd.AddCommand(newQuoteCmd(flags))
	cmd.AddCommand(newBreatheCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newHealthCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
