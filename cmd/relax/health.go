package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the Relax server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer appCtx.Close()

			health, err := appCtx.Client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("server %s is unreachable: %w", appCtx.Config.BaseURL, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\nversion: %s\ntimestamp: %s\n", health.Status, health.Version, health.Timestamp)
			return nil
		},
	}

	return cmd
}
