package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/relax/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the saved color theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeShow(cmd, flags)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the color theme relax will use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeShow(cmd, flags)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark and save the choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer appCtx.Close()

			mode, err := appCtx.Theme.Toggle()
			if err != nil {
				return fmt.Errorf("theme switched to %s but was not saved: %w", mode, err)
			}
			printTheme(cmd, appCtx.Theme.Attributes())
			return nil
		},
	})

	return cmd
}

func runThemeShow(cmd *cobra.Command, flags *rootFlags) error {
	appCtx, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer appCtx.Close()

	appCtx.Theme.LoadPreference()
	appCtx.Theme.DetectThirdPartyOverride()
	printTheme(cmd, appCtx.Theme.Attributes())
	return nil
}

func printTheme(cmd *cobra.Command, attrs theme.Attributes) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", attrs.Icon, attrs.DataTheme)
	if attrs.Override {
		fmt.Fprintln(out, "NO_COLOR is set: output is rendered without color")
	}
}
