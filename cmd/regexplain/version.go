package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/regexplain/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.jsonOutput {
				return a.writeJSON(cmd, version.Info())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "regexplain %s\n", version.Get())
			return nil
		},
	}
}
