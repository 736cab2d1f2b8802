package main

import (
	"github.com/spf13/cobra"

	"github.com/KromDaniel/regexplain/pkg/regexplain"
)

func newTipsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tips <pattern>",
		Short: "Print usage tips for a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tips := regexplain.Tips(args[0], a.flags())
			if a.jsonOutput {
				return a.writeJSON(cmd, tips)
			}
			return a.renderer(cmd).Tips(tips)
		},
	}
}
