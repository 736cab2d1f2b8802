package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KromDaniel/regexplain/internal/matcher"
	"github.com/KromDaniel/regexplain/pkg/regexplain"
)

func newExplainCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <pattern>",
		Short: "Tokenize a pattern and describe every token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := a.flags()
			e := regexplain.New(
				regexplain.WithAnalysis(a.cfg.Analyze),
				regexplain.WithLogger(a.log.Zap()),
			)
			exp := e.Explain(args[0], flags)

			if a.jsonOutput {
				return a.writeJSON(cmd, exp)
			}
			return a.renderer(cmd).Explain(exp)
		},
	}

	cmd.Flags().Bool("analyze", false, "Include Go regexp/syntax analysis")
	_ = a.v.BindPFlag("analyze", cmd.Flags().Lookup("analyze"))

	return cmd
}

// flags returns the configured flag string, warning about letters the
// matcher would reject. Tokens and tips never depend on flag validity.
func (a *app) flags() string {
	flags := a.cfg.Flags
	if _, err := matcher.ParseFlags(flags); err != nil {
		a.log.Warn("unrecognized regex flags", zap.String("flags", flags), zap.Error(err))
	}
	return flags
}
