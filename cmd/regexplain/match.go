package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/regexplain/internal/matcher"
)

func newMatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <pattern> <input>",
		Short: "Run a pattern against input locally",
		Long: `Run a pattern against input with a backtracking engine that supports
lookahead and backreferences. Pass - as input to read it from stdin.
Offsets are reported in characters.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[1]
			if input == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				input = string(data)
			}

			m := matcher.NewRegexp2Matcher(a.cfg.Match.Timeout, a.cfg.Match.MaxMatches)
			a.log.Section("Match")
			a.log.Log("Timeout: %s, max matches: %d", m.Timeout, m.MaxMatches)

			res, err := m.Match(cmd.Context(), args[0], a.cfg.Flags, input)
			if err != nil {
				return err
			}
			a.log.Log("Found %d matches", len(res.Matches))

			if a.jsonOutput {
				return a.writeJSON(cmd, res)
			}
			writeMatches(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().Duration("timeout", 0, "Evaluation timeout (default from config)")
	cmd.Flags().Int("max-matches", 0, "Maximum number of matches in global mode (default from config)")
	_ = a.v.BindPFlag("match.timeout", cmd.Flags().Lookup("timeout"))
	_ = a.v.BindPFlag("match.max_matches", cmd.Flags().Lookup("max-matches"))

	return cmd
}

func writeMatches(w io.Writer, res *matcher.Result) {
	if len(res.Matches) == 0 {
		fmt.Fprintln(w, "No match.")
		return
	}

	var b strings.Builder
	for i, m := range res.Matches {
		fmt.Fprintf(&b, "Match %d at %d (length %d): %q\n", i+1, m.Index, m.Length, m.Value)
		for _, g := range m.Groups {
			label := fmt.Sprintf("%d", g.Number)
			if g.Name != "" {
				label = g.Name
			}
			if !g.Matched {
				fmt.Fprintf(&b, "  group %s: (no match)\n", label)
				continue
			}
			fmt.Fprintf(&b, "  group %s at %d: %q\n", label, g.Index, g.Value)
		}
	}
	io.WriteString(w, b.String())
}
