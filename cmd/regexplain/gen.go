package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KromDaniel/regexplain/internal/catalog"
	"github.com/KromDaniel/regexplain/internal/codegen"
)

func newGenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go code embedding explanations for a pattern catalog",
		Long: `Load pattern catalogs (YAML or JSON, doublestar globs allowed) and write a
Go file with one pre-computed explanation per pattern.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := a.cfg.Gen
			if len(gen.Catalogs) == 0 {
				return fmt.Errorf("no catalogs given: use --catalog or set gen.catalogs in the config file")
			}

			a.log.Section("Catalog")
			cat, err := catalog.LoadGlob(a.rootDir, gen.Catalogs...)
			if err != nil {
				return fmt.Errorf("failed to load catalogs: %w", err)
			}
			if err := cat.Validate(); err != nil {
				return fmt.Errorf("invalid catalog: %w", err)
			}
			a.log.Log("Loaded %d patterns", len(cat.Patterns))

			pkg := gen.Package
			if pkg == "" {
				pkg = cat.Package
			}

			g := codegen.New(codegen.Options{
				Package:  pkg,
				Patterns: cat.Patterns,
				Logger:   a.log,
			})
			if err := g.Generate(); err != nil {
				return err
			}

			out := gen.Output
			if !filepath.IsAbs(out) {
				out = filepath.Join(a.rootDir, out)
			}
			if err := g.Save(out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d explanations in %s\n", len(cat.Patterns), out)
			return nil
		},
	}

	cmd.Flags().StringSlice("catalog", nil, "Catalog file or glob (repeatable)")
	cmd.Flags().StringP("out", "o", "", "Output file (default from config, explained.go)")
	cmd.Flags().String("package", "", "Go package name (default from config or catalog)")
	_ = a.v.BindPFlag("gen.catalogs", cmd.Flags().Lookup("catalog"))
	_ = a.v.BindPFlag("gen.output", cmd.Flags().Lookup("out"))
	_ = a.v.BindPFlag("gen.package", cmd.Flags().Lookup("package"))

	return cmd
}
