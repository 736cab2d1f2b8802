package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KromDaniel/regexplain/internal/config"
	"github.com/KromDaniel/regexplain/internal/logger"
	"github.com/KromDaniel/regexplain/internal/render"
)

// app carries state shared by every subcommand once the config is loaded.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	log     *logger.Logger
	rootDir string

	configPath string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), log: logger.Nop()}

	cmd := &cobra.Command{
		Use:   "regexplain",
		Short: "Explain regular expressions token by token",
		Long: `regexplain breaks a regular expression into classified tokens, describes
each one in plain language and suggests tips for common pitfalls.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	flags := cmd.PersistentFlags()
	flags.StringP("flags", "f", "", "Regex flags (g, i, m, s, u, y, d)")
	flags.String("color", string(render.ColorAuto), "Color output: auto, always, never")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&a.configPath, "config", "", "Config file (default .config/regexplain.{yaml,yml,json})")
	flags.BoolVar(&a.jsonOutput, "json", false, "Write JSON instead of text")

	for _, key := range []string{"flags", "color", "verbose"} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	cmd.AddCommand(
		newExplainCmd(a),
		newTipsCmd(a),
		newMatchCmd(a),
		newGenCmd(a),
		newVersionCmd(a),
	)

	return cmd
}

// load resolves configuration and the logger before any subcommand runs.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if a.rootDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		a.rootDir = wd
	}

	cfg, err := config.Load(a.v, a.rootDir, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logger.New(cfg.Verbose)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.Section("Configuration")
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Log("Config file: %s", used)
	}
	a.log.Log("Flags: %q, color: %s", cfg.Flags, cfg.Color)

	return nil
}

func (a *app) renderer(cmd *cobra.Command) *render.Renderer {
	mode, err := render.ParseColorMode(a.cfg.Color)
	if err != nil {
		mode = render.ColorAuto
	}
	return render.New(cmd.OutOrStdout(), mode)
}

func (a *app) writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error marshaling output: %w", err)
	}
	return nil
}
