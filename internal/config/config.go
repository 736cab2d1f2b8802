// Package config loads regexplain settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "regexplain"

// ConfigDir is the directory, relative to the working directory, searched
// for the config file.
const ConfigDir = ".config"

// EnvPrefix prefixes environment overrides, e.g. REGEXPLAIN_FLAGS.
const EnvPrefix = "REGEXPLAIN"

// Config holds the resolved settings.
type Config struct {
	// Flags is the default regex flag string.
	Flags string `mapstructure:"flags"`
	// Color is auto, always or never.
	Color   string      `mapstructure:"color"`
	Verbose bool        `mapstructure:"verbose"`
	Analyze bool        `mapstructure:"analyze"`
	Match   MatchConfig `mapstructure:"match"`
	Gen     GenConfig   `mapstructure:"gen"`
}

// MatchConfig configures the local matcher.
type MatchConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxMatches int           `mapstructure:"max_matches"`
}

// GenConfig configures catalog code generation.
type GenConfig struct {
	Catalogs []string `mapstructure:"catalogs"`
	Output   string   `mapstructure:"output"`
	Package  string   `mapstructure:"package"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Color: "auto",
		Match: MatchConfig{
			Timeout:    2 * time.Second,
			MaxMatches: 1000,
		},
		Gen: GenConfig{
			Output: "explained.go",
		},
	}
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("flags", d.Flags)
	v.SetDefault("color", d.Color)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("analyze", d.Analyze)
	v.SetDefault("match.timeout", d.Match.Timeout)
	v.SetDefault("match.max_matches", d.Match.MaxMatches)
	v.SetDefault("gen.catalogs", d.Gen.Catalogs)
	v.SetDefault("gen.output", d.Gen.Output)
	v.SetDefault("gen.package", d.Gen.Package)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if any, into v and decodes the result.
// explicitPath wins over the search in rootDir/.config. A missing search
// result is not an error; a missing explicit file is.
func Load(v *viper.Viper, rootDir, explicitPath string) (*Config, error) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(filepath.Join(rootDir, ConfigDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the settings are usable.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	if c.Match.Timeout < 0 {
		return fmt.Errorf("match.timeout cannot be negative")
	}
	if c.Match.MaxMatches < 0 {
		return fmt.Errorf("match.max_matches cannot be negative")
	}
	return nil
}
