// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the refkit CLI. refkit resolves free
// text references, DOIs, ISBNs and arXiv identifiers to bibliographic
// records and renders them as citations.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/refkit/internal/observability"
	"github.com/pdiddy/refkit/internal/ranking"
	"github.com/pdiddy/refkit/internal/secrets"
	"github.com/pdiddy/refkit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg holds the merged configuration, populated before every command runs.
	cfg types.Config

	// logger is built from cfg.Logging.
	logger = zerolog.Nop()
)

// flagKeys maps command flags to the configuration keys they override.
// A flag is bound only when the running command defines it.
var flagKeys = map[string]string{
	"auto-min":           "resolve.auto_min",
	"auto-max":           "resolve.auto_max",
	"interactive":        "resolve.interactive",
	"max-names":          "render.max_names",
	"abbreviate-journal": "render.abbreviate_journal",
	"abbreviate-names":   "render.abbreviate_names",
	"family-first":       "render.family_name_first",
	"force-title":        "render.force_title",
	"first-page-only":    "render.first_page_only",
	"journals":           "render.journals_file",
	"library":            "library.path",
	"mailto":             "providers.mailto",
	"log-level":          "logging.level",
}

// rootCmd is the base command for the refkit CLI.
var rootCmd = &cobra.Command{
	Use:   "refkit",
	Short: "Resolve references to bibliographic metadata and format citations",
	Long: `refkit turns free-text references, DOIs, ISBNs and arXiv identifiers into
bibliographic records using the arXiv and CrossRef APIs, and renders them as
one-line citations, record YAML, or CSL-YAML for Pandoc and reference managers.

Resolved references can be kept in a local SQLite library so repeated lookups
skip the network.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./refkit.yaml or ~/.config/refkit/refkit.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: trace, debug, info, warn, error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("refkit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "refkit"))
		}
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("REFKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every configuration key with its default value.
func setDefaults(v *viper.Viper) {
	v.SetDefault("resolve.auto_min", ranking.DefaultAutoMin)
	v.SetDefault("resolve.auto_max", ranking.DefaultAutoMax)
	v.SetDefault("resolve.interactive", true)

	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.user_agent", "refkit/"+version)
	v.SetDefault("http.rate_per_second", 1.0)
	v.SetDefault("http.burst", 1)

	v.SetDefault("providers.arxiv_base", "")
	v.SetDefault("providers.crossref_base", "")
	v.SetDefault("providers.crossref_rows", 10)
	v.SetDefault("providers.mailto", "")

	v.SetDefault("render.max_names", 0)
	v.SetDefault("render.abbreviate_journal", true)
	v.SetDefault("render.abbreviate_names", false)
	v.SetDefault("render.family_name_first", false)
	v.SetDefault("render.force_title", false)
	v.SetDefault("render.first_page_only", false)
	v.SetDefault("render.journals_file", "")

	v.SetDefault("library.path", "refkit.db")
	v.SetDefault("library.max_results", 20)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
}

// setup binds the running command's flags, decodes the configuration,
// builds the logger and loads secrets.
func setup(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}

	if err := secrets.LoadEnv(".env"); err != nil {
		return err
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding configuration: %w", err)
	}
	logger = observability.NewLogger(cfg.Logging)

	s, err := secrets.Load(".secrets/", logger)
	if err != nil {
		return err
	}
	if len(s) > 0 {
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		logger.Info().Strs("keys", keys).Msg("loaded secrets")
	}
	if cfg.Providers.Mailto == "" {
		cfg.Providers.Mailto = secrets.Mailto(s)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
