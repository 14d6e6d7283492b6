package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/umt-kit/strfmt"
	"github.com/umt-kit/strfmt/config"
	"github.com/umt-kit/strfmt/internal/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "strfmt",
	Short: "Render and check format-string templates",
	Long: `strfmt renders templates such as "Hello, {name}!" against positional
arguments or YAML/JSON data, applying formatters like {price:currency(en-US,USD)}
or {count:plural(item,items)}.

Placeholders that cannot be resolved are left in the output as written;
use "strfmt check" or "render --strict" to find them.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (presets and logging)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every degraded placeholder")
}

// setup loads configuration and returns an environment with the configured
// presets and logger installed.
func setup(cmd *cobra.Command) (*strfmt.Environment, *config.Config, error) {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg, cmd)
	if err != nil {
		return nil, nil, err
	}

	env := strfmt.NewEnvironment()
	env.SetLogger(logger)
	if err := config.Apply(cfg, env); err != nil {
		return nil, nil, fmt.Errorf("failed to install presets: %w", err)
	}
	return env, cfg, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.FromEnv()
	}
	return config.LoadConfigWithEnvOverrides(path)
}

func newLogger(cfg *config.Config, cmd *cobra.Command) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
}
