// platformer is a small 3D platformer: run around, collect coins and stars,
// and bump question blocks from below.
//
// Usage:
//
//	platformer play          - Open a window and play
//	platformer sim           - Run the simulation headless and log the result
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.platformer, ./configs, then built-in)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--seed <value>      - Override the level seed
package main

import (
	"fmt"
	"os"

	"platformer/internal/config"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A small 3D platformer",
	Long: `Run around a seeded level, collect coins and stars, and hit
question blocks from below to release bonus coins.

Examples:
  platformer play
  platformer play --config ./level.yaml --seed 7
  platformer sim --frames 600 --hold forward,run --jump-every 45`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Level seed (defaults to the configured seed)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

func newLogger() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// setup loads the configuration and applies the global flags.
func setup() (config.Config, *log.Logger, error) {
	logger, err := newLogger()
	if err != nil {
		return config.Config{}, nil, err
	}

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return config.Config{}, nil, err
	}
	if rootCmd.PersistentFlags().Changed("seed") {
		cfg.World.Seed = flagSeed
	}
	logger.Debug("config loaded", "source", source, "seed", cfg.World.Seed)
	return cfg, logger, nil
}
