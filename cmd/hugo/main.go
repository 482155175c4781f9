// hugo is a rope-climbing lane runner for the terminal.
//
// Usage:
//
//	hugo play        - Play in this terminal
//	hugo serve       - Start SSH server for remote play
//	hugo sim         - Run a headless simulation with an autopilot
//	hugo patterns    - Show the obstacle pattern table
//	hugo config      - Print the effective config as YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hugo/internal/config"
	"github.com/vovakirdan/hugo/internal/games/hugo"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

// gameConfig is the validated config loaded by setup.
var gameConfig config.HugoConfig

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "hugo",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hugo",
	Short: "Hugo - climb the ropes, dodge the bats",
	Long: `Hugo is a terminal lane runner. Climb one of three ropes, hop between
them to dodge bat patterns and enemy fire, and collect coins and power-ups
while the world speeds up.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  sim       - Headless simulation with an autopilot
  patterns  - Show the obstacle pattern table
  config    - Print the effective config as YAML

Examples:
  hugo play
  hugo play --difficulty hard
  hugo serve --ssh :2222
  hugo sim --ticks 20000 --seed 42
  hugo config --config ./my-hugo.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies global flags and fails fast on a bad config, so an invalid
// pattern table is reported before any terminal or server is started.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("invalid --difficulty %q: want easy, normal, hard or fixed", flagDifficulty)
	}

	preset, _ := config.ParsePreset(flagDifficulty)
	cfg, err := hugo.LoadConfig(flagConfig, preset)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Loaded once; every game, including each SSH session, reuses it.
	if err := hugo.SetConfig(cfg); err != nil {
		return err
	}
	gameConfig = cfg
	return nil
}
