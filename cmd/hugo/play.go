package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hugo/internal/core"
	"github.com/vovakirdan/hugo/internal/platform/tui"
	"github.com/vovakirdan/hugo/internal/registry"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of Hugo in the current terminal.

Controls:
  W/S, Up/Down     - Climb up/down
  A/D, Left/Right  - Jump to the neighbouring rope
  Space/Enter      - Start a run
  P                - Pause
  Esc/B            - Back to the title
  R                - Restart (after game over)
  ?                - Toggle full help
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at base speed, one enemy at a time
  normal - Start at 30% of the speed range
  hard   - Start at 70% of the speed range, tighter bat gaps
  fixed  - No progression, stays at the config's initial level

Examples:
  hugo play
  hugo play --difficulty easy
  hugo play --seed 42 --config ./my-hugo.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a direction key stays held after a press")
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := registry.Create("hugo")
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Bubble Tea owns the terminal, so only write logs to a file when asked.
	opts := tui.Options{HoldTicks: flagHoldTicks}
	if path := os.Getenv("HUGO_LOG"); path != "" {
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer f.Close()
		fileLogger := logger.WithPrefix("hugo")
		fileLogger.SetOutput(f)
		opts.Logger = fileLogger
	}

	return tui.Run(game, cfg, opts)
}
