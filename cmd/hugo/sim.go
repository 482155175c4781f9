package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hugo/internal/core"
	"github.com/vovakirdan/hugo/internal/games/hugo"
)

var (
	flagSimTicks     int
	flagSimRuns      int
	flagSimLookahead float64
	flagSimIdle      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless simulations with an autopilot",
	Long: `Run the game without a terminal. An autopilot hops away from bats and
projectiles in its lane; with --idle the climber never moves.

Each run uses seed+i, so a fixed --seed reproduces every run exactly.
Use --log-level debug to see every spawn, pickup and hit.

Examples:
  hugo sim
  hugo sim --runs 10 --ticks 36000 --seed 7
  hugo sim --idle --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*5, "Maximum ticks per run")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().Float64Var(&flagSimLookahead, "lookahead", 300, "World units the autopilot scans above the climber")
	simCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Disable the autopilot")
}

// simResult summarizes one headless run.
type simResult struct {
	seed   int64
	ticks  int
	score  int
	meters int
	coins  int
	hazard hugo.Hazard
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg := gameConfig
	if flagSimRuns <= 0 || flagSimTicks <= 0 {
		return fmt.Errorf("--runs and --ticks must be positive")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pilot := hugo.Autopilot{Lookahead: flagSimLookahead}
	var total simResult
	for i := 0; i < flagSimRuns; i++ {
		w, err := hugo.NewWorld(cfg, core.NewRNG(seed+int64(i)))
		if err != nil {
			return err
		}
		w.Start()

		res := simResult{seed: seed + int64(i)}
		for res.ticks < flagSimTicks {
			in := core.NewInputFrame()
			if !flagSimIdle {
				in = pilot.Input(w)
			}
			out := w.Step(in)
			res.ticks++
			logOutcome(res.ticks, w, out)
			for _, k := range out.Collected {
				if k == hugo.Coin {
					res.coins++
				}
			}
			if out.Hazard != hugo.HazardNone {
				res.hazard = out.Hazard
				break
			}
		}
		res.score = w.Score()
		res.meters = w.Meters()

		logger.Info("run finished",
			"run", i+1,
			"seed", res.seed,
			"ticks", res.ticks,
			"score", res.score,
			"meters", res.meters,
			"coins", res.coins,
			"hazard", res.hazard,
			"speed", fmt.Sprintf("%.2f", w.Run().ScrollSpeed),
			"level", fmt.Sprintf("%.2f", w.Level()),
		)

		total.ticks += res.ticks
		total.score += res.score
		total.meters += res.meters
		total.coins += res.coins
	}

	if flagSimRuns > 1 {
		n := flagSimRuns
		fmt.Printf("runs=%d avg_score=%d avg_meters=%d avg_ticks=%d avg_coins=%.1f\n",
			n, total.score/n, total.meters/n, total.ticks/n, float64(total.coins)/float64(n))
	}
	return nil
}

func logOutcome(tick int, w *hugo.World, out hugo.Outcome) {
	if out.Pattern != "" {
		logger.Debug("pattern", "tick", tick, "name", out.Pattern, "next_gap", w.Patterns().NextGap())
	}
	if out.EnemySpawned {
		logger.Debug("enemy", "tick", tick, "on_screen", len(w.Enemies().Enemies()))
	}
	for _, k := range out.Collected {
		logger.Debug("pickup", "tick", tick, "kind", k, "points", out.Points)
	}
	if out.Hazard != hugo.HazardNone {
		logger.Debug("hit", "tick", tick, "hazard", out.Hazard, "lane", w.Player().Lane)
	}
}
