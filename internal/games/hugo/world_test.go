package hugo

import (
	"testing"

	"github.com/vovakirdan/hugo/internal/config"
	"github.com/vovakirdan/hugo/internal/core"
)

// batOnPlayer returns an obstacle centered on the player's sprite.
func batOnPlayer(w *World) Obstacle {
	cx, cy := w.player.Rect().Center()
	size := w.cfg.Obstacles.Size
	return Obstacle{
		Lane:  w.player.Lane,
		X:     cx - size/2,
		Y:     cy - size/2,
		Size:  size,
		scale: w.cfg.Obstacles.HitboxScale,
	}
}

func itemOnPlayer(w *World, kind CollectibleKind) Collectible {
	cx, cy := w.player.Rect().Center()
	size := w.cfg.Collectibles.CoinSize
	return Collectible{Kind: kind, Lane: w.player.Lane, X: cx - size/2, Y: cy - size/2, Size: size}
}

func TestHazardsEndTheRun(t *testing.T) {
	tests := []struct {
		name   string
		place  func(w *World)
		hazard Hazard
	}{
		{
			name:   "obstacle",
			place:  func(w *World) { w.obstacles = append(w.obstacles, batOnPlayer(w)) },
			hazard: HazardObstacle,
		},
		{
			name: "projectile",
			place: func(w *World) {
				cx, cy := w.player.Rect().Center()
				w.enemies.projectiles = append(w.enemies.projectiles,
					Projectile{X: cx, Y: cy, Dir: 1, Radius: w.cfg.Enemies.ProjectileRadius})
			},
			hazard: HazardProjectile,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(quietConfig(), &scriptedRNG{})
			tc.place(w)
			before := w.Run()

			out := w.Step(idle)

			if out.Hazard != tc.hazard {
				t.Errorf("Hazard = %s, expected %s", out.Hazard, tc.hazard)
			}
			if w.Run().Phase != PhaseGameOver {
				t.Errorf("Phase = %s, expected game-over", w.Run().Phase)
			}
			// The pipeline stops before the speed update.
			if w.Run().ScrollSpeed != before.ScrollSpeed {
				t.Error("speed updated after a fatal hit")
			}

			tick := w.Run().Tick
			w.Step(idle)
			if w.Run().Tick != tick {
				t.Error("Step advanced a finished run")
			}
		})
	}
}

func TestInvincibilitySuppressesHazards(t *testing.T) {
	w := newTestWorld(quietConfig(), &scriptedRNG{})
	w.player.ActivateInvincibility()
	w.obstacles = append(w.obstacles, batOnPlayer(w))
	cx, cy := w.player.Rect().Center()
	w.enemies.projectiles = append(w.enemies.projectiles,
		Projectile{X: cx, Y: cy, Dir: 1, Radius: w.cfg.Enemies.ProjectileRadius})

	for i := 0; i < 10; i++ {
		if out := w.Step(idle); out.Hazard != HazardNone {
			t.Fatalf("tick %d: hazard %s while invincible", i, out.Hazard)
		}
	}
	if w.Run().Phase != PhasePlaying {
		t.Errorf("Phase = %s, expected playing", w.Run().Phase)
	}
	if w.hazard() != HazardNone {
		t.Error("hazard() should report nothing while invincible")
	}
}

func TestDoublePointsExpire(t *testing.T) {
	w := newTestWorld(quietConfig(), &scriptedRNG{})
	w.run.DoublePointsTicks = 300

	for i := 0; i < 300; i++ {
		if !w.Run().DoublePointsActive() {
			t.Fatalf("double points expired after %d ticks", i)
		}
		w.Step(idle)
	}
	if w.Run().DoublePointsActive() {
		t.Fatal("double points still active after 300 ticks")
	}

	w.collectibles = append(w.collectibles, itemOnPlayer(w, Coin))
	out := w.Step(idle)
	if out.Points != w.cfg.Scoring.PointsPerCoin {
		t.Errorf("coin gave %d points, expected base %d", out.Points, w.cfg.Scoring.PointsPerCoin)
	}
}

func TestDoublePointsDoubleCoins(t *testing.T) {
	w := newTestWorld(quietConfig(), &scriptedRNG{})
	w.run.DoublePointsTicks = 10
	w.collectibles = append(w.collectibles, itemOnPlayer(w, Coin))

	out := w.Step(idle)
	if out.Points != 2*w.cfg.Scoring.PointsPerCoin {
		t.Errorf("coin gave %d points, expected %d", out.Points, 2*w.cfg.Scoring.PointsPerCoin)
	}
	if w.Run().CoinPoints != out.Points {
		t.Errorf("CoinPoints = %d, expected %d", w.Run().CoinPoints, out.Points)
	}
}

func TestPowerUpPickups(t *testing.T) {
	t.Run("invincibility", func(t *testing.T) {
		w := newTestWorld(quietConfig(), &scriptedRNG{})
		w.collectibles = append(w.collectibles, itemOnPlayer(w, PowerUpInvincibility))

		out := w.Step(idle)
		if len(out.Collected) != 1 || out.Collected[0] != PowerUpInvincibility {
			t.Fatalf("Collected = %v", out.Collected)
		}
		if !w.player.Invincible() {
			t.Error("pickup did not activate invincibility")
		}
		if len(w.Collectibles()) != 0 {
			t.Error("collected power-up was not removed")
		}
	})

	t.Run("double points", func(t *testing.T) {
		w := newTestWorld(quietConfig(), &scriptedRNG{})
		w.run.DoublePointsTicks = 5
		w.collectibles = append(w.collectibles, itemOnPlayer(w, PowerUpDoublePoints))

		w.Step(idle)
		// Reset to the full duration, then one tick of decay.
		if got, want := w.Run().DoublePointsTicks, w.cfg.Collectibles.DoublePointsTicks-1; got != want {
			t.Errorf("DoublePointsTicks = %d, expected %d", got, want)
		}
		if w.Run().CoinPoints != 0 {
			t.Error("power-up should not grant points")
		}
	})
}

func TestSpeedAppliesOnNextTick(t *testing.T) {
	w := newTestWorld(quietConfig(), &scriptedRNG{})
	w.player.ActivateInvincibility()
	w.run.Distance = 5999

	w.Step(idle)
	if got := w.Run().Distance; got != 6002 {
		t.Fatalf("Distance = %v, expected 6002 (old speed)", got)
	}
	if got := w.Run().ScrollSpeed; got != 3.25 {
		t.Fatalf("ScrollSpeed = %v, expected 3.25", got)
	}

	w.Step(idle)
	if got := w.Run().Distance; got != 6005.25 {
		t.Errorf("Distance = %v, expected 6005.25 (new speed)", got)
	}
}

func TestScrollSpeedNonDecreasing(t *testing.T) {
	cfg := config.DefaultHugoConfig()
	w := newTestWorld(cfg, core.NewRNG(8))

	prev := w.Run().ScrollSpeed
	for i := 0; i < 20000; i++ {
		w.player.invincible = 1000
		w.Step(idle)
		s := w.Run().ScrollSpeed
		if s < prev {
			t.Fatalf("tick %d: speed dropped %v -> %v", i, prev, s)
		}
		if s > cfg.Difficulty.MaxSpeed {
			t.Fatalf("tick %d: speed %v above max", i, s)
		}
		prev = s
	}
	if prev != cfg.Difficulty.MaxSpeed {
		t.Errorf("speed after a long run = %v, expected max %v", prev, cfg.Difficulty.MaxSpeed)
	}
}

func TestFirstPatternSpawnsAtMinGap(t *testing.T) {
	cfg := config.DefaultHugoConfig()
	cfg.Enemies.SpawnDistance = 1e12
	w := newTestWorld(cfg, core.NewRNG(21))
	w.player.ActivateInvincibility()

	for w.Run().Distance < float64(cfg.Obstacles.MinGap) {
		if len(w.Obstacles()) != 0 {
			t.Fatalf("obstacles before min gap at distance %v", w.Run().Distance)
		}
		out := w.Step(idle)
		if w.Run().Distance < float64(cfg.Obstacles.MinGap) && out.Pattern != "" {
			t.Fatalf("pattern %s spawned at %v", out.Pattern, w.Run().Distance)
		}
		if w.Run().Distance >= float64(cfg.Obstacles.MinGap) {
			if out.Pattern == "" {
				t.Fatal("no pattern when distance reached min gap")
			}
			if n := len(w.Obstacles()); n < 1 || n > 2 {
				t.Fatalf("obstacles = %d, expected 1 or 2", n)
			}
		}
	}
}

func TestCullRemovesPassedEntities(t *testing.T) {
	w := newTestWorld(quietConfig(), &scriptedRNG{})
	w.player.ActivateInvincibility()

	gone := batOnPlayer(w)
	gone.Y = w.cfg.World.Height - 1
	w.obstacles = append(w.obstacles, gone)

	coin := itemOnPlayer(w, Coin)
	coin.Y = w.cfg.World.Height
	w.collectibles = append(w.collectibles, coin)

	w.Step(idle)

	if len(w.Obstacles()) != 0 {
		t.Errorf("obstacles = %d, expected culled", len(w.Obstacles()))
	}
	if len(w.Collectibles()) != 0 {
		t.Errorf("collectibles = %d, expected culled", len(w.Collectibles()))
	}
}

func TestScoreCombinesCoinsAndMeters(t *testing.T) {
	w := newTestWorld(quietConfig(), &scriptedRNG{})
	w.run.Distance = 1234
	w.run.CoinPoints = 30

	if got := w.Meters(); got != 12 {
		t.Errorf("Meters() = %d, expected 12", got)
	}
	if got := w.Score(); got != 42 {
		t.Errorf("Score() = %d, expected 42", got)
	}
}

func TestStepOutsidePlayingIsNoop(t *testing.T) {
	w, err := NewWorld(config.DefaultHugoConfig(), core.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if w.Run().Phase != PhaseMenu {
		t.Fatalf("new world phase = %s, expected menu", w.Run().Phase)
	}

	w.Step(core.NewInputFrame(core.ActionUp))
	if w.Run().Tick != 0 || w.Run().Distance != 0 {
		t.Error("Step ran in the menu")
	}
}

func TestNewWorldRejectsInvalidPatterns(t *testing.T) {
	cfg := config.DefaultHugoConfig()
	cfg.Obstacles.Patterns = []config.PatternConfig{{Name: "wall", Occupied: []int{0, 1, 2}}}

	if _, err := NewWorld(cfg, core.NewRNG(1)); err == nil {
		t.Fatal("expected error for a pattern with no free lane")
	}
}

func TestWorldLevel(t *testing.T) {
	tests := []struct {
		distance float64
		want     float64
	}{
		{0, 0},
		{3000, 0},
		{3000 + 4*3000, 0.5},
		{1e9, 1},
	}
	for _, tt := range tests {
		w := newTestWorld(quietConfig(), &scriptedRNG{})
		w.run.Distance = tt.distance
		if got := w.Level(); got != tt.want {
			t.Errorf("Level() at %v = %v, expected %v", tt.distance, got, tt.want)
		}
	}
}
