package hugo

import (
	"github.com/vovakirdan/hugo/internal/config"
	"github.com/vovakirdan/hugo/internal/core"
)

// CollectibleKind distinguishes coins from the power-ups.
type CollectibleKind int

const (
	Coin CollectibleKind = iota
	PowerUpInvincibility
	PowerUpDoublePoints
)

func (k CollectibleKind) String() string {
	switch k {
	case Coin:
		return "coin"
	case PowerUpInvincibility:
		return "invincibility"
	case PowerUpDoublePoints:
		return "double-points"
	default:
		return "unknown"
	}
}

// Collectible is a coin or power-up centered on a lane.
type Collectible struct {
	Kind      CollectibleKind
	Lane      int
	X, Y      float64 // Top-left corner
	Size      float64
	Collected bool

	anim int
}

// Rect returns the pickup bounds.
func (c Collectible) Rect() core.Box {
	return core.NewBox(c.X, c.Y, c.Size, c.Size)
}

// Frame returns the animation frame.
func (c Collectible) Frame() int {
	if c.Kind == Coin {
		return frames.Frame(KindCoin, c.anim)
	}
	return frames.Frame(KindPowerUp, c.anim)
}

// CollectibleSpawner drops coins and power-ups on random lanes at fixed
// distance intervals. It has no fairness constraints.
type CollectibleSpawner struct {
	cfg         config.HugoCollectibles
	lanes       *Lanes
	rng         core.RNG
	lastCoin    float64
	lastPowerUp float64
}

// NewCollectibleSpawner creates a spawner.
func NewCollectibleSpawner(cfg config.HugoCollectibles, lanes *Lanes, rng core.RNG) *CollectibleSpawner {
	return &CollectibleSpawner{cfg: cfg, lanes: lanes, rng: rng}
}

// Reset rewinds both spawn timers.
func (s *CollectibleSpawner) Reset() {
	s.lastCoin = 0
	s.lastPowerUp = 0
}

// TrySpawn returns the collectibles due at distance. A coin is skipped
// while coinsOnScreen is at the limit, but its interval restarts anyway;
// likewise a failed power-up roll waits for the next interval.
func (s *CollectibleSpawner) TrySpawn(distance float64, coinsOnScreen int) []Collectible {
	var out []Collectible

	if distance-s.lastCoin > s.cfg.CoinSpawnDistance {
		if coinsOnScreen < s.cfg.MaxCoins {
			out = append(out, s.place(Coin, s.cfg.CoinSize))
		}
		s.lastCoin = distance
	}

	if distance-s.lastPowerUp > s.cfg.PowerUpSpawnDistance {
		if s.rng.Float64() < s.cfg.PowerUpChance {
			kind := PowerUpInvincibility
			if s.rng.Intn(2) == 1 {
				kind = PowerUpDoublePoints
			}
			out = append(out, s.place(kind, s.cfg.PowerUpSize))
		}
		s.lastPowerUp = distance
	}

	return out
}

func (s *CollectibleSpawner) place(kind CollectibleKind, size float64) Collectible {
	lane := s.rng.Intn(s.lanes.Count())
	return Collectible{
		Kind: kind,
		Lane: lane,
		X:    s.lanes.Center(lane) - size/2,
		Y:    -size,
		Size: size,
	}
}
