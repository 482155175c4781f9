package hugo

import "github.com/vovakirdan/hugo/internal/config"

// Phase is the top-level run phase.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// RunState is the per-run bookkeeping owned by the World.
type RunState struct {
	Phase             Phase
	Distance          float64
	ScrollSpeed       float64 // Speed applied on the next tick
	CoinPoints        int
	DoublePointsTicks int
	Tick              int
	BackgroundOffset  float64
}

// DoublePointsActive reports whether coin pickups are doubled.
func (s RunState) DoublePointsActive() bool {
	return s.DoublePointsTicks > 0
}

// Meters converts distance to whole meters.
func (s RunState) Meters(sc config.HugoScoring) int {
	if sc.UnitsPerMeter <= 0 {
		return 0
	}
	return int(s.Distance / sc.UnitsPerMeter)
}

// Score is coin points plus points for every meter climbed.
func (s RunState) Score(sc config.HugoScoring) int {
	return s.CoinPoints + s.Meters(sc)*sc.PointsPerMeter
}
