package hugo

import (
	"math"

	"github.com/vovakirdan/hugo/internal/core"
)

// Autopilot is a simple bot for headless runs: it climbs slowly and hops
// away from bats and projectiles that threaten its lane, preferring a
// lane with a coin.
type Autopilot struct {
	Lookahead float64 // World units above the player that are scanned
}

// Input returns the frame the bot would press for the current world.
func (a Autopilot) Input(w *World) core.InputFrame {
	f := core.NewInputFrame()
	p := w.Player()
	if p.State != Idle {
		return f
	}

	danger := a.dangerLanes(w)
	cur := p.Lane
	if !danger[cur] {
		return f
	}

	best := -1
	bestScore := math.MaxInt
	for lane := range danger {
		if danger[lane] {
			continue
		}
		score := abs(lane-cur) * 10
		if a.coinInLane(w, lane) {
			score -= 5
		}
		if score < bestScore {
			best, bestScore = lane, score
		}
	}

	switch {
	case best < 0:
		// Boxed in; climb down and hope.
		f.Set(core.ActionDown)
	case best < cur:
		f.Set(core.ActionLeft)
	case best > cur:
		f.Set(core.ActionRight)
	}
	return f
}

func (a Autopilot) dangerLanes(w *World) []bool {
	lanes := w.Lanes()
	danger := make([]bool, lanes.Count())
	r := w.Player().Rect()
	top := r.Y - a.Lookahead

	for _, o := range w.Obstacles() {
		h := o.Hitbox()
		if h.Bottom() > top && h.Y < r.Bottom() {
			danger[o.Lane] = true
		}
	}
	for _, pr := range w.Enemies().Projectiles() {
		if pr.Y+pr.Radius <= r.Y || pr.Y-pr.Radius >= r.Bottom() {
			continue
		}
		// A projectile threatens every lane ahead of it.
		half := lanes.Spacing() / 2
		for lane := range danger {
			c := lanes.Center(lane)
			if (pr.Dir > 0 && c+half >= pr.X) || (pr.Dir < 0 && c-half <= pr.X) {
				danger[lane] = true
			}
		}
	}
	return danger
}

func (a Autopilot) coinInLane(w *World, lane int) bool {
	for _, c := range w.Collectibles() {
		if c.Kind == Coin && c.Lane == lane {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
