package hugo

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/hugo/internal/config"
	"github.com/vovakirdan/hugo/internal/core"
)

// Pattern is a named split of the lanes into blocked and open ones.
// Every pattern leaves at least one lane open.
type Pattern struct {
	Name     string
	Occupied []int
	Free     []int
}

// SingleLane reports whether the pattern blocks exactly one lane.
func (p Pattern) SingleLane() bool {
	return len(p.Occupied) == 1
}

// Blocks reports whether the pattern occupies lane.
func (p Pattern) Blocks(lane int) bool {
	return slices.Contains(p.Occupied, lane)
}

// NewPatternTable validates the configured patterns and copies them.
func NewPatternTable(cfgs []config.PatternConfig, numLanes int) ([]Pattern, error) {
	if err := config.ValidatePatterns(cfgs, numLanes); err != nil {
		return nil, fmt.Errorf("pattern table: %w", err)
	}

	table := make([]Pattern, len(cfgs))
	for i, c := range cfgs {
		table[i] = Pattern{
			Name:     c.Name,
			Occupied: slices.Clone(c.Occupied),
			Free:     slices.Clone(c.Free),
		}
	}
	return table, nil
}

// Obstacle is a bat hanging on a lane.
type Obstacle struct {
	Lane    int
	X, Y    float64 // Top-left corner
	Size    float64
	Variant int

	scale float64
	anim  int
}

// Rect returns the sprite bounds.
func (o Obstacle) Rect() core.Box {
	return core.NewBox(o.X, o.Y, o.Size, o.Size)
}

// Hitbox returns the collision box.
func (o Obstacle) Hitbox() core.Box {
	return o.Rect().Inset(o.scale)
}

// Frame returns the wing animation frame.
func (o Obstacle) Frame() int {
	return frames.Frame(KindBat, o.anim)
}

// PatternSpawner drops obstacle patterns at randomized distance gaps.
type PatternSpawner struct {
	table   []Pattern
	lanes   *Lanes
	cfg     config.HugoObstacles
	rng     core.RNG
	last    float64 // Distance of the last spawn
	gap     float64 // Distance until the next spawn
	history []Pattern
}

// NewPatternSpawner creates a spawner over a validated pattern table.
func NewPatternSpawner(table []Pattern, lanes *Lanes, cfg config.HugoObstacles, rng core.RNG) *PatternSpawner {
	s := &PatternSpawner{
		table: table,
		lanes: lanes,
		cfg:   cfg,
		rng:   rng,
	}
	s.Reset()
	return s
}

// Reset forgets the spawn history. The first pattern appears at MinGap.
func (s *PatternSpawner) Reset() {
	s.last = 0
	s.gap = float64(s.cfg.MinGap)
	s.history = s.history[:0]
}

// NextGap returns the distance that must pass after the last spawn.
func (s *PatternSpawner) NextGap() float64 {
	return s.gap
}

// History returns the most recent patterns, oldest first.
func (s *PatternSpawner) History() []Pattern {
	return s.history
}

// TrySpawn emits one pattern's obstacles if enough distance has passed,
// otherwise nil.
func (s *PatternSpawner) TrySpawn(distance float64) []Obstacle {
	if distance-s.last < s.gap {
		return nil
	}

	candidates := s.candidates()
	p := candidates[s.rng.Intn(len(candidates))]
	s.remember(p)
	s.last = distance
	s.gap = float64(core.RangeInt(s.rng, s.cfg.MinGap, s.cfg.MaxGap))

	baseY := -s.cfg.Size - s.cfg.SpawnOffset
	spawned := make([]Obstacle, 0, len(p.Occupied))
	for _, lane := range p.Occupied {
		jitter := core.RangeInt(s.rng, -s.cfg.VerticalVariation, s.cfg.VerticalVariation)
		spawned = append(spawned, Obstacle{
			Lane:    lane,
			X:       s.lanes.Center(lane) - s.cfg.Size/2,
			Y:       baseY + float64(jitter),
			Size:    s.cfg.Size,
			Variant: s.rng.Intn(max(s.cfg.Variants, 1)),
			scale:   s.cfg.HitboxScale,
			anim:    s.rng.Intn(batPhaseSpread),
		})
	}
	return spawned
}

// candidates filters the table against recent history:
// after a single-lane pattern, nothing may block that lane again, and a
// name seen twice in a row is not picked a third time.
func (s *PatternSpawner) candidates() []Pattern {
	n := len(s.history)
	if n == 0 {
		return s.table
	}
	prev := s.history[n-1]
	twice := n >= 2 && s.history[n-2].Name == prev.Name

	out := make([]Pattern, 0, len(s.table))
	for _, p := range s.table {
		if prev.SingleLane() && p.Blocks(prev.Occupied[0]) {
			continue
		}
		if twice && p.Name == prev.Name {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return s.table
	}
	return out
}

func (s *PatternSpawner) remember(p Pattern) {
	s.history = append(s.history, p)
	if size := max(s.cfg.HistorySize, 2); len(s.history) > size {
		s.history = slices.Delete(s.history, 0, len(s.history)-size)
	}
}
