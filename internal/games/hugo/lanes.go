package hugo

import (
	"math"

	"github.com/vovakirdan/hugo/internal/config"
)

// Lanes are the vertical ropes the player climbs. Positions are fixed;
// only the cosmetic texture offset moves with the scroll.
type Lanes struct {
	count   int
	width   float64
	spacing float64
	texture float64
	offset  float64
}

// NewLanes spaces the lanes evenly across the world width.
func NewLanes(w config.HugoWorld) *Lanes {
	return &Lanes{
		count:   w.NumLanes,
		width:   w.LaneWidth,
		spacing: w.Width / float64(w.NumLanes+1),
		texture: w.LaneTextureHeight,
	}
}

// Count returns the number of lanes.
func (l *Lanes) Count() int {
	return l.count
}

// Valid reports whether i is a lane index.
func (l *Lanes) Valid(i int) bool {
	return i >= 0 && i < l.count
}

// Center returns the x-coordinate of the middle of lane i.
func (l *Lanes) Center(i int) float64 {
	return l.spacing * float64(i+1)
}

// X returns the left edge of lane i.
func (l *Lanes) X(i int) float64 {
	return l.Center(i) - l.width/2
}

// Width returns the rope width.
func (l *Lanes) Width() float64 {
	return l.width
}

// Spacing returns the distance between neighbouring lane centers.
func (l *Lanes) Spacing() float64 {
	return l.spacing
}

// Advance scrolls the rope texture.
func (l *Lanes) Advance(speed float64) {
	l.offset = wrap(l.offset+speed, l.texture)
}

// Offset returns the texture offset in [0, texture height).
func (l *Lanes) Offset() float64 {
	return l.offset
}

// Reset clears the texture offset.
func (l *Lanes) Reset() {
	l.offset = 0
}

func wrap(v, period float64) float64 {
	if period <= 0 {
		return 0
	}
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}
