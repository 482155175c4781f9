package hugo

import (
	"math"

	"github.com/vovakirdan/hugo/internal/config"
	"github.com/vovakirdan/hugo/internal/core"
)

// MoveState is the lane-change state of the player.
type MoveState int

const (
	Idle MoveState = iota
	Transitioning
)

func (s MoveState) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// Player is the climber. X is the horizontal center, Y the top edge.
type Player struct {
	Lane  int
	X, Y  float64
	State MoveState

	fromX        float64
	targetX      float64
	progress     int // Ticks spent in the current transition
	moveCooldown int
	jumpDir      int // -1 left, +1 right, 0 not jumping
	jumpProgress int
	invincible   int // Remaining invincibility ticks
	anim         int

	cfg   config.HugoPlayer
	lanes *Lanes
}

// NewPlayer places a player on the starting lane.
func NewPlayer(cfg config.HugoPlayer, lanes *Lanes) *Player {
	p := &Player{cfg: cfg, lanes: lanes}
	p.Reset()
	return p
}

// Reset returns the player to the starting lane and height.
func (p *Player) Reset() {
	lane := p.cfg.StartLane
	if !p.lanes.Valid(lane) {
		lane = p.lanes.Count() / 2
	}
	*p = Player{
		Lane:  lane,
		X:     p.lanes.Center(lane),
		Y:     p.cfg.StartY,
		State: Idle,
		cfg:   p.cfg,
		lanes: p.lanes,
	}
	p.targetX = p.X
	p.fromX = p.X
}

// HandleInput applies one tick of held input: vertical climb, lane change
// requests, and progress of a running transition. Left wins over right
// when both are held. Requests past the outer lanes are ignored.
func (p *Player) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		p.Y -= p.cfg.ClimbSpeed
	}
	if in.Has(core.ActionDown) {
		p.Y += p.cfg.ClimbSpeed
	}
	p.Y = core.ClampF(p.Y, p.cfg.MinY, p.cfg.MaxY)

	if p.moveCooldown > 0 {
		p.moveCooldown--
	}

	if p.State == Idle && p.moveCooldown == 0 {
		switch {
		case in.Has(core.ActionLeft):
			p.startTransition(-1)
		case in.Has(core.ActionRight):
			p.startTransition(1)
		}
	}

	if p.State == Transitioning {
		p.progress++
		dist := p.targetX - p.X
		if math.Abs(dist) <= p.cfg.SnapEpsilon || p.progress > p.cfg.TransitionTicks {
			p.X = p.targetX
			p.State = Idle
			p.progress = 0
		} else {
			p.X += math.Copysign(math.Min(p.cfg.LaneStep, math.Abs(dist)), dist)
		}
	}

	if p.jumpDir != 0 {
		p.jumpProgress++
		if p.jumpProgress > p.cfg.JumpTicks {
			p.jumpDir = 0
			p.jumpProgress = 0
		}
	}
}

// startTransition begins a move of dir lanes if the target lane exists.
func (p *Player) startTransition(dir int) {
	target := p.Lane + dir
	if !p.lanes.Valid(target) {
		return
	}
	p.Lane = target
	p.State = Transitioning
	p.fromX = p.X
	p.targetX = p.lanes.Center(target)
	p.progress = 0
	p.moveCooldown = p.cfg.MoveCooldown
	p.jumpDir = dir
	p.jumpProgress = 0
}

// Update advances the animation counter and the invincibility timer.
func (p *Player) Update() {
	p.anim = (p.anim + 1) % 1000
	if p.invincible > 0 {
		p.invincible--
	}
}

// ActivateInvincibility starts (or restarts) the invincibility timer.
func (p *Player) ActivateInvincibility() {
	p.invincible = p.cfg.InvincibleTicks
}

// Invincible reports whether hazards are currently ignored.
func (p *Player) Invincible() bool {
	return p.invincible > 0
}

// InvincibleTicks returns the remaining invincibility.
func (p *Player) InvincibleTicks() int {
	return p.invincible
}

// Jumping returns the jump direction, or 0 when not jumping.
func (p *Player) Jumping() int {
	return p.jumpDir
}

// Frame returns the sprite kind and frame for the current state.
func (p *Player) Frame() (Kind, int) {
	if p.jumpDir != 0 {
		return KindPlayerJump, frames.JumpFrame(p.jumpProgress, p.cfg.JumpTicks)
	}
	return KindPlayerClimb, frames.Frame(KindPlayerClimb, p.anim)
}

// Rect returns the sprite bounds.
func (p *Player) Rect() core.Box {
	return core.NewBox(p.X-p.cfg.Width/2, p.Y, p.cfg.Width, p.cfg.Height)
}

// Hitbox returns the collision box, a centered inset of Rect.
func (p *Player) Hitbox() core.Box {
	return p.Rect().Inset(p.cfg.HitboxScale)
}

