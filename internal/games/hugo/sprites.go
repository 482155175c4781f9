package hugo

// Kind identifies an animated entity type.
type Kind int

const (
	KindPlayerClimb Kind = iota
	KindPlayerJump
	KindBat
	KindEnemy
	KindCoin
	KindPowerUp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayerClimb:
		return "player-climb"
	case KindPlayerJump:
		return "player-jump"
	case KindBat:
		return "bat"
	case KindEnemy:
		return "enemy"
	case KindCoin:
		return "coin"
	case KindPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Animation describes how a counter maps to frames: one frame every
// TicksPerFrame ticks, looping over Frames.
type Animation struct {
	TicksPerFrame int
	Frames        int
}

// FrameProvider maps a kind and an animation counter to a frame index.
type FrameProvider struct {
	anims map[Kind]Animation
}

// batPhaseSpread is the range of random start offsets for bat wings,
// so neighbouring bats do not flap in sync.
const batPhaseSpread = 31

// frames is the animation table shared by all entities.
var frames = NewFrameProvider(map[Kind]Animation{
	KindPlayerClimb: {TicksPerFrame: 8, Frames: 7},
	KindPlayerJump:  {TicksPerFrame: 1, Frames: 4},
	KindBat:         {TicksPerFrame: 10, Frames: 3},
	KindEnemy:       {TicksPerFrame: 30, Frames: 2},
	KindCoin:        {TicksPerFrame: 6, Frames: 4},
	KindPowerUp:     {TicksPerFrame: 15, Frames: 2},
})

// NewFrameProvider creates a provider for the given animations.
func NewFrameProvider(anims map[Kind]Animation) *FrameProvider {
	return &FrameProvider{anims: anims}
}

// Frame returns the frame index for counter. Unknown kinds use frame 0.
func (f *FrameProvider) Frame(k Kind, counter int) int {
	a, ok := f.anims[k]
	if !ok || a.Frames <= 0 {
		return 0
	}
	if counter < 0 {
		counter = 0
	}
	return (counter / max(a.TicksPerFrame, 1)) % a.Frames
}

// JumpFrame maps jump progress in [0, length] to one of the jump frames,
// holding the last frame at the end.
func (f *FrameProvider) JumpFrame(progress, length int) int {
	n := f.anims[KindPlayerJump].Frames
	if n <= 0 || length <= 0 {
		return 0
	}
	frame := progress * n / length
	return min(max(frame, 0), n-1)
}
