package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hugo/internal/core"
)

// DefaultHoldTicks is how long a key counts as held after its last press.
// Terminals report presses and auto-repeat, never releases; the window must
// outlast the gap before auto-repeat kicks in.
const DefaultHoldTicks = 6

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Start   key.Binding
	Pause   key.Binding
	Back    key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Start, k.Pause, k.Restart, k.Back},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "climb"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "descend"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "rope left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "rope right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Start):
		return core.ActionStart, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// heldActions are reported as held for a window after each press.
var heldActions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// HeldInput turns key presses into per-tick input frames. Directional
// actions stay held for holdTicks ticks after the last press; the other
// actions fire once on the next frame.
type HeldInput struct {
	holdTicks int
	lastPress map[core.Action]int
	pending   core.InputFrame
}

// NewHeldInput creates a tracker. Non-positive holdTicks uses DefaultHoldTicks.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldInput{
		holdTicks: holdTicks,
		lastPress: make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
}

// Press records an action pressed during tick.
func (h *HeldInput) Press(a core.Action, tick int) {
	if isHeld(a) {
		// Opposite directions cancel so a reversal takes effect at once.
		if opp, ok := opposite(a); ok {
			delete(h.lastPress, opp)
		}
		h.lastPress[a] = tick
		return
	}
	h.pending.Set(a)
}

// Frame returns the input for tick and consumes one-shot actions.
func (h *HeldInput) Frame(tick int) core.InputFrame {
	f := h.pending.Clone()
	h.pending.Clear()
	for _, a := range heldActions {
		if last, ok := h.lastPress[a]; ok {
			if tick-last < h.holdTicks {
				f.Set(a)
			} else {
				delete(h.lastPress, a)
			}
		}
	}
	return f
}

// Reset forgets all presses.
func (h *HeldInput) Reset() {
	clear(h.lastPress)
	h.pending.Clear()
}

func isHeld(a core.Action) bool {
	return slices.Contains(heldActions, a)
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	}
	return core.ActionNone, false
}
