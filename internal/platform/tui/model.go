package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hugo/internal/core"
	"github.com/vovakirdan/hugo/internal/registry"
)

// Reporter is implemented by games that can describe their last tick as
// key/value pairs for debug logging. Nil means nothing worth logging.
type Reporter interface {
	Report() []any
}

// Options tune a Model.
type Options struct {
	HoldTicks int         // See HeldInput; 0 uses DefaultHoldTicks
	Logger    *log.Logger // Optional; nil disables logging
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	input     *HeldInput
	logger    *log.Logger
	tick      int
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  NewHeldInput(opts.HoldTicks),
		logger: opts.Logger,
	}
}

// playHeight leaves the last terminal row for the help footer.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logRunEnd("quit")
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Press(action, m.tick)
	}
	return m, nil
}

// handleResize processes window resize events.
// World coordinates do not depend on the terminal size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	prev := m.gameState

	result := m.game.Step(m.input.Frame(m.tick))
	m.gameState = result.State

	if m.logger != nil {
		if r, ok := m.game.(Reporter); ok {
			if kv := r.Report(); kv != nil {
				m.logger.Debug("tick", append([]any{"tick", m.tick}, kv...)...)
			}
		}
		if m.gameState.GameOver && !prev.GameOver {
			m.logger.Info("run over", "game", m.game.ID(), "score", m.gameState.Score, "meters", m.gameState.Meters)
		}
		playing := !m.gameState.InMenu && !m.gameState.GameOver
		if playing && (prev.InMenu || prev.GameOver) {
			m.logger.Info("run started", "game", m.game.ID())
		}
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logRunEnd(reason string) {
	if m.logger == nil || m.gameState.InMenu || m.gameState.GameOver {
		return
	}
	m.logger.Info("run abandoned", "game", m.game.ID(), "reason", reason, "score", m.gameState.Score, "meters", m.gameState.Meters)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil && m.logger != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
