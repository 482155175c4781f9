package tui

import (
	"strings"
	"testing"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.GameID != "hugo" {
		t.Errorf("GameID = %q, expected hugo", cfg.GameID)
	}
	if cfg.TickRate != 60 || cfg.HoldTicks != DefaultHoldTicks {
		t.Errorf("TickRate/HoldTicks = %d/%d", cfg.TickRate, cfg.HoldTicks)
	}
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no-such-game"
	cfg.HostKeyPath = t.TempDir() + "/host_key"

	_, err := NewSSHServer(cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "no-such-game") {
		t.Errorf("NewSSHServer() error = %v, expected unknown game error", err)
	}
}
