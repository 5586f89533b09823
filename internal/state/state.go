// Package state wires the pieces the TUI and commands share: config, the
// loaded vault, and the persisted favorite/archive sets. The view layer
// never touches this package; it only sees snapshots the host builds.
package state

import (
	"fmt"

	"notedeck/internal/config"
	"notedeck/internal/note"
)

type State struct {
	Config  *Config
	Notes   []note.Note
	Toggles *Toggles
}

// Config aliases the app config so callers need only one import.
type Config = config.Config

// New loads the vault and toggle sets for cfg.
func New(cfg *config.Config, home string) (*State, error) {
	notes, err := note.Load(cfg.VaultDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load vault %q: %w", cfg.VaultDir, err)
	}

	toggles, err := LoadToggles(home)
	if err != nil {
		return nil, fmt.Errorf("failed to load toggles: %w", err)
	}

	return &State{
		Config:  cfg,
		Notes:   notes,
		Toggles: toggles,
	}, nil
}

// Reload re-reads the vault from disk.
func (s *State) Reload() error {
	notes, err := note.Load(s.Config.VaultDir)
	if err != nil {
		return err
	}
	s.Notes = notes
	return nil
}
