package state

import (
	"os"
	"path/filepath"
	"testing"

	"notedeck/internal/config"
)

func writeNote(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestNewLoadsVault(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	vault := filepath.Join(home, "notes")
	if err := os.MkdirAll(vault, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	writeNote(t, vault, "a.md", "---\ntitle: Alpha\n---\nbody\n")
	writeNote(t, vault, "skip.txt", "not a note")

	cfg := &config.Config{VaultDir: vault, Mode: config.DefaultMode}

	s, err := New(cfg, home)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if len(s.Notes) != 1 {
		t.Fatalf("len(Notes) = %d, want 1", len(s.Notes))
	}
	if s.Notes[0].Title != "Alpha" {
		t.Fatalf("Title = %q, want Alpha", s.Notes[0].Title)
	}
}

func TestReloadPicksUpNewNotes(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	vault := filepath.Join(home, "notes")
	if err := os.MkdirAll(vault, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	writeNote(t, vault, "a.md", "one\n")

	cfg := &config.Config{VaultDir: vault, Mode: config.DefaultMode}
	s, err := New(cfg, home)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	writeNote(t, vault, "b.md", "two\n")
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if len(s.Notes) != 2 {
		t.Fatalf("len(Notes) = %d after reload, want 2", len(s.Notes))
	}
}
