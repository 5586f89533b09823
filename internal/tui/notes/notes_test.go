package notes

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"notedeck/internal/config"
	"notedeck/internal/note"
	"notedeck/internal/state"
	"notedeck/internal/views"
)

func newTestState(t *testing.T, notes []note.Note) *state.State {
	t.Helper()

	toggles, err := state.LoadToggles(t.TempDir())
	if err != nil {
		t.Fatalf("LoadToggles: %v", err)
	}

	return &state.State{
		Config:  &config.Config{Mode: config.DefaultMode},
		Notes:   notes,
		Toggles: toggles,
	}
}

func testNotes() []note.Note {
	base := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	return []note.Note{
		{ID: "a.md", Title: "Alpha", Content: "first", UpdatedAt: base},
		{ID: "b.md", Title: "Beta", Content: "second", UpdatedAt: base.Add(-time.Hour)},
		{ID: "c.md", Title: "Gamma", Content: "third", UpdatedAt: base.Add(-2 * time.Hour)},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelRejectsUnknownCollection(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testNotes())
	if _, err := NewNoteListModel(s, "starred"); err == nil {
		t.Fatalf("expected error for unknown collection")
	}
}

func TestSelectIntentFiresPerActivation(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testNotes())
	m, err := NewNoteListModel(s, views.CollectionAll)
	if err != nil {
		t.Fatalf("NewNoteListModel: %v", err)
	}

	var fired []string
	m.intents.Select = func(n note.Note) {
		fired = append(fired, n.ID)
		m.selectedID = n.ID
	}

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	m.handleKey(enter)
	m.handleKey(enter) // re-selecting still fires

	if len(fired) != 2 {
		t.Fatalf("select fired %d times, want 2", len(fired))
	}
	if m.selectedID != "a.md" {
		t.Fatalf("selectedID = %q, want a.md", m.selectedID)
	}
}

func TestToggleFavoriteKeepsSelection(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testNotes())
	m, err := NewNoteListModel(s, views.CollectionAll)
	if err != nil {
		t.Fatalf("NewNoteListModel: %v", err)
	}

	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	selected := m.selectedID

	m.handleKey(keyMsg("f"))

	if m.selectedID != selected {
		t.Fatalf("selectedID changed by favorite toggle: %q -> %q", selected, m.selectedID)
	}
	if !s.Toggles.IsFavorite("a.md") {
		t.Fatalf("a.md not favorited")
	}
}

func TestArchiveRemovesFromAllCollection(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testNotes())
	m, err := NewNoteListModel(s, views.CollectionAll)
	if err != nil {
		t.Fatalf("NewNoteListModel: %v", err)
	}

	m.handleKey(keyMsg("a"))

	if len(m.visible) != 2 {
		t.Fatalf("len(visible) = %d after archive, want 2", len(m.visible))
	}
	for _, n := range m.visible {
		if n.ID == "a.md" {
			t.Fatalf("archived note still visible in all collection")
		}
	}
}

func TestStaleSelectionSurvivesCollectionSwitch(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testNotes())
	m, err := NewNoteListModel(s, views.CollectionAll)
	if err != nil {
		t.Fatalf("NewNoteListModel: %v", err)
	}

	m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	m.handleKey(keyMsg("2")) // favorites: empty, selection now stale

	if len(m.visible) != 0 {
		t.Fatalf("len(visible) = %d, want 0", len(m.visible))
	}
	if _, ok := m.selectedNote(); ok {
		t.Fatalf("stale selection resolved to a note")
	}

	// Rendering with a stale selection must not panic and shows the empty
	// state.
	m.width, m.height = 120, 40
	if out := m.View(); out == "" {
		t.Fatalf("empty render output")
	}
}

func TestFavoritesCollectionExcludesArchived(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testNotes())
	s.Toggles.ToggleFavorite("a.md")
	s.Toggles.ToggleFavorite("b.md")
	s.Toggles.ToggleArchive("b.md")

	m, err := NewNoteListModel(s, views.CollectionFavorites)
	if err != nil {
		t.Fatalf("NewNoteListModel: %v", err)
	}

	if len(m.visible) != 1 || m.visible[0].ID != "a.md" {
		t.Fatalf("favorites collection = %v, want [a.md]", ids(m.visible))
	}
}

func TestModeToggleDoesNotChangeVisible(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testNotes())
	m, err := NewNoteListModel(s, views.CollectionAll)
	if err != nil {
		t.Fatalf("NewNoteListModel: %v", err)
	}

	before := ids(m.visible)
	m.handleKey(keyMsg("m"))
	after := ids(m.visible)

	if len(before) != len(after) {
		t.Fatalf("visible changed with mode: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("visible order changed with mode: %v -> %v", before, after)
		}
	}
}

func TestSortKeysReorderVisible(t *testing.T) {
	t.Parallel()

	s := newTestState(t, testNotes())
	m, err := NewNoteListModel(s, views.CollectionAll)
	if err != nil {
		t.Fatalf("NewNoteListModel: %v", err)
	}

	// Default is modified-descending: newest first.
	if m.visible[0].ID != "a.md" {
		t.Fatalf("default order starts with %q, want a.md", m.visible[0].ID)
	}

	m.handleKey(tea.KeyMsg{Type: tea.KeyF5})
	if m.visible[0].ID != "c.md" {
		t.Fatalf("ascending order starts with %q, want c.md", m.visible[0].ID)
	}
}

func ids(notes []note.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}
