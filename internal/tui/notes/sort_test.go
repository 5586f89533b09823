package notes

import (
	"testing"
	"time"

	"notedeck/internal/note"
)

func TestSortNotesByTitleAscending(t *testing.T) {
	t.Parallel()

	notes := []note.Note{
		{ID: "b.md", Title: "beta"},
		{ID: "a.md", Title: "Alpha"},
		{ID: "u.md"}, // untitled, sorts by id
	}

	sorted := sortNotes(notes, sortByTitle, ascending)

	want := []string{"a.md", "b.md", "u.md"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d = %q, want %q", i, sorted[i].ID, id)
		}
	}
}

func TestSortNotesByModifiedDescending(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	notes := []note.Note{
		{ID: "old.md", UpdatedAt: base.Add(-time.Hour)},
		{ID: "new.md", UpdatedAt: base},
	}

	sorted := sortNotes(notes, sortByModifiedAt, descending)

	if sorted[0].ID != "new.md" {
		t.Fatalf("first = %q, want new.md", sorted[0].ID)
	}
}

func TestSortNotesDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	notes := []note.Note{
		{ID: "b.md", Title: "b"},
		{ID: "a.md", Title: "a"},
	}

	sortNotes(notes, sortByTitle, ascending)

	if notes[0].ID != "b.md" {
		t.Fatalf("input slice mutated")
	}
}
