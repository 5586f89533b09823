package notes

import (
	"sort"
	"strings"

	"notedeck/internal/note"
)

type sortField int

const (
	sortByTitle sortField = iota
	sortByModifiedAt
)

type sortOrder int

const (
	ascending sortOrder = iota
	descending
)

// sortNotes orders a copy of notes for display. Ordering is done here, by
// the host, before projection: the projection itself renders input order.
func sortNotes(notes []note.Note, field sortField, order sortOrder) []note.Note {
	sorted := make([]note.Note, len(notes))
	copy(sorted, notes)

	less := func(a, b note.Note) bool {
		switch field {
		case sortByTitle:
			return strings.ToLower(displayTitle(a)) < strings.ToLower(displayTitle(b))
		default:
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

func displayTitle(n note.Note) string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID
}
