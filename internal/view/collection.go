// Package view derives display plans from a note collection. It owns no
// data: every call re-computes the plan from the inputs it is handed, and
// all mutation intents are forwarded to caller-supplied handlers.
package view

import (
	"fmt"
	"strings"
	"time"

	"notedeck/internal/note"
)

// Mode selects the layout density of the rendered plan. It never changes
// which fields of a Record are computed.
type Mode int

const (
	ModeList Mode = iota
	ModeGrid
)

func (m Mode) String() string {
	if m == ModeGrid {
		return "grid"
	}
	return "list"
}

// ParseMode maps a config value to a Mode, defaulting to list.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, "grid") {
		return ModeGrid
	}
	return ModeList
}

// State is the caller-owned snapshot the projection reads. SelectedID may
// be stale (referencing a note not in the supplied collection); that is
// handled, not rejected.
type State struct {
	SelectedID string
	Mode       Mode
	Favorites  map[string]struct{}
	Archived   map[string]struct{}
}

// Intents are the outbound callbacks a host wires up. They are
// fire-and-forget: the projection never calls them itself and nil handlers
// are allowed.
type Intents struct {
	Select         func(n note.Note)
	ToggleFavorite func(id string)
	ToggleArchive  func(id string)
}

// Record is the per-note display projection.
type Record struct {
	ID           string
	Title        string
	Preview      string
	HasPreview   bool
	RelativeTime string
	Tags         []string
	Overflow     int
	Selected     bool
	Favorite     bool
	Archived     bool
}

// EmptyState is the terminal render state for an empty collection.
type EmptyState struct {
	Icon    string
	Message string
	Hint    string
}

// Plan is the output of a projection: either one empty-state record or one
// Record per input note, in input order.
type Plan struct {
	Empty   *EmptyState
	Records []Record
}

const (
	previewLimit    = 100
	maxVisibleTags  = 3
	fallbackTitle   = "Untitled"
	fallbackAge     = "recently"
	previewEllipsis = "…"
)

// Project turns (notes, state) into a render plan. It does not sort:
// ordering is the caller's responsibility. now is taken as a parameter so
// relative times stay fresh across re-renders.
func Project(notes []note.Note, st State, now time.Time) Plan {
	if len(notes) == 0 {
		return Plan{Empty: &EmptyState{
			Icon:    "📝",
			Message: "No notes here yet",
			Hint:    "Create a note or switch to another collection",
		}}
	}

	records := make([]Record, 0, len(notes))
	for _, n := range notes {
		records = append(records, project(n, st, now))
	}
	return Plan{Records: records}
}

func project(n note.Note, st State, now time.Time) Record {
	preview := Preview(n.Content)

	title := n.Title
	if title == "" {
		title = fallbackTitle
	}

	tags := n.Tags
	overflow := 0
	if len(tags) > maxVisibleTags {
		overflow = len(tags) - maxVisibleTags
		tags = tags[:maxVisibleTags]
	}

	_, fav := st.Favorites[n.ID]
	_, arch := st.Archived[n.ID]

	return Record{
		ID:           n.ID,
		Title:        title,
		Preview:      preview,
		HasPreview:   preview != "",
		RelativeTime: RelativeTime(n.UpdatedAt, now),
		Tags:         tags,
		Overflow:     overflow,
		Selected:     n.ID == st.SelectedID,
		Favorite:     fav,
		Archived:     arch,
	}
}

// Preview strips the markup characters '#', '*' and '`' from content,
// trims surrounding whitespace, and cuts the result to the first 100 runes,
// with an ellipsis appended whether or not anything was cut. An all-markup
// content previews to "".
func Preview(content string) string {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '#', '*', '`':
			return -1
		}
		return r
	}, content)
	stripped = strings.TrimSpace(stripped)

	if stripped == "" {
		return ""
	}

	runes := []rune(stripped)
	if len(runes) > previewLimit {
		stripped = string(runes[:previewLimit])
	}
	return stripped + previewEllipsis
}

// OverflowBadge renders the "+N" marker for tags beyond the visible slots.
func OverflowBadge(overflow int) string {
	if overflow <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d", overflow)
}

// RelativeTime humanizes the distance between t and now. Zero or future
// timestamps fail closed to a neutral placeholder so a bad row never blocks
// the rest of the collection.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() || t.After(now) {
		return fallbackAge
	}

	age := now.Sub(t)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		minutes := int(age.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	case age < 24*time.Hour:
		hours := int(age.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(age.Hours() / 24)
	switch {
	case days == 1:
		return "1 day ago"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 365:
		months := days / 30
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	}

	years := days / 365
	if years == 1 {
		return "1 year ago"
	}
	return fmt.Sprintf("%d years ago", years)
}
