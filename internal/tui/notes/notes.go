// Package notes hosts the note browser TUI. The model owns the collection,
// the selection, and the toggle sets; every frame is re-derived from that
// state through the view projection.
package notes

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notedeck/internal/cache"
	"notedeck/internal/note"
	"notedeck/internal/state"
	"notedeck/internal/view"
	"notedeck/internal/views"
)

const previewCacheSize = 64

type NoteListModel struct {
	state      *state.State
	keys       *listKeyMap
	cache      *cache.Cache
	intents    view.Intents
	visible    []note.Note
	collection string
	selectedID string
	cursor     int
	mode       view.Mode
	sortField  sortField
	sortOrder  sortOrder
	width      int
	height     int
	status     string
	showHelp   bool
}

func NewNoteListModel(s *state.State, collection string) (*NoteListModel, error) {
	if !views.Valid(collection) {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}

	m := &NoteListModel{
		state:      s,
		keys:       newListKeyMap(),
		cache:      cache.New(previewCacheSize),
		collection: collection,
		mode:       view.ParseMode(s.Config.Mode),
		sortField:  sortByModifiedAt,
		sortOrder:  descending,
	}

	// The model is both host and state owner: intents loop straight back
	// into it, the way a parent component would fulfill them.
	m.intents = view.Intents{
		Select: func(n note.Note) {
			m.selectedID = n.ID
		},
		ToggleFavorite: func(id string) {
			m.state.Toggles.ToggleFavorite(id)
			if err := m.state.Toggles.Save(); err != nil {
				m.status = statusStyle(fmt.Sprintf("Failed to save favorites: %v", err))
			}
		},
		ToggleArchive: func(id string) {
			m.state.Toggles.ToggleArchive(id)
			if err := m.state.Toggles.Save(); err != nil {
				m.status = statusStyle(fmt.Sprintf("Failed to save archive set: %v", err))
			}
		},
	}

	m.refreshVisible()
	return m, nil
}

func (m *NoteListModel) Init() tea.Cmd {
	return nil
}

func (m *NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *NoteListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.cursorUp):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.cursorDown):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.selectNote):
		// One select intent per activation, even when re-selecting the
		// already selected note.
		if n, ok := m.cursorNote(); ok && m.intents.Select != nil {
			m.intents.Select(n)
		}

	case key.Matches(msg, m.keys.toggleFavorite):
		if n, ok := m.cursorNote(); ok && m.intents.ToggleFavorite != nil {
			m.intents.ToggleFavorite(n.ID)
			m.refreshVisible()
		}

	case key.Matches(msg, m.keys.toggleArchive):
		if n, ok := m.cursorNote(); ok && m.intents.ToggleArchive != nil {
			m.intents.ToggleArchive(n.ID)
			m.refreshVisible()
		}

	case key.Matches(msg, m.keys.toggleMode):
		if m.mode == view.ModeList {
			m.mode = view.ModeGrid
		} else {
			m.mode = view.ModeList
		}

	case key.Matches(msg, m.keys.yankContent):
		if n, ok := m.cursorNote(); ok {
			if err := clipboard.WriteAll(n.Content); err != nil {
				m.status = statusStyle(fmt.Sprintf("Failed to copy %s", n.ID))
			} else {
				m.status = statusStyle("Copied " + n.ID)
			}
		}

	case key.Matches(msg, m.keys.reload):
		if err := m.state.Reload(); err != nil {
			m.status = statusStyle(fmt.Sprintf("Failed to reload vault: %v", err))
		} else {
			m.refreshVisible()
			m.status = statusStyle("Vault reloaded")
		}

	case key.Matches(msg, m.keys.changeCollection):
		m.swapCollection(views.Next(m.collection))

	case key.Matches(msg, m.keys.switchToAll):
		m.swapCollection(views.CollectionAll)

	case key.Matches(msg, m.keys.switchToFavs):
		m.swapCollection(views.CollectionFavorites)

	case key.Matches(msg, m.keys.switchToArchived):
		m.swapCollection(views.CollectionArchived)

	case key.Matches(msg, m.keys.sortByTitle):
		m.sortField = sortByTitle
		m.refreshVisible()

	case key.Matches(msg, m.keys.sortByModifiedAt):
		m.sortField = sortByModifiedAt
		m.refreshVisible()

	case key.Matches(msg, m.keys.sortAscending):
		m.sortOrder = ascending
		m.refreshVisible()

	case key.Matches(msg, m.keys.sortDescending):
		m.sortOrder = descending
		m.refreshVisible()

	case key.Matches(msg, m.keys.toggleHelp):
		m.showHelp = !m.showHelp
	}

	return m, nil
}

func (m *NoteListModel) View() string {
	snapshot := view.State{
		SelectedID: m.selectedID,
		Mode:       m.mode,
		Favorites:  m.state.Toggles.Favorites(),
		Archived:   m.state.Toggles.Archived(),
	}
	plan := view.Project(m.visible, snapshot, time.Now())

	title := views.GetTitle(
		m.collection,
		m.mode.String(),
		int(m.sortField),
		int(m.sortOrder),
	)

	listWidth := m.width / 2
	body := renderPlan(plan, m.mode, listWidth, m.cursor)
	left := listStyle.Width(listWidth).Render(
		fmt.Sprintf("%s\n\n%s", title, m.renderCursorMarker(body)),
	)

	preview := previewStyle.Render(
		lipgloss.NewStyle().
			MaxWidth(800).
			Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), m.handlePreview())),
	)

	layout := lipgloss.JoinHorizontal(lipgloss.Top, left, preview)

	footer := helpStyle.Render(renderHelp(m.keys, m.showHelp))
	if m.status != "" {
		footer = m.status + "\n" + footer
	}

	return appStyle.Render(layout + "\n\n" + footer)
}

// renderCursorMarker prefixes the body with the cursor position so the user
// can see where activation will land before selecting.
func (m *NoteListModel) renderCursorMarker(body string) string {
	if len(m.visible) == 0 {
		return body
	}
	pos := itemMetaStyle.Render(
		fmt.Sprintf("%d/%d", m.cursor+1, len(m.visible)),
	)
	return pos + "\n" + body
}

func (m *NoteListModel) handlePreview() string {
	n, ok := m.selectedNote()
	if !ok {
		return itemMetaStyle.Render("Nothing selected")
	}

	w := m.width / 2
	k := cache.Key(n.ID, n.UpdatedAt, w)
	if p, hit := m.cache.Get(k); hit {
		return p
	}

	r := renderMarkdownPreview(n, w)
	m.cache.Put(k, r)
	return r
}

func (m *NoteListModel) cursorNote() (note.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return note.Note{}, false
	}
	return m.visible[m.cursor], true
}

// selectedNote resolves the selection against the current collection. A
// stale id simply resolves to nothing.
func (m *NoteListModel) selectedNote() (note.Note, bool) {
	for _, n := range m.visible {
		if n.ID == m.selectedID {
			return n, true
		}
	}
	return note.Note{}, false
}

func (m *NoteListModel) swapCollection(collection string) {
	m.collection = collection
	m.cursor = 0
	m.refreshVisible()
}

// refreshVisible rebuilds the filtered, sorted slice handed to the
// projection. The selection is deliberately left alone: if the selected
// note falls out of the collection it just stops being highlighted.
func (m *NoteListModel) refreshVisible() {
	var filtered []note.Note
	for _, n := range m.state.Notes {
		archived := m.state.Toggles.IsArchived(n.ID)
		switch m.collection {
		case views.CollectionArchived:
			if !archived {
				continue
			}
		case views.CollectionFavorites:
			if archived || !m.state.Toggles.IsFavorite(n.ID) {
				continue
			}
		default:
			if archived {
				continue
			}
		}
		filtered = append(filtered, n)
	}

	m.visible = sortNotes(filtered, m.sortField, m.sortOrder)

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func renderHelp(keys *listKeyMap, full bool) string {
	bindings := keys.shortHelp()
	if full {
		bindings = keys.fullHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	return strings.Join(parts, " · ")
}

// Run starts the browser on the given collection.
func Run(s *state.State, collection string) error {
	m, err := NewNoteListModel(s, collection)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		} else {
			log.Fatalf("Error running program: %v", err)
		}
	}

	return nil
}
