package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	cursorUp         key.Binding
	cursorDown       key.Binding
	selectNote       key.Binding
	toggleFavorite   key.Binding
	toggleArchive    key.Binding
	toggleMode       key.Binding
	yankContent      key.Binding
	reload           key.Binding
	changeCollection key.Binding
	switchToAll      key.Binding
	switchToFavs     key.Binding
	switchToArchived key.Binding
	sortByTitle      key.Binding
	sortByModifiedAt key.Binding
	sortAscending    key.Binding
	sortDescending   key.Binding
	toggleHelp       key.Binding
	quit             key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		cursorUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		cursorDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		selectNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "select"),
		),
		toggleFavorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		toggleArchive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "archive"),
		),
		toggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "list/grid"),
		),
		yankContent: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank"),
		),
		reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload vault"),
		),
		changeCollection: key.NewBinding(
			key.WithKeys("V"),
			key.WithHelp("V", "next collection"),
		),
		switchToAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all notes"),
		),
		switchToFavs: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "favorites"),
		),
		switchToArchived: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "archived"),
		),
		sortByTitle: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "sort by title"),
		),
		sortByModifiedAt: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "sort by modified"),
		),
		sortAscending: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "ascending sort"),
		),
		sortDescending: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("f6", "descending sort"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (m listKeyMap) shortHelp() []key.Binding {
	return []key.Binding{
		m.selectNote,
		m.toggleFavorite,
		m.toggleArchive,
		m.toggleMode,
		m.quit,
	}
}

func (m listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.cursorUp,
		m.cursorDown,
		m.selectNote,
		m.toggleFavorite,
		m.toggleArchive,
		m.toggleMode,
		m.yankContent,
		m.reload,
		m.changeCollection,
		m.switchToAll,
		m.switchToFavs,
		m.switchToArchived,
		m.sortByTitle,
		m.sortByModifiedAt,
		m.sortAscending,
		m.sortDescending,
		m.quit,
	}
}
