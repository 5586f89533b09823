// Package views renders the browser title bar: which collection is active,
// the layout mode, and the current sort.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Collections the browser can show. "all" hides archived notes; "archived"
// shows only them.
const (
	CollectionAll       = "all"
	CollectionFavorites = "favorites"
	CollectionArchived  = "archived"
)

var collectionOrder = []string{CollectionAll, CollectionFavorites, CollectionArchived}

var titlePrefixMap = map[string]string{
	CollectionAll:       "[1] All",
	CollectionFavorites: "[2] Favorites",
	CollectionArchived:  "[3] Archived",
}

var sortFieldMap = map[int]string{
	0: "[F1] Title",
	1: "[F3] Modified Date",
}

var sortOrderMap = map[int]string{
	0: "[F5] Ascending",
	1: "[F6] Descending",
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true)
	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0AF")).
			Padding(0, 1)
	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)
	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			SetString("│")
)

// Valid reports whether name is a known collection.
func Valid(name string) bool {
	_, ok := titlePrefixMap[name]
	return ok
}

// Next cycles through the collections in display order.
func Next(name string) string {
	for i, c := range collectionOrder {
		if c == name {
			return collectionOrder[(i+1)%len(collectionOrder)]
		}
	}
	return CollectionAll
}

// GetTitle renders the two-line browser header for the active collection,
// mode label, and sort state.
func GetTitle(collection, mode string, sortField, sortOrder int) string {
	var collectionStatus []string
	for _, c := range collectionOrder {
		prefix := titlePrefixMap[c]
		if c == collection {
			collectionStatus = append(collectionStatus, activeStyle.Render(prefix))
		} else {
			collectionStatus = append(collectionStatus, inactiveStyle.Render(prefix))
		}
	}

	var sortStatus []string
	for i := 0; i < len(sortFieldMap); i++ {
		if i == sortField {
			sortStatus = append(sortStatus, activeStyle.Render(sortFieldMap[i]))
		} else {
			sortStatus = append(sortStatus, inactiveStyle.Render(sortFieldMap[i]))
		}
	}

	var orderStatus []string
	for i := 0; i < len(sortOrderMap); i++ {
		if i == sortOrder {
			orderStatus = append(orderStatus, activeStyle.Render(sortOrderMap[i]))
		} else {
			orderStatus = append(orderStatus, inactiveStyle.Render(sortOrderMap[i]))
		}
	}

	viewLine := fmt.Sprintf("%s %s %s %s",
		titleStyle.Render("Collections:"),
		strings.Join(collectionStatus, dividerStyle.String()),
		dividerStyle.String(),
		activeStyle.Render("[m] "+mode),
	)

	sortLine := fmt.Sprintf("%s %s %s %s",
		titleStyle.Render("Sort:"),
		strings.Join(sortStatus, dividerStyle.String()),
		dividerStyle.String(),
		strings.Join(orderStatus, dividerStyle.String()),
	)

	return fmt.Sprintf("%s\n%s", viewLine, sortLine)
}
