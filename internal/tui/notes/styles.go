package notes

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)

	statusBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"})

	statusStyle = statusBannerStyle.Render

	activeViewStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0AF")).
			Padding(0, 1)

	inactiveViewStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 1)

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			SetString("│")

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0AF")).
				Background(lipgloss.Color("#224"))

	itemTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CCC"))

	itemMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF"))

	overflowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FC0"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 1).
			MarginRight(1)

	selectedCardStyle = cardStyle.Copy().
				BorderForeground(lipgloss.Color("#0AF"))

	listStyle = lipgloss.NewStyle().
			MarginRight(1)

	previewStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#334455"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
)
