package notes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notedeck/internal/view"
)

const gridColumns = 3

// renderPlan draws a projection plan in the requested mode. Both layouts
// consume the same records; the mode only changes arrangement. cursor is
// the host's navigation position, distinct from the plan's selection.
func renderPlan(plan view.Plan, mode view.Mode, width, cursor int) string {
	if plan.Empty != nil {
		return renderEmpty(*plan.Empty)
	}
	if mode == view.ModeGrid {
		return renderGrid(plan.Records, width, cursor)
	}
	return renderList(plan.Records, width, cursor)
}

func renderEmpty(e view.EmptyState) string {
	return emptyStyle.Render(fmt.Sprintf("%s  %s\n%s", e.Icon, e.Message, e.Hint))
}

func renderList(records []view.Record, width, cursor int) string {
	var b strings.Builder

	for i, r := range records {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderRow(r, width, i == cursor))
	}

	return b.String()
}

func renderRow(r view.Record, width int, atCursor bool) string {
	var b strings.Builder

	marker := "  "
	if atCursor {
		marker = "› "
	}
	b.WriteString(marker)

	title := itemTitleStyle.Render(r.Title)
	if r.Selected {
		title = selectedItemStyle.Render("▸ " + r.Title)
	}
	b.WriteString(title)
	b.WriteString(" ")
	b.WriteString(markers(r))
	b.WriteString(itemMetaStyle.Render(" · " + r.RelativeTime))

	if r.HasPreview {
		b.WriteString("\n  ")
		b.WriteString(itemMetaStyle.Render(firstLine(r.Preview)))
	}

	if tags := renderTags(r); tags != "" {
		b.WriteString("\n  ")
		b.WriteString(tags)
	}

	return truncateLines(b.String(), width)
}

func renderGrid(records []view.Record, width, cursor int) string {
	var rows []string

	for start := 0; start < len(records); start += gridColumns {
		end := start + gridColumns
		if end > len(records) {
			end = len(records)
		}

		cards := make([]string, 0, gridColumns)
		cardWidth := 0
		if width > 0 {
			cardWidth = width/gridColumns - 4
		}
		for i, r := range records[start:end] {
			cards = append(cards, renderCard(r, cardWidth, start+i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return strings.Join(rows, "\n")
}

func renderCard(r view.Record, width int, atCursor bool) string {
	var b strings.Builder

	title := itemTitleStyle.Render(r.Title)
	if atCursor {
		title = "› " + title
	}
	b.WriteString(title)
	if m := markers(r); m != "" {
		b.WriteString(" ")
		b.WriteString(m)
	}
	b.WriteString("\n")
	b.WriteString(itemMetaStyle.Render(r.RelativeTime))

	if r.HasPreview {
		b.WriteString("\n")
		b.WriteString(itemMetaStyle.Render(firstLine(r.Preview)))
	}
	if tags := renderTags(r); tags != "" {
		b.WriteString("\n")
		b.WriteString(tags)
	}

	style := cardStyle
	if r.Selected {
		style = selectedCardStyle
	}
	if width > 0 {
		style = style.Copy().Width(width)
	}
	return style.Render(b.String())
}

// markers renders the favorite/archived badges shared by both layouts.
func markers(r view.Record) string {
	var parts []string
	if r.Favorite {
		parts = append(parts, favoriteStyle.Render("★"))
	}
	if r.Archived {
		parts = append(parts, itemMetaStyle.Render("[archived]"))
	}
	return strings.Join(parts, " ")
}

func renderTags(r view.Record) string {
	if len(r.Tags) == 0 {
		return ""
	}

	badges := make([]string, 0, len(r.Tags)+1)
	for _, t := range r.Tags {
		badges = append(badges, tagStyle.Render("#"+t))
	}
	if badge := view.OverflowBadge(r.Overflow); badge != "" {
		badges = append(badges, overflowStyle.Render(badge))
	}
	return strings.Join(badges, " ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncateLines(s string, width int) string {
	if width <= 0 {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
