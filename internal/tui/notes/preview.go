package notes

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"notedeck/internal/note"
	"notedeck/internal/parser"
)

// renderMarkdownPreview renders the full note body for the preview pane.
// Render failures degrade to a message in the pane, never an error.
func renderMarkdownPreview(n note.Note, width int) string {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(n.Content)
	if err != nil {
		return "Error rendering markdown"
	}

	if summary := taskSummary(n.Content); summary != "" {
		markdown += "\n" + itemMetaStyle.Render(summary)
	}
	return markdown
}

func taskSummary(content string) string {
	stats := parser.CountTasks(content)
	if stats.Total() == 0 {
		return ""
	}
	return fmt.Sprintf("Tasks: %d open · %d done", stats.Open, stats.Done)
}
