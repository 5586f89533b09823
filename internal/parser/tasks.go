// Package parser extracts task checkboxes from note markdown.
package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TaskStats counts the checkbox items found in a note body.
type TaskStats struct {
	Open int
	Done int
}

func (s TaskStats) Total() int {
	return s.Open + s.Done
}

// CountTasks walks the markdown AST of content and tallies "[ ]" and "[x]"
// list items.
func CountTasks(content string) TaskStats {
	source := []byte(content)

	parser := goldmark.DefaultParser()
	reader := text.NewReader(source)
	document := parser.Parse(reader)

	var stats TaskStats

	ast.Walk(
		document,
		func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering {
				if listItem, ok := n.(*ast.ListItem); ok {
					line := strings.TrimSpace(string(listItem.Text(source)))
					switch {
					case strings.HasPrefix(line, "[ ]") && len(strings.TrimSpace(line[3:])) > 0:
						stats.Open++
					case strings.HasPrefix(line, "[x]") && len(strings.TrimSpace(line[3:])) > 0:
						stats.Done++
					}
				}
			}
			return ast.WalkContinue, nil
		},
	)

	return stats
}
