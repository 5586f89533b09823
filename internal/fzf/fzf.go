// Package fzf wraps fuzzy selection over the loaded note collection.
package fzf

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"notedeck/internal/note"
)

type FuzzyFinder struct {
	notes  []note.Note
	Header string
}

func NewFuzzyFinder(notes []note.Note, header string) *FuzzyFinder {
	return &FuzzyFinder{notes: notes, Header: header}
}

// Run opens the finder and returns the chosen note.
func (f *FuzzyFinder) Run(query string) (note.Note, error) {
	idx, err := f.find(query)
	if err != nil {
		return note.Note{}, err
	}
	if idx < 0 || idx >= len(f.notes) {
		return note.Note{}, fmt.Errorf("no note selected")
	}
	return f.notes[idx], nil
}

func (f *FuzzyFinder) find(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	labels := make([]string, 0, len(f.notes))
	for _, n := range f.notes {
		labels = append(labels, Label(n))
	}

	return fuzzyfinder.Find(f.notes, func(i int) string {
		return labels[i]
	}, options...)
}

// Label formats a note line for the finder: title plus its tags.
func Label(n note.Note) string {
	title := n.Title
	if title == "" {
		title = n.ID
	}

	if len(n.Tags) == 0 {
		return fmt.Sprintf("%s [No tags] ", title)
	}
	return fmt.Sprintf("%s [Tags: %s] ", title, strings.Join(n.Tags, ", "))
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(f.notes[i].Content)
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}
