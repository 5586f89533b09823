// Package note holds the vault-backed note model and loader.
package note

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v2"
)

// Note is a single vault entry. The view layer never creates or mutates
// notes; it only projects them.
type Note struct {
	ID        string // vault-relative path, stable for the note's lifetime
	Title     string
	Content   string
	Tags      []string
	UpdatedAt time.Time // zero when the timestamp could not be determined
}

var frontMatterRe = regexp.MustCompile(`(?ms)^---\n(.+?)\n---\n?`)

// Load walks vaultDir for markdown files and returns the notes it could
// read, in walk order. Unreadable files are skipped rather than failing the
// whole vault.
func Load(vaultDir string) ([]Note, error) {
	var notes []Note

	err := filepath.Walk(
		vaultDir,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return fmt.Errorf("error walking the path %q: %w", path, err)
			}
			if info.IsDir() || filepath.Ext(path) != ".md" {
				return nil
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return nil
			}

			rel, err := filepath.Rel(vaultDir, path)
			if err != nil {
				rel = filepath.Base(path)
			}

			n := Parse(filepath.ToSlash(rel), content)
			if n.UpdatedAt.IsZero() {
				n.UpdatedAt = info.ModTime()
			}
			notes = append(notes, n)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Parse builds a Note from raw markdown content. Broken frontmatter loses
// its metadata but never loses the note.
func Parse(id string, content []byte) Note {
	title, tags, updated := parseFrontMatter(content)

	return Note{
		ID:        id,
		Title:     title,
		Content:   stripFrontMatter(content),
		Tags:      tags,
		UpdatedAt: updated,
	}
}

func parseFrontMatter(content []byte) (string, []string, time.Time) {
	m := frontMatterRe.FindSubmatch(content)
	if len(m) < 2 {
		return "", nil, time.Time{}
	}

	var data struct {
		Title   string   `yaml:"title"`
		Tags    []string `yaml:"tags"`
		Updated string   `yaml:"updated"`
	}

	if err := yaml.Unmarshal(m[1], &data); err != nil {
		return "", nil, time.Time{}
	}

	var updated time.Time
	if data.Updated != "" {
		if t, err := dateparse.ParseAny(data.Updated); err == nil {
			updated = t
		}
	}

	return strings.TrimSpace(data.Title), data.Tags, updated
}

func stripFrontMatter(content []byte) string {
	return string(frontMatterRe.ReplaceAll(content, nil))
}
