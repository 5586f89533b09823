package state

import (
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"notedeck/internal/config"
)

const togglesFile = "toggles.yaml"

// Toggles holds the favorite and archived note id sets. Membership is kept
// independently of the vault: an id may stay favorited while its note is
// absent from the currently visible slice.
type Toggles struct {
	favorites map[string]struct{}
	archived  map[string]struct{}
	path      string
}

type togglesDoc struct {
	Favorites []string `yaml:"favorites"`
	Archived  []string `yaml:"archived"`
}

// LoadToggles reads the toggle sets stored under home, starting empty when
// no file exists yet.
func LoadToggles(home string) (*Toggles, error) {
	t := &Toggles{
		favorites: make(map[string]struct{}),
		archived:  make(map[string]struct{}),
		path:      filepath.Join(home, config.ConfigDir, togglesFile),
	}

	data, err := os.ReadFile(t.path)
	if os.IsNotExist(err) {
		return t, nil
	}
	if err != nil {
		return nil, err
	}

	var doc togglesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	for _, id := range doc.Favorites {
		t.favorites[id] = struct{}{}
	}
	for _, id := range doc.Archived {
		t.archived[id] = struct{}{}
	}
	return t, nil
}

// ToggleFavorite flips membership for id and reports the new state.
func (t *Toggles) ToggleFavorite(id string) bool {
	return toggle(t.favorites, id)
}

// ToggleArchive flips membership for id and reports the new state.
func (t *Toggles) ToggleArchive(id string) bool {
	return toggle(t.archived, id)
}

func (t *Toggles) IsFavorite(id string) bool {
	_, ok := t.favorites[id]
	return ok
}

func (t *Toggles) IsArchived(id string) bool {
	_, ok := t.archived[id]
	return ok
}

// Favorites returns the favorite set. The map is shared, not copied; the
// view layer treats it as read-only.
func (t *Toggles) Favorites() map[string]struct{} {
	return t.favorites
}

func (t *Toggles) Archived() map[string]struct{} {
	return t.archived
}

// Save writes the sets back to disk in a stable order.
func (t *Toggles) Save() error {
	doc := togglesDoc{
		Favorites: sortedKeys(t.favorites),
		Archived:  sortedKeys(t.archived),
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(t.path, data, 0o644)
}

func toggle(set map[string]struct{}, id string) bool {
	if _, ok := set[id]; ok {
		delete(set, id)
		return false
	}
	set[id] = struct{}{}
	return true
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
