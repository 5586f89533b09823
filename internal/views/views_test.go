package views

import (
	"strings"
	"testing"
)

func TestValid(t *testing.T) {
	t.Parallel()

	for _, name := range []string{CollectionAll, CollectionFavorites, CollectionArchived} {
		if !Valid(name) {
			t.Fatalf("Valid(%q) = false", name)
		}
	}
	if Valid("starred") {
		t.Fatalf("Valid accepted unknown collection")
	}
}

func TestNextCycles(t *testing.T) {
	t.Parallel()

	if got := Next(CollectionAll); got != CollectionFavorites {
		t.Fatalf("Next(all) = %q", got)
	}
	if got := Next(CollectionArchived); got != CollectionAll {
		t.Fatalf("Next(archived) = %q", got)
	}
	if got := Next("bogus"); got != CollectionAll {
		t.Fatalf("Next(bogus) = %q", got)
	}
}

func TestGetTitleMentionsEveryCollection(t *testing.T) {
	t.Parallel()

	title := GetTitle(CollectionFavorites, "grid", 1, 1)

	for _, want := range []string{"All", "Favorites", "Archived", "grid", "Modified Date"} {
		if !strings.Contains(title, want) {
			t.Fatalf("title missing %q:\n%s", want, title)
		}
	}
}
